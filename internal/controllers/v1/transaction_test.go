package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budgetcopain/backend/internal/controllers/v1"
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		id     string // path at the transactions endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Transaction exists", suite.createTestTransaction(suite.T(), v1.TransactionEditable{}).Data.ID, http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			r := suite.request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	response := suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimalFromString(suite.T(), "17.23"),
		Type:       models.TypeExpense,
		CategoryID: "transport",
		Date:       "2026-03-15T10:00:00.000Z",
		Note:       "Bus ticket",
	})
	require.NotNil(suite.T(), response.Data)

	assert.NotEmpty(suite.T(), response.Data.ID, "an ID is generated for the transaction")
	assert.True(suite.T(), response.Data.Amount.Equal(decimalFromString(suite.T(), "17.23")))
	assert.Equal(suite.T(), models.SourceManual, response.Data.Source, "source defaults to manual")
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.TransactionEditable
		status   int
	}{
		{"Zero amount", v1.TransactionEditable{Type: "expense", CategoryID: "alimentation", Date: "2026-03-15T10:00:00.000Z"}, http.StatusBadRequest},
		{"Negative amount", v1.TransactionEditable{Amount: decimalFromString(suite.T(), "-5"), Type: "expense", CategoryID: "alimentation", Date: "2026-03-15T10:00:00.000Z"}, http.StatusBadRequest},
		{"Invalid type", v1.TransactionEditable{Amount: decimalFromString(suite.T(), "5"), Type: "donation", CategoryID: "alimentation", Date: "2026-03-15T10:00:00.000Z"}, http.StatusBadRequest},
		{"Unknown category", v1.TransactionEditable{Amount: decimalFromString(suite.T(), "5"), Type: "expense", CategoryID: "does-not-exist", Date: "2026-03-15T10:00:00.000Z"}, http.StatusNotFound},
		{"No date", v1.TransactionEditable{Amount: decimalFromString(suite.T(), "5"), Type: "expense", CategoryID: "alimentation"}, http.StatusBadRequest},
		{"Invalid source", v1.TransactionEditable{Amount: decimalFromString(suite.T(), "5"), Type: "expense", CategoryID: "alimentation", Date: "2026-03-15T10:00:00.000Z", Source: "fax"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/transactions", tt.editable)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsNewestFirst verifies that the transaction list always
// has the most recently created transaction first.
func (suite *TestSuiteStandard) TestTransactionsNewestFirst() {
	first := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Note: "first"})
	second := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Note: "second"})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)

	assert.Equal(suite.T(), second.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), first.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:       "2026-03-02T08:00:00.000Z",
		CategoryID: "alimentation",
		Note:       "Groceries at the market",
	})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:       "2026-03-28T19:30:00.000Z",
		CategoryID: "transport",
		Type:       models.TypeIncome,
		Note:       "Commute refund",
	})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:       "2026-04-01T12:00:00.000Z",
		CategoryID: "alimentation",
		Note:       "Groceries again",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Month", "month=2026-03", 2},
		{"Month without transactions", "month=2020-01", 0},
		{"Type expense", "type=expense", 2},
		{"Type income", "type=income", 1},
		{"Category", "category=alimentation", 2},
		{"Source", "source=manual", 3},
		{"Source without transactions", "source=bank", 0},
		{"Note globbing", "note=Groceries*", 2},
		{"Note exact", "note=Commute refund", 1},
		{"Month and category", "month=2026-03&category=alimentation", 1},
		{"Offset", "offset=2", 1},
		{"Limit", "limit=2", 2},
		{"Limit zero", "limit=0", 0},
		{"Limit negative returns everything", "limit=-1", 3},
		{"Offset and limit", "offset=1&limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len, "Wrong response length for query %q", tt.query)

			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.len, response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid month", "month=yesterday"},
		{"Invalid type", "type=donation"},
		{"Invalid source", "source=fax"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestTransactionsPagination verifies the pagination metadata of the
// transaction list.
func (suite *TestSuiteStandard) TestTransactionsPagination() {
	for i := 0; i < 3; i++ {
		_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?offset=1&limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 1, response.Pagination.Count)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
	assert.Equal(suite.T(), 1, response.Pagination.Limit)
	assert.Equal(suite.T(), 3, response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing transaction", transaction.Data.ID, http.StatusOK},
		{"No transaction with this ID", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Note: "Lunch"})

	r := suite.request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), map[string]any{
		"amount": "42.12",
		"note":   "Dinner",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Amount.Equal(decimalFromString(suite.T(), "42.12")))
	assert.Equal(suite.T(), "Dinner", response.Data.Note)
	assert.Equal(suite.T(), transaction.Data.CategoryID, response.Data.CategoryID, "fields not in the update are unchanged")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Negative amount", transaction.Data.ID, map[string]string{"amount": "-10"}, http.StatusBadRequest},
		{"Unknown category", transaction.Data.ID, map[string]string{"categoryId": "does-not-exist"}, http.StatusNotFound},
		{"Invalid type", transaction.Data.ID, map[string]string{"type": "donation"}, http.StatusBadRequest},
		{"Broken body", transaction.Data.ID, `{ broken`, http.StatusBadRequest},
		{"No transaction with this ID", uuid.New().String(), map[string]string{"note": "whatever"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := suite.request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting again fails
	r = suite.request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
