package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetcopain/backend/internal/controllers/v1"
	"github.com/budgetcopain/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBudgetsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetsOptions() {
	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "http://example.com/v1/budgets", http.StatusNoContent, "GET"},
		{"Month", "http://example.com/v1/budgets/2026-03", http.StatusNoContent, "GET, PUT"},
		{"Invalid month", "http://example.com/v1/budgets/yesterday", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetEmpty() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestBudgetsSet() {
	r := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/2026-03", map[string]string{"totalBudget": "800"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalBudget.Equal(decimalFromString(suite.T(), "800")))

	// Setting the budget again replaces it instead of adding an entry
	r = suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/2026-03", map[string]string{"totalBudget": "900"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.True(suite.T(), list.Data["2026-03"].TotalBudget.Equal(decimalFromString(suite.T(), "900")))
}

func (suite *TestSuiteStandard) TestBudgetsSetInvalid() {
	tests := []struct {
		name string
		path string
		body any
	}{
		{"Negative budget", "http://example.com/v1/budgets/2026-03", map[string]string{"totalBudget": "-100"}},
		{"Invalid month", "http://example.com/v1/budgets/yesterday", map[string]string{"totalBudget": "100"}},
		{"Broken body", "http://example.com/v1/budgets/2026-03", `{ broken`},
		{"Empty body", "http://example.com/v1/budgets/2026-03", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPut, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestBudgetsZeroAllowed verifies that a budget of zero is valid. It
// disables the budget for the month without deleting the entry.
func (suite *TestSuiteStandard) TestBudgetsZeroAllowed() {
	r := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/2026-03", map[string]string{"totalBudget": "0"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/2026-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.TotalBudget.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	r := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/2026-03", map[string]string{"totalBudget": "500"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Existing budget", "http://example.com/v1/budgets/2026-03", http.StatusOK},
		{"No budget for this month", "http://example.com/v1/budgets/2026-04", http.StatusNotFound},
		{"Invalid month", "http://example.com/v1/budgets/yesterday", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
