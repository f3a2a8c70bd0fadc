package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetcopain/backend/internal/controllers/v1"
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestUserOptions() {
	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"User", "http://example.com/v1/user", "GET, PATCH"},
		{"Onboarding", "http://example.com/v1/user/onboarding", "POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestUserBeforeOnboarding verifies that reading fails before any
// configuration exists while a partial update creates one from the
// defaults.
func (suite *TestSuiteStandard) TestUserBeforeOnboarding() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.UserConfigResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "there is no user configuration")

	// Updating works and starts from the defaults
	r = suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/user", map[string]string{"firstName": "Marie"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Marie", response.Data.FirstName)
	assert.Equal(suite.T(), "€", response.Data.Currency)
	assert.False(suite.T(), response.Data.OnboardingCompleted)
}

func (suite *TestSuiteStandard) TestOnboarding() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/user/onboarding", map[string]any{
		"firstName":        "Marie",
		"mainGoal":         "save",
		"financialComfort": "balanced",
		"usageMode":        "manual",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.UserConfigResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), "Marie", response.Data.FirstName)
	assert.Equal(suite.T(), models.GoalSave, response.Data.MainGoal)
	assert.True(suite.T(), response.Data.OnboardingCompleted)

	// Defaults are filled in for everything the onboarding did not set
	assert.Equal(suite.T(), "€", response.Data.Currency)
	assert.Equal(suite.T(), 1, response.Data.FirstDayOfWeek)
	assert.Equal(suite.T(), models.PlanFree, response.Data.SubscriptionPlan)

	// The configuration can now be read back
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestOnboardingInvalidValues() {
	tests := []struct {
		name string
		body any
	}{
		{"Invalid main goal", map[string]string{"mainGoal": "world domination"}},
		{"Invalid financial comfort", map[string]string{"financialComfort": "luxurious"}},
		{"Invalid usage mode", map[string]string{"usageMode": "telepathy"}},
		{"Invalid subscription plan", map[string]string{"subscriptionPlan": "platinum"}},
		{"Unknown currency code", map[string]string{"currencyCode": "NOPE"}},
		{"Broken body", `{ broken`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/user/onboarding", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestUserUpdate() {
	_ = suite.completeTestOnboarding(suite.T())

	r := suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/user", map[string]any{
		"mainGoal":     "invest",
		"currencyCode": "USD",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserConfigResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), models.GoalInvest, response.Data.MainGoal)
	assert.Equal(suite.T(), "US$", response.Data.Currency)

	// Fields that were not part of the update are unchanged
	assert.Equal(suite.T(), "Marie", response.Data.FirstName)
}

// TestUserUpdateInvalid verifies that an invalid update does not change
// the configuration at all.
func (suite *TestSuiteStandard) TestUserUpdateInvalid() {
	_ = suite.completeTestOnboarding(suite.T())

	r := suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/user", map[string]string{
		"mainGoal": "win the lottery",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserConfigResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.GoalSave, response.Data.MainGoal)
}

// TestOnboardingTwice verifies that completing the onboarding again
// starts from the existing configuration.
func (suite *TestSuiteStandard) TestOnboardingTwice() {
	_ = suite.completeTestOnboarding(suite.T())

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/user/onboarding", map[string]string{
		"mainGoal": "control",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.UserConfigResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), models.GoalControl, response.Data.MainGoal)
	assert.Equal(suite.T(), "Marie", response.Data.FirstName, "existing values survive a second onboarding")
}
