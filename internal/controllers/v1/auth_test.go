package v1_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	v1 "github.com/budgetcopain/backend/internal/controllers/v1"
	"github.com/budgetcopain/backend/internal/identity"
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAuthOptions() {
	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"URL", "http://example.com/v1/auth/url", "GET"},
		{"Login", "http://example.com/v1/auth/login", "POST"},
		{"Session", "http://example.com/v1/session", "DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestAuthNotConfigured verifies that the authentication endpoints
// report when no identity provider is configured.
func (suite *TestSuiteStandard) TestAuthNotConfigured() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/auth/url", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotImplemented)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", map[string]string{"code": "some-code"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotImplemented)
}

func (suite *TestSuiteStandard) TestAuthURL() {
	suite.co.Identity = identity.NewMockClient()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/auth/url?state=xyz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AuthURLResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Contains(suite.T(), *response.Data, "state=xyz")
}

func (suite *TestSuiteStandard) TestAuthLogin() {
	mock := identity.NewMockClient()
	mock.LoginFn = func(_ context.Context, code string) (identity.Session, error) {
		return identity.Session{
			Profile:     identity.Profile{Email: "marie@example.com", Name: "Marie"},
			AccessToken: "token-for-" + code,
		}, nil
	}
	suite.co.Identity = mock

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", map[string]string{"code": "some-code"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), "marie@example.com", response.Data.Email)
	assert.Equal(suite.T(), "token-for-some-code", response.Data.AccessToken)
	assert.Equal(suite.T(), []string{"some-code"}, mock.LoginCalls)
}

// TestAuthLoginUpdatesUserConfig verifies that a login carries the
// profile over into an existing user configuration.
func (suite *TestSuiteStandard) TestAuthLoginUpdatesUserConfig() {
	_ = suite.completeTestOnboarding(suite.T())

	mock := identity.NewMockClient()
	mock.LoginFn = func(_ context.Context, _ string) (identity.Session, error) {
		return identity.Session{
			Profile: identity.Profile{Email: "marie@example.com", Name: "Marie-Claire"},
		}, nil
	}
	suite.co.Identity = mock

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", map[string]string{"code": "some-code"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserConfigResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Marie-Claire", response.Data.FirstName)
	assert.Equal(suite.T(), "marie@example.com", response.Data.Email)
}

// TestAuthLoginSeedsUserConfig verifies that a sign-in before
// onboarding creates a default user configuration carrying the profile.
func (suite *TestSuiteStandard) TestAuthLoginSeedsUserConfig() {
	mock := identity.NewMockClient()
	mock.LoginFn = func(_ context.Context, _ string) (identity.Session, error) {
		return identity.Session{
			Profile: identity.Profile{Email: "marie@example.com", Name: "Marie"},
		}, nil
	}
	suite.co.Identity = mock

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", map[string]string{"code": "some-code"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserConfigResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Marie", response.Data.FirstName)
	assert.Equal(suite.T(), "marie@example.com", response.Data.Email)
	assert.Equal(suite.T(), "€", response.Data.Currency)
	assert.False(suite.T(), response.Data.OnboardingCompleted)
}

func (suite *TestSuiteStandard) TestAuthLoginInvalid() {
	mock := identity.NewMockClient()
	mock.LoginFn = func(_ context.Context, _ string) (identity.Session, error) {
		return identity.Session{}, errors.New("the authorization code is invalid")
	}
	suite.co.Identity = mock

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"No code", map[string]string{}, http.StatusBadRequest},
		{"Broken body", `{ broken`, http.StatusBadRequest},
		{"Exchange fails", map[string]string{"code": "bad-code"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/auth/login", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestSessionDelete verifies that signing out revokes the token and
// deletes all data.
func (suite *TestSuiteStandard) TestSessionDelete() {
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{})

	mock := identity.NewMockClient()
	suite.co.Identity = mock

	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/session", "", map[string]string{"Authorization": "Bearer some-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), []string{"some-token"}, mock.SignOutCalls)

	// All data is gone, the app starts over with the defaults
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

// TestSessionDeleteRevocationFails verifies that a failing token
// revocation does not keep the user from signing out.
func (suite *TestSuiteStandard) TestSessionDeleteRevocationFails() {
	mock := identity.NewMockClient()
	mock.SignOutFn = func(_ context.Context, _ string) error {
		return errors.New("the identity provider is unreachable")
	}
	suite.co.Identity = mock

	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/session", "", map[string]string{"Authorization": "Bearer some-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

// TestSessionDeleteWithoutIdentity verifies that signing out works
// without a configured identity provider.
func (suite *TestSuiteStandard) TestSessionDeleteWithoutIdentity() {
	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

// TestSessionDeleteClosedDatabase verifies that a sign-out that cannot
// delete the persisted document is reported as a server error.
func (suite *TestSuiteStandard) TestSessionDeleteClosedDatabase() {
	_ = suite.completeTestOnboarding(suite.T())

	require.Nil(suite.T(), suite.backend.Close())

	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), response.Error)
}
