package v1

import (
	"net/http"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/budgetcopain/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// LoginRequest is the body for the login endpoint.
type LoginRequest struct {
	Code string `json:"code"` // The authorization code from the identity provider
}

// SessionData is an authenticated session.
type SessionData struct {
	Email       string `json:"email" example:"marie@example.com"`
	Name        string `json:"name" example:"Marie"`
	AccessToken string `json:"accessToken"`
}

type SessionResponse struct {
	Data  *SessionData `json:"data"`  // The session
	Error *string      `json:"error"` // The error, if any occurred
}

// AuthURLResponse contains the URL to visit for signing in.
type AuthURLResponse struct {
	Data  *string `json:"data" example:"https://identity.example.com/authorize"` // The sign-in URL
	Error *string `json:"error"`                                                 // The error, if any occurred
}

// RegisterAuthRoutes registers the routes for authentication with the
// RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/url", co.OptionsAuthURL)
	r.GET("/url", co.GetAuthURL)

	r.OPTIONS("/login", co.OptionsLogin)
	r.POST("/login", co.Login)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/url [options]
func (co Controller) OptionsAuthURL(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/login [options]
func (co Controller) OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get sign-in URL
// @Description	Returns the URL of the identity provider's sign-in page
// @Tags			Authentication
// @Produce		json
// @Success		200	{object}	AuthURLResponse
// @Failure		501	{object}	AuthURLResponse
// @Param			state	query	string	false	"Opaque state passed through to the callback"
// @Router			/v1/auth/url [get]
func (co Controller) GetAuthURL(c *gin.Context) {
	if co.Identity == nil {
		e := errIdentityNotConfigured.Error()
		c.JSON(http.StatusNotImplemented, AuthURLResponse{Error: &e})
		return
	}

	url := co.Identity.AuthCodeURL(c.Query("state"))
	c.JSON(http.StatusOK, AuthURLResponse{Data: &url})
}

// @Summary		Sign in
// @Description	Exchanges an authorization code for a session. When a user configuration exists, its name and email are updated from the profile.
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		501		{object}	SessionResponse
// @Param			login	body		LoginRequest	true	"Login"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	if co.Identity == nil {
		e := errIdentityNotConfigured.Error()
		c.JSON(http.StatusNotImplemented, SessionResponse{Error: &e})
		return
	}

	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	if request.Code == "" {
		e := errCodeNotSet.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	session, err := co.Identity.Login(c.Request.Context(), request.Code)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	// Carry the profile over into the user configuration. On a sign-in
	// before onboarding this seeds a default configuration.
	_, err = co.Store.UpdateUserConfig(store.UserConfigPatch{
		FirstName: &session.Profile.Name,
		Email:     &session.Profile.Email,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &SessionData{
		Email:       session.Profile.Email,
		Name:        session.Profile.Name,
		AccessToken: session.AccessToken,
	}})
}
