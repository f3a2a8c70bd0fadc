package v1

import (
	"net/http"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for the user configuration
// with the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsUser)
	r.GET("", co.GetUser)
	r.PATCH("", co.UpdateUser)

	r.OPTIONS("/onboarding", co.OptionsOnboarding)
	r.POST("/onboarding", co.CompleteOnboarding)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user [options]
func (co Controller) OptionsUser(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user/onboarding [options]
func (co Controller) OptionsOnboarding(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get user configuration
// @Description	Returns the user configuration. Before onboarding has been completed, there is none.
// @Tags			User
// @Produce		json
// @Success		200	{object}	UserConfigResponse
// @Failure		404	{object}	UserConfigResponse
// @Router			/v1/user [get]
func (co Controller) GetUser(c *gin.Context) {
	config, err := co.Store.UserConfig()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserConfigResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, UserConfigResponse{Data: &config})
}

// @Summary		Update user configuration
// @Description	Updates the user configuration. Only values to be updated need to be specified, a configuration is created from the defaults when none exists yet.
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserConfigResponse
// @Failure		400		{object}	UserConfigResponse
// @Param			config	body		UserConfigEditable	true	"User configuration"
// @Router			/v1/user [patch]
func (co Controller) UpdateUser(c *gin.Context) {
	var editable UserConfigEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserConfigResponse{Error: &e})
		return
	}

	patch, err := editable.patch()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserConfigResponse{Error: &e})
		return
	}

	config, err := co.Store.UpdateUserConfig(patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserConfigResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, UserConfigResponse{Data: &config})
}

// @Summary		Complete onboarding
// @Description	Creates the user configuration from the answers given during onboarding and marks onboarding as completed.
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserConfigResponse
// @Failure		400		{object}	UserConfigResponse
// @Param			config	body		UserConfigEditable	true	"User configuration"
// @Router			/v1/user/onboarding [post]
func (co Controller) CompleteOnboarding(c *gin.Context) {
	var editable UserConfigEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserConfigResponse{Error: &e})
		return
	}

	patch, err := editable.patch()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserConfigResponse{Error: &e})
		return
	}

	config, err := co.Store.CompleteOnboarding(patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserConfigResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, UserConfigResponse{Data: &config})
}
