package v1

import (
	"net/http"
	"strings"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterSessionRoutes registers the routes for the session with the
// RouterGroup that is passed.
func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSession)
	r.DELETE("", co.DeleteSession)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Session
// @Success		204
// @Router			/v1/session [options]
func (co Controller) OptionsSession(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Sign out
// @Description	Signs the user out and deletes all local data. The access token from the Authorization header is revoked with the identity provider on a best effort basis.
// @Tags			Session
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/session [delete]
func (co Controller) DeleteSession(c *gin.Context) {
	// Revocation failures must not keep the user from signing out
	if co.Identity != nil {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token != "" {
			err := co.Identity.SignOut(c.Request.Context(), token)
			if err != nil {
				log.Warn().Err(err).Msg("could not revoke access token during sign-out")
			}
		}
	}

	err := co.Store.Reset()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
