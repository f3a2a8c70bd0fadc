// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/budgetcopain/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error"`
}

func RegisterRoutes(r *gin.RouterGroup, backend storage.Backend) {
	r.OPTIONS("", Options)
	r.GET("", Get(backend))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := backend.Ping()
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
