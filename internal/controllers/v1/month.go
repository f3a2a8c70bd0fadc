package v1

import (
	"net/http"

	"github.com/budgetcopain/backend/internal/aggregate"
	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type MonthResponse struct {
	Data  *aggregate.MonthData `json:"data"`  // Data for the month
	Error *string              `json:"error"` // The error, if any occurred
}

// RegisterMonthRoutes registers the routes for months with the
// RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", co.OptionsMonth)
	r.GET("/:month", co.GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func (co Controller) OptionsMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get month data
// @Description	Returns the total expenses and income, remaining budget and the expense breakdown by category for a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
		return
	}

	data := aggregate.ForMonth(co.Store.Snapshot(), uri.month())
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}
