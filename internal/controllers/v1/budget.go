package v1

import (
	"net/http"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/budgetcopain/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetEditable are the fields of a monthly budget that can be set
// through the API.
type BudgetEditable struct {
	TotalBudget decimal.Decimal `json:"totalBudget" example:"1000"` // The total budget for the month
}

type BudgetListResponse struct {
	Data  map[string]models.MonthlyBudget `json:"data"`  // All monthly budgets, keyed by YYYY-MM month
	Error *string                         `json:"error"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *models.MonthlyBudget `json:"data"`                                                       // The monthly budget
	Error *string               `json:"error" example:"there is no monthly budget matching your query"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for monthly budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBudgets)
	r.GET("", co.GetBudgets)

	r.OPTIONS("/:month", co.OptionsBudgetMonth)
	r.GET("/:month", co.GetBudget)
	r.PUT("/:month", co.SetBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgets(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/budgets/{month} [options]
func (co Controller) OptionsBudgetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPut(c)
}

// @Summary		Get monthly budgets
// @Description	Returns all configured monthly budgets, keyed by month
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, BudgetListResponse{Data: co.Store.MonthlyBudgets()})
}

// @Summary		Get monthly budget
// @Description	Returns the budget configured for a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/budgets/{month} [get]
func (co Controller) GetBudget(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	budget, err := co.Store.MonthlyBudget(uri.month())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Set monthly budget
// @Description	Sets the total budget for a month, creating the budget if the month does not have one yet
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{month} [put]
func (co Controller) SetBudget(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := co.Store.SetMonthlyBudget(uri.month(), editable.TotalBudget)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}
