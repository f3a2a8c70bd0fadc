package v1

import (
	"net/http"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/internal/store"
	"github.com/budgetcopain/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = co.Store.Transaction(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			month		query	string	false	"Only transactions in this month, YYYY-MM format"
// @Param			type		query	string	false	"Filter by type"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			source		query	string	false	"Filter by source"
// @Param			note		query	string	false	"Filter by note, supports globbing with *"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	if filter.Type != "" && !slices.Contains([]models.TransactionType{models.TypeExpense, models.TypeIncome}, filter.Type) {
		s := errTransactionTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	if filter.Source != "" && !slices.Contains([]models.TransactionSource{models.SourceManual, models.SourceBank}, filter.Source) {
		s := errTransactionSourceInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	var month types.Month
	if !filter.Month.IsZero() {
		month = types.MonthOf(filter.Month)
	}

	matches := make([]models.Transaction, 0)
	for _, transaction := range co.Store.Transactions() {
		if !month.IsZero() && !transaction.InMonth(month) {
			continue
		}
		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}
		if filter.CategoryID != "" && transaction.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Source != "" && transaction.Source != filter.Source {
			continue
		}
		if filter.Note != "" && !glob.Glob(filter.Note, transaction.Note) {
			continue
		}

		matches = append(matches, transaction)
	}

	total := len(matches)

	// Apply the offset
	if int(filter.Offset) < len(matches) {
		matches = matches[filter.Offset:]
	} else {
		matches = []models.Transaction{}
	}

	// Default to 50 transactions and apply the limit
	limit := 50
	if c.Request.URL.Query().Has("limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(matches) {
		matches = matches[:limit]
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: matches,
		Pagination: &Pagination{
			Count:  len(matches),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction, err := co.Store.Transaction(uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction, err := co.Store.AddTransaction(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		store.TransactionPatch	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var patch store.TransactionPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction, err := co.Store.UpdateTransaction(uri.ID, patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.Store.DeleteTransaction(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
