package v1

import (
	"net/http"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/budgetcopain/backend/internal/powens"
	"github.com/gin-gonic/gin"
)

// BankConnectRequest is the body for starting a bank connection.
type BankConnectRequest struct {
	RedirectURI string `json:"redirectUri" example:"budgetcopain://powens-callback"` // Where the webview redirects after the connection
}

type BankConnectResponse struct {
	Data  *powens.Connection `json:"data"`  // The connection
	Error *string            `json:"error"` // The error, if any occurred
}

// BankCallbackData are the parameters Powens appends to the redirect
// URI after the user connected their bank.
type BankCallbackData struct {
	ConnectionID string `form:"connection_id" json:"connectionId"` // ID of the new bank connection
	Code         string `form:"code" json:"code"`                  // The code to fetch data for the connection
	State        string `form:"state" json:"state"`                // Opaque state passed through the webview
}

type BankCallbackResponse struct {
	Data  *BankCallbackData `json:"data"`  // The callback parameters
	Error *string           `json:"error"` // The error, if any occurred
}

// RegisterBankRoutes registers the routes for bank connections with
// the RouterGroup that is passed.
func (co Controller) RegisterBankRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/connect", co.OptionsBankConnect)
	r.POST("/connect", co.ConnectBank)

	r.OPTIONS("/callback", co.OptionsBankCallback)
	r.GET("/callback", co.BankCallback)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank
// @Success		204
// @Router			/v1/bank/connect [options]
func (co Controller) OptionsBankConnect(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank
// @Success		204
// @Router			/v1/bank/callback [options]
func (co Controller) OptionsBankCallback(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Connect a bank account
// @Description	Initializes a Powens user and returns the URL of the webview where the user connects their bank
// @Tags			Bank
// @Accept			json
// @Produce		json
// @Success		201		{object}	BankConnectResponse
// @Failure		400		{object}	BankConnectResponse
// @Failure		502		{object}	BankConnectResponse
// @Failure		501		{object}	BankConnectResponse
// @Param			connect	body		BankConnectRequest	true	"Connection parameters"
// @Router			/v1/bank/connect [post]
func (co Controller) ConnectBank(c *gin.Context) {
	if co.Bank == nil {
		e := errBankNotConfigured.Error()
		c.JSON(http.StatusNotImplemented, BankConnectResponse{Error: &e})
		return
	}

	var request BankConnectRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankConnectResponse{Error: &e})
		return
	}

	connection, err := co.Bank.Connect(c.Request.Context(), request.RedirectURI)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadGateway, BankConnectResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, BankConnectResponse{Data: &connection})
}

// @Summary		Bank connection callback
// @Description	Receives the parameters Powens appends to the redirect URI and returns them to the caller
// @Tags			Bank
// @Produce		json
// @Success		200	{object}	BankCallbackResponse
// @Failure		400	{object}	BankCallbackResponse
// @Param			connection_id	query	string	false	"ID of the new bank connection"
// @Param			code			query	string	false	"The code to fetch data for the connection"
// @Param			state			query	string	false	"Opaque state passed through the webview"
// @Router			/v1/bank/callback [get]
func (co Controller) BankCallback(c *gin.Context) {
	var data BankCallbackData
	if err := c.Bind(&data); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BankCallbackResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BankCallbackResponse{Data: &data})
}
