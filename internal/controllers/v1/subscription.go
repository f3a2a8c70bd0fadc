package v1

import (
	"errors"
	"net/http"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/internal/payment"
	"github.com/budgetcopain/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// SubscriptionRequest is the body for confirming a purchase.
type SubscriptionRequest struct {
	Receipt string `json:"receipt"` // The purchase receipt from the app store
}

// SubscriptionData is the result of a confirmed purchase.
type SubscriptionData struct {
	Plan          models.SubscriptionPlan `json:"plan" example:"monthly"` // The plan the purchase grants
	TransactionID string                  `json:"transactionId"`          // The provider's transaction ID
}

type SubscriptionResponse struct {
	Data  *SubscriptionData `json:"data"`  // The subscription
	Error *string           `json:"error"` // The error, if any occurred
}

// RegisterSubscriptionRoutes registers the routes for subscriptions
// with the RouterGroup that is passed.
func (co Controller) RegisterSubscriptionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSubscription)
	r.POST("", co.CreateSubscription)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscription
// @Success		204
// @Router			/v1/subscription [options]
func (co Controller) OptionsSubscription(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Confirm a purchase
// @Description	Verifies a purchase receipt with the payment provider and stores the granted plan in the user configuration
// @Tags			Subscription
// @Accept			json
// @Produce		json
// @Success		201			{object}	SubscriptionResponse
// @Failure		400			{object}	SubscriptionResponse
// @Failure		404			{object}	SubscriptionResponse
// @Failure		502			{object}	SubscriptionResponse
// @Failure		501			{object}	SubscriptionResponse
// @Param			purchase	body		SubscriptionRequest	true	"Purchase"
// @Router			/v1/subscription [post]
func (co Controller) CreateSubscription(c *gin.Context) {
	if co.Payment == nil {
		e := errPaymentNotConfigured.Error()
		c.JSON(http.StatusNotImplemented, SubscriptionResponse{Error: &e})
		return
	}

	var request SubscriptionRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	if request.Receipt == "" {
		e := errReceiptNotSet.Error()
		c.JSON(http.StatusBadRequest, SubscriptionResponse{Error: &e})
		return
	}

	purchase, err := co.Payment.ConfirmPurchase(c.Request.Context(), request.Receipt)
	if err != nil {
		e := err.Error()

		if errors.Is(err, payment.ErrReceiptInvalid) || errors.Is(err, models.ErrSubscriptionPlan) {
			c.JSON(http.StatusBadRequest, SubscriptionResponse{Error: &e})
			return
		}

		c.JSON(http.StatusBadGateway, SubscriptionResponse{Error: &e})
		return
	}

	_, err = co.Store.UpdateUserConfig(store.UserConfigPatch{SubscriptionPlan: &purchase.Plan})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, SubscriptionResponse{Data: &SubscriptionData{
		Plan:          purchase.Plan,
		TransactionID: purchase.TransactionID,
	}})
}
