package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"eats-backend/pkg/resp"
	"eats-backend/services"
	"eats-backend/utils"
)

type OrderController struct {
	Checkout *services.CheckoutService
	Webhook  *services.WebhookService
	Orders   *services.OrderService
}

func NewOrderController(
	checkout *services.CheckoutService,
	webhook *services.WebhookService,
	orders *services.OrderService,
) *OrderController {
	return &OrderController{Checkout: checkout, Webhook: webhook, Orders: orders}
}

// POST /api/order/checkout/create-session
func (oc *OrderController) CreateCheckoutSession(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateCheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	url, err := oc.Checkout.CreateCheckout(uid, &req)
	if err != nil {
		log.Printf("checkout: %v", err)
		writeServiceError(c, err)
		return
	}

	resp.OK(c, gin.H{"url": url})
}

// POST /api/order/checkout/webhook
// Verification runs over the exact received bytes, so the body is read raw,
// never bound as JSON.
func (oc *OrderController) StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		resp.BadRequest(c, "cannot read body")
		return
	}
	sig := c.GetHeader("Stripe-Signature")

	if err := oc.Webhook.HandleEvent(payload, sig); err != nil {
		log.Printf("webhook: %v", err)
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// GET /api/order
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := oc.Orders.ListForUser(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}
