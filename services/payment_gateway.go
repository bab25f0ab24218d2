package services

import (
	"encoding/json"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

const currency = "usd"

// CheckoutEvent is the gateway-agnostic view of a verified webhook delivery.
// Completed is false for event types this backend does not care about.
type CheckoutEvent struct {
	Completed   bool
	OrderID     string
	AmountTotal int64
}

// CheckoutGateway is the boundary to the hosted payment provider. Checkout
// and webhook services depend on this, not on Stripe directly.
type CheckoutGateway interface {
	CreateSession(lines []PricedLine, deliveryPrice int64, orderID string) (string, error)
	VerifyEvent(payload []byte, sigHeader string) (CheckoutEvent, error)
}

type StripeGateway struct {
	webhookSecret string
	frontendURL   string
}

func NewStripeGateway(secretKey, webhookSecret, frontendURL string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{webhookSecret: webhookSecret, frontendURL: frontendURL}
}

// CreateSession builds a hosted checkout session from the resolved line
// items plus a fixed-amount delivery shipping option, with the order id in
// the session metadata so the webhook can find its way back.
func (g *StripeGateway) CreateSession(lines []PricedLine, deliveryPrice int64, orderID string) (string, error) {
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, l := range lines {
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(l.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(l.UnitPrice),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(l.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:      stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: items,
		ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
			{
				ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
					DisplayName: stripe.String("Delivery"),
					Type:        stripe.String("fixed_amount"),
					FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
						Amount:   stripe.Int64(deliveryPrice),
						Currency: stripe.String(currency),
					},
				},
			},
		},
		SuccessURL: stripe.String(g.frontendURL + "/order-status?success=true"),
		CancelURL:  stripe.String(g.frontendURL + "/order-status?cancelled=true"),
	}
	params.AddMetadata("orderId", orderID)

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if s.URL == "" {
		return "", ErrGateway
	}
	return s.URL, nil
}

// VerifyEvent checks the signature over the exact received bytes and
// extracts the completed-checkout fields. Any other event type verifies
// fine but comes back with Completed false.
func (g *StripeGateway) VerifyEvent(payload []byte, sigHeader string) (CheckoutEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return CheckoutEvent{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if event.Type != "checkout.session.completed" {
		return CheckoutEvent{}, nil
	}
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return CheckoutEvent{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return CheckoutEvent{
		Completed:   true,
		OrderID:     sess.Metadata["orderId"],
		AmountTotal: sess.AmountTotal,
	}, nil
}
