package providers

import (
	"context"
	"fmt"

	"github.com/Tanvi183/zap-shift-server/models"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// StripeProvider implements CheckoutProvider against Stripe Checkout.
type StripeProvider struct {
	siteDomain string // base URL for success/cancel redirects
}

// NewStripeProvider configures the Stripe client with the given secret key.
func NewStripeProvider(secretKey, siteDomain string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{siteDomain: siteDomain}
}

// CreateCheckoutSession creates a payment-mode checkout session with a single
// line item priced in minor units. Parcel linkage travels in the session
// metadata and is read back during confirmation.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	amount := int64(req.Cost * 100)

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Please pay for: %s", req.ParcelName)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.SenderEmail),
		SuccessURL:    stripe.String(p.siteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(p.siteDomain + "/dashboard/payment-cancelled"),
	}
	params.AddMetadata("parcelId", req.ParcelID)
	params.AddMetadata("parcelName", req.ParcelName)

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripeSession(s), nil
}

// RetrieveSession fetches a checkout session by id.
func (p *StripeProvider) RetrieveSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	s, err := session.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, err
	}
	return fromStripeSession(s), nil
}

func fromStripeSession(s *stripe.CheckoutSession) *models.CheckoutSession {
	cs := &models.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		cs.PaymentIntentID = s.PaymentIntent.ID
	}
	return cs
}
