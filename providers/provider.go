package providers

import (
	"context"

	"github.com/Tanvi183/zap-shift-server/models"
)

// CheckoutProvider abstracts the hosted-checkout payment processor.
type CheckoutProvider interface {
	// CreateCheckoutSession creates a hosted checkout session for the given
	// parcel and returns it with the redirect URL populated.
	CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error)

	// RetrieveSession fetches a session's current state by its identifier.
	RetrieveSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
}
