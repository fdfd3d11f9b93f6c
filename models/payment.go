package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an immutable record of one completed transaction, stored in
// the "payments" collection. TransactionID is the processor's payment-intent
// identifier and carries a unique index; it is the idempotency key for the
// whole confirmation flow.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Amount        float64            `bson:"amount" json:"amount"` // major currency units
	Currency      string             `bson:"currency" json:"currency"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	ParcelID      string             `bson:"parcelId" json:"parcelId"`
	ParcelName    string             `bson:"parcelName" json:"parcelName"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
	TrackingID    string             `bson:"trackingId" json:"trackingId"`
}

// CheckoutSession is this service's view of a processor-side checkout
// session. Providers map their native session object onto it so the
// reconciliation core never touches processor types directly.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentIntentID string
	PaymentStatus   string
	AmountTotal     int64 // minor currency units
	Currency        string
	CustomerEmail   string
	Metadata        map[string]string
}

// CreateCheckoutSessionRequest is the payload for POST /create-checkout-session.
type CreateCheckoutSessionRequest struct {
	Cost        float64 `json:"cost" binding:"required,gt=0"`
	ParcelName  string  `json:"parcelName" binding:"required"`
	ParcelID    string  `json:"parcelId" binding:"required"`
	SenderEmail string  `json:"senderEmail" binding:"required,email"`
}

// ParcelUpdateResult reports the parcel mutation performed during
// payment confirmation.
type ParcelUpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// PaymentConfirmation is the outcome of one PATCH /payment-success call.
// Success=false outcomes (missing session id, unpaid session, ...) are
// ordinary results, not server faults.
type PaymentConfirmation struct {
	Success       bool                `json:"success"`
	Message       string              `json:"message"`
	TrackingID    string              `json:"trackingId,omitempty"`
	TransactionID string              `json:"transactionId,omitempty"`
	PaymentID     string              `json:"paymentId,omitempty"`
	ModifyParcel  *ParcelUpdateResult `json:"modifyParcel,omitempty"`
}
