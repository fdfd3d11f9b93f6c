package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values carried on a parcel.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Parcel is a shipment request stored in the "parcels" collection.
// CreatedAt is stamped server-side on insert; TrackingID stays empty
// until the payment for the parcel is confirmed.
type Parcel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SenderEmail   string             `bson:"senderEmail" json:"senderEmail"`
	ParcelName    string             `bson:"parcelName" json:"parcelName"`
	Cost          float64            `bson:"cost" json:"cost"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	TrackingID    string             `bson:"trackingId,omitempty" json:"trackingId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateParcelRequest is the payload for POST /parcels.
type CreateParcelRequest struct {
	SenderEmail   string  `json:"senderEmail" binding:"required,email"`
	ParcelName    string  `json:"parcelName" binding:"required"`
	Cost          float64 `json:"cost" binding:"required,gt=0"`
	PaymentStatus string  `json:"paymentStatus"`
}
