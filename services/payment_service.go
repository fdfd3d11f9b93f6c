package services

import (
	"context"
	"net/http"
	"time"

	"github.com/Tanvi183/zap-shift-server/models"
	"github.com/Tanvi183/zap-shift-server/providers"
	"github.com/Tanvi183/zap-shift-server/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Confirmation outcome messages, wire-compatible with the frontend.
const (
	MsgNoSession        = "No session ID"
	MsgInvalidSession   = "Invalid session"
	MsgAlreadyProcessed = "Payment already processed"
	MsgMissingMetadata  = "Missing metadata in Stripe session"
	MsgNotPaid          = "Payment is not marked as paid"
	MsgProcessed        = "Payment processed successfully"
	MsgServerError      = "Server error"
)

// PaymentService defines the payment business logic: starting a checkout
// session and confirming its result.
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutSessionRequest) (string, *ServiceError)
	ConfirmPayment(ctx context.Context, sessionID string) (*models.PaymentConfirmation, *ServiceError)
}

type paymentServiceImpl struct {
	parcels  repository.ParcelRepository
	payments repository.PaymentRepository
	provider providers.CheckoutProvider
	logger   *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	parcels repository.ParcelRepository,
	payments repository.PaymentRepository,
	provider providers.CheckoutProvider,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		parcels:  parcels,
		payments: payments,
		provider: provider,
		logger:   logger,
	}
}

// CreateCheckoutSession opens a hosted checkout session for a parcel and
// returns the redirect URL.
func (s *paymentServiceImpl) CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutSessionRequest) (string, *ServiceError) {
	sess, err := s.provider.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.logger.Error("CreateCheckoutSession failed",
			zap.String("parcel_id", req.ParcelID),
			zap.Error(err),
		)
		return "", &ServiceError{StatusCode: http.StatusBadGateway, Message: "Failed to create checkout session"}
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("parcel_id", req.ParcelID),
	)
	return sess.URL, nil
}

// ConfirmPayment reconciles a completed checkout session: it transitions the
// parcel to paid and records the transaction exactly once, keyed on the
// processor's payment-intent id. Safe to replay; duplicate success callbacks
// (browser refresh, processor retry) collapse onto the first result.
//
// The payment record is inserted before the parcel update. transactionId
// carries a unique index, so the insert is the single commit point: a crash
// between the two mutations leaves only a missing parcel status, which the
// next replay repairs via the already-processed path.
func (s *paymentServiceImpl) ConfirmPayment(ctx context.Context, sessionID string) (*models.PaymentConfirmation, *ServiceError) {
	if sessionID == "" {
		return &models.PaymentConfirmation{Success: false, Message: MsgNoSession}, nil
	}

	sess, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		s.logger.Error("Session retrieval failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: MsgServerError}
	}
	if sess == nil || sess.PaymentIntentID == "" {
		return &models.PaymentConfirmation{Success: false, Message: MsgInvalidSession}, nil
	}
	transactionID := sess.PaymentIntentID

	existing, err := s.payments.FindByTransactionID(ctx, transactionID)
	if err != nil && err != mongo.ErrNoDocuments {
		s.logger.Error("Duplicate-payment lookup failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: MsgServerError}
	}
	if existing != nil {
		return s.alreadyProcessed(ctx, existing), nil
	}

	parcelHex := ""
	if sess.Metadata != nil {
		parcelHex = sess.Metadata["parcelId"]
	}
	parcelID, oidErr := primitive.ObjectIDFromHex(parcelHex)
	if parcelHex == "" || oidErr != nil {
		return &models.PaymentConfirmation{Success: false, Message: MsgMissingMetadata}, nil
	}

	trackingID := GenerateTrackingID()

	if sess.PaymentStatus != models.PaymentStatusPaid {
		return &models.PaymentConfirmation{Success: false, Message: MsgNotPaid}, nil
	}

	payment := &models.Payment{
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      sess.Currency,
		CustomerEmail: sess.CustomerEmail,
		ParcelID:      parcelHex,
		ParcelName:    sess.Metadata["parcelName"],
		TransactionID: transactionID,
		PaymentStatus: sess.PaymentStatus,
		PaidAt:        time.Now().UTC(),
		TrackingID:    trackingID,
	}

	paymentID, err := s.payments.Insert(ctx, payment)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race against a concurrent confirmation of the same
		// session; the unique index on transactionId decided the winner.
		winner, findErr := s.payments.FindByTransactionID(ctx, transactionID)
		if findErr != nil {
			s.logger.Error("Winner lookup after duplicate insert failed",
				zap.String("transaction_id", transactionID), zap.Error(findErr))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: MsgServerError}
		}
		return s.alreadyProcessed(ctx, winner), nil
	}
	if err != nil {
		s.logger.Error("Payment insert failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: MsgServerError}
	}

	update, err := s.parcels.MarkPaid(ctx, parcelID, trackingID)
	if err != nil {
		// Payment is committed; replaying the confirmation repairs the parcel.
		s.logger.Error("Parcel update failed after payment insert",
			zap.String("parcel_id", parcelHex),
			zap.String("transaction_id", transactionID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: MsgServerError}
	}
	if update.MatchedCount == 0 {
		s.logger.Warn("Payment recorded for unknown parcel",
			zap.String("parcel_id", parcelHex),
			zap.String("transaction_id", transactionID),
		)
	}

	s.logger.Info("Payment processed",
		zap.String("transaction_id", transactionID),
		zap.String("parcel_id", parcelHex),
		zap.String("tracking_id", trackingID),
	)

	return &models.PaymentConfirmation{
		Success:       true,
		Message:       MsgProcessed,
		TrackingID:    trackingID,
		TransactionID: transactionID,
		PaymentID:     paymentID.Hex(),
		ModifyParcel:  update,
	}, nil
}

// alreadyProcessed builds the idempotent-replay response and re-asserts the
// parcel's paid status, healing a crash that happened between the payment
// insert and the parcel update on an earlier attempt.
func (s *paymentServiceImpl) alreadyProcessed(ctx context.Context, payment *models.Payment) *models.PaymentConfirmation {
	if parcelID, err := primitive.ObjectIDFromHex(payment.ParcelID); err == nil {
		if _, err := s.parcels.MarkPaid(ctx, parcelID, payment.TrackingID); err != nil {
			s.logger.Warn("Parcel re-assert failed on replay",
				zap.String("parcel_id", payment.ParcelID),
				zap.Error(err),
			)
		}
	}

	return &models.PaymentConfirmation{
		Success:       true,
		Message:       MsgAlreadyProcessed,
		TrackingID:    payment.TrackingID,
		TransactionID: payment.TransactionID,
	}
}
