package services

import (
	"context"
	"net/http"
	"time"

	"github.com/Tanvi183/zap-shift-server/models"
	"github.com/Tanvi183/zap-shift-server/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ParcelService defines the business logic for parcel CRUD.
type ParcelService interface {
	ListParcels(ctx context.Context, senderEmail string) ([]models.Parcel, *ServiceError)
	GetParcel(ctx context.Context, id string) (*models.Parcel, *ServiceError)
	CreateParcel(ctx context.Context, req *models.CreateParcelRequest) (string, *ServiceError)
	DeleteParcel(ctx context.Context, id string) (int64, *ServiceError)
}

type parcelServiceImpl struct {
	repo   repository.ParcelRepository
	logger *zap.Logger
}

// NewParcelService creates a new ParcelService.
func NewParcelService(repo repository.ParcelRepository, logger *zap.Logger) ParcelService {
	return &parcelServiceImpl{repo: repo, logger: logger}
}

// ListParcels returns parcels newest-first, optionally filtered by sender email.
func (s *parcelServiceImpl) ListParcels(ctx context.Context, senderEmail string) ([]models.Parcel, *ServiceError) {
	parcels, err := s.repo.FindAll(ctx, senderEmail)
	if err != nil {
		s.logger.Error("ListParcels failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to list parcels"}
	}
	return parcels, nil
}

func (s *parcelServiceImpl) GetParcel(ctx context.Context, id string) (*models.Parcel, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid parcel id"}
	}

	parcel, err := s.repo.FindByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Parcel not found"}
	}
	if err != nil {
		s.logger.Error("GetParcel failed", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch parcel"}
	}
	return parcel, nil
}

// CreateParcel stamps the creation time server-side and inserts the parcel
// as unpaid unless the request says otherwise.
func (s *parcelServiceImpl) CreateParcel(ctx context.Context, req *models.CreateParcelRequest) (string, *ServiceError) {
	status := req.PaymentStatus
	if status == "" {
		status = models.PaymentStatusUnpaid
	}

	parcel := &models.Parcel{
		SenderEmail:   req.SenderEmail,
		ParcelName:    req.ParcelName,
		Cost:          req.Cost,
		PaymentStatus: status,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, parcel)
	if err != nil {
		s.logger.Error("CreateParcel failed", zap.Error(err))
		return "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create parcel"}
	}

	s.logger.Info("Parcel created",
		zap.String("parcel_id", id.Hex()),
		zap.String("sender_email", parcel.SenderEmail),
	)
	return id.Hex(), nil
}

func (s *parcelServiceImpl) DeleteParcel(ctx context.Context, id string) (int64, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid parcel id"}
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.logger.Error("DeleteParcel failed", zap.String("id", id), zap.Error(err))
		return 0, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to delete parcel"}
	}
	return deleted, nil
}
