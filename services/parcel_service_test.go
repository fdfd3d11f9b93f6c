package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tanvi183/zap-shift-server/models"
	"github.com/Tanvi183/zap-shift-server/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestParcelService(repo *mockParcelRepo) services.ParcelService {
	logger, _ := zap.NewDevelopment()
	return services.NewParcelService(repo, logger)
}

func TestListParcels_Success(t *testing.T) {
	repo := &mockParcelRepo{parcels: []models.Parcel{
		{ParcelName: "Box", SenderEmail: "a@b.com"},
		{ParcelName: "Crate", SenderEmail: "a@b.com"},
	}}
	svc := newTestParcelService(repo)

	parcels, svcErr := svc.ListParcels(context.Background(), "a@b.com")

	assert.Nil(t, svcErr)
	assert.Len(t, parcels, 2)
}

func TestListParcels_RepoError(t *testing.T) {
	repo := &mockParcelRepo{findAllErr: errors.New("cursor error")}
	svc := newTestParcelService(repo)

	_, svcErr := svc.ListParcels(context.Background(), "")

	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}

func TestGetParcel_InvalidID(t *testing.T) {
	svc := newTestParcelService(&mockParcelRepo{})

	_, svcErr := svc.GetParcel(context.Background(), "not-hex")

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestGetParcel_NotFound(t *testing.T) {
	repo := &mockParcelRepo{findErr: mongo.ErrNoDocuments}
	svc := newTestParcelService(repo)

	_, svcErr := svc.GetParcel(context.Background(), primitive.NewObjectID().Hex())

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestGetParcel_Success(t *testing.T) {
	parcel := &models.Parcel{ID: primitive.NewObjectID(), ParcelName: "Box"}
	repo := &mockParcelRepo{parcel: parcel}
	svc := newTestParcelService(repo)

	got, svcErr := svc.GetParcel(context.Background(), parcel.ID.Hex())

	assert.Nil(t, svcErr)
	assert.Equal(t, parcel, got)
}

func TestCreateParcel_StampsCreatedAtAndDefaultsUnpaid(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockParcelRepo{insertedID: id}
	svc := newTestParcelService(repo)

	inserted, svcErr := svc.CreateParcel(context.Background(), &models.CreateParcelRequest{
		SenderEmail: "a@b.com",
		ParcelName:  "Box",
		Cost:        15,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, id.Hex(), inserted)
	if assert.Len(t, repo.inserted, 1) {
		p := repo.inserted[0]
		assert.Equal(t, models.PaymentStatusUnpaid, p.PaymentStatus)
		assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt, 5*time.Second)
		assert.Empty(t, p.TrackingID, "tracking id is assigned only on payment")
	}
}

func TestDeleteParcel_InvalidID(t *testing.T) {
	svc := newTestParcelService(&mockParcelRepo{})

	_, svcErr := svc.DeleteParcel(context.Background(), "zzz")

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestDeleteParcel_Success(t *testing.T) {
	repo := &mockParcelRepo{deleted: 1}
	svc := newTestParcelService(repo)

	deleted, svcErr := svc.DeleteParcel(context.Background(), primitive.NewObjectID().Hex())

	assert.Nil(t, svcErr)
	assert.Equal(t, int64(1), deleted)
}
