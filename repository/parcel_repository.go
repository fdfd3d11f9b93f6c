package repository

import (
	"context"

	"github.com/Tanvi183/zap-shift-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ParcelRepository defines data-access operations for parcels.
type ParcelRepository interface {
	FindAll(ctx context.Context, senderEmail string) ([]models.Parcel, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error)
	Insert(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, trackingID string) (*models.ParcelUpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoParcelRepository implements ParcelRepository over the "parcels" collection.
type MongoParcelRepository struct {
	collection *mongo.Collection
}

// NewMongoParcelRepository creates a new MongoParcelRepository.
func NewMongoParcelRepository(db *mongo.Database) *MongoParcelRepository {
	return &MongoParcelRepository{collection: db.Collection("parcels")}
}

// FindAll returns parcels newest-first, optionally filtered by sender email.
func (r *MongoParcelRepository) FindAll(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
	filter := bson.M{}
	if senderEmail != "" {
		filter["senderEmail"] = senderEmail
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	parcels := []models.Parcel{}
	if err := cursor.All(ctx, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *MongoParcelRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&parcel); err != nil {
		return nil, err
	}
	return &parcel, nil
}

func (r *MongoParcelRepository) Insert(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, parcel)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// MarkPaid flips a parcel to paid and assigns its tracking id. The update is
// a plain $set, so re-applying it with the same tracking id is harmless.
func (r *MongoParcelRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, trackingID string) (*models.ParcelUpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentStatusPaid,
		"trackingId":    trackingID,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	return &models.ParcelUpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *MongoParcelRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
