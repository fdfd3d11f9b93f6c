package repository

import (
	"context"

	"github.com/Tanvi183/zap-shift-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository defines data-access operations for payment records.
type PaymentRepository interface {
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
}

// MongoPaymentRepository implements PaymentRepository over the "payments" collection.
type MongoPaymentRepository struct {
	collection *mongo.Collection
}

// NewMongoPaymentRepository creates a new MongoPaymentRepository.
func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{collection: db.Collection("payments")}
}

// EnsureIndexes creates the unique index on transactionId. Concurrent
// confirmations of the same session race on the duplicate-check; the index
// makes the second insert fail deterministically instead of double-recording.
func (r *MongoPaymentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindByTransactionID returns the payment recorded for the given processor
// transaction id, or mongo.ErrNoDocuments.
func (r *MongoPaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.collection.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *MongoPaymentRepository) Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}
