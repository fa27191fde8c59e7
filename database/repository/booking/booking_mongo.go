package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection(database.BookingsCollection)}

	if err := repo.EnsureIndexes(); err != nil {
		zap.L().Warn("failed to create booking indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *MongoBookingRepo) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patient": patient})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) FindExisting(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (models.InsertResult, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	booking.ID = primitive.NilObjectID
	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, database.ErrDuplicate
		}
		return models.InsertResult{}, fmt.Errorf("failed to insert booking: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = id
	}
	return database.InsertResult(result), nil
}
