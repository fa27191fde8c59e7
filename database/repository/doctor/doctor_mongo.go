package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo(db *mongo.Database) DoctorRepository {
	repo := &MongoDoctorRepo{coll: db.Collection(database.DoctorsCollection)}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_idx"),
	})
	if err != nil {
		zap.L().Warn("failed to create doctor indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) (models.InsertResult, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	doctor.ID = primitive.NilObjectID
	result, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to insert doctor %s: %w", doctor.Email, err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		doctor.ID = id
	}
	return database.InsertResult(result), nil
}

// DeleteByEmail removes one doctor with the given email. No match is not an error.
func (r *MongoDoctorRepo) DeleteByEmail(ctx context.Context, email string) (models.DeleteResult, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete doctor %s: %w", email, err)
	}
	return database.DeleteResult(result), nil
}
