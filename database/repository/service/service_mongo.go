package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	repo := &MongoServiceRepo{coll: db.Collection(database.ServicesCollection)}

	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create service indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_name"),
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, nil)
}

func (r *MongoServiceRepo) GetAllNames(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, bson.M{"name": 1})
}

// find runs an unfiltered query with an optional projection.
func (r *MongoServiceRepo) find(ctx context.Context, projection bson.M) ([]models.Service, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) UpsertByName(ctx context.Context, service models.Service) (models.UpdateResult, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": service.Name}
	update := bson.M{"$set": bson.M{"name": service.Name, "slots": service.Slots}}
	result, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to upsert service %s: %w", service.Name, err)
	}
	return database.UpdateResult(result), nil
}
