package userRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert $sets every field of the update on the user keyed by email,
// inserting the document on first login.
func (r *MongoUserRepo) Upsert(ctx context.Context, email string, update models.UserUpdate) (models.UpdateResult, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email}
	set := bson.M(update.Fields(email, false))
	opts := options.Update().SetUpsert(true)
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set}, opts)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to upsert user %s: %w", email, err)
	}
	return database.UpdateResult(result), nil
}

// SetRole updates the role of an existing user without upserting.
func (r *MongoUserRepo) SetRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": role}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to set role for user %s: %w", email, err)
	}
	return database.UpdateResult(result), nil
}
