package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names inside the doctors portal database.
const (
	ServicesCollection = "services"
	BookingsCollection = "bookings"
	UsersCollection    = "users"
	DoctorsCollection  = "doctors"
)

var (
	// ErrNotFound is returned by repositories when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate document")
)

// Connect opens the shared MongoDB client and verifies it with a ping.
// Stable API v1 is requested for SRV (Atlas) connection strings.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri).SetBSONOptions(BSONOptions())
	if strings.HasPrefix(uri, "mongodb+srv://") {
		clientOptions.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// BSONOptions makes nested documents in free-form fields decode as maps so
// they render as JSON objects.
func BSONOptions() *options.BSONOptions {
	return &options.BSONOptions{DefaultDocumentM: true}
}

// NewContext derives a per-operation context with the given timeout.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

func InsertResult(res *mongo.InsertOneResult) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func UpdateResult(res *mongo.UpdateResult) models.UpdateResult {
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func DeleteResult(res *mongo.DeleteResult) models.DeleteResult {
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
