package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/internal/domain/repository"
)

// MongoSessionRepository implements the SessionRepository interface
type MongoSessionRepository struct {
	collection *mongo.Collection
	opts       options
}

// NewMongoSessionRepository creates a new MongoDB session repository.
// Documents are removed by the server once expiresAt has passed.
func NewMongoSessionRepository(ctx context.Context, db *mongo.Database, opts ...Option) (repository.SessionRepository, error) {
	collection := db.Collection("sessions")

	// TTL index, expire exactly at expiresAt
	ttlIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: mongoopts.Index().SetExpireAfterSeconds(0),
	}
	userIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	}

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{ttlIndex, userIndex}); err != nil {
		return nil, fmt.Errorf("failed to create session indexes: %w", err)
	}

	return &MongoSessionRepository{
		collection: collection,
		opts:       buildOptions(opts),
	}, nil
}

// Save inserts or replaces a session
func (r *MongoSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": session.ID},
		session,
		mongoopts.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrBackendUnavailable, err)
	}
	return nil
}

// Find returns a live session. The TTL monitor runs about once a minute, so
// expiry is checked here as well.
func (r *MongoSessionRepository) Find(ctx context.Context, id string) (*entity.Session, error) {
	var session entity.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrBackendUnavailable, err)
	}
	if session.Expired(r.opts.now()) {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (r *MongoSessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrBackendUnavailable, err)
	}
	return nil
}
