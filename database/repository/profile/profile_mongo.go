package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymnexa/backend"
	"gymnexa/models"
	"gymnexa/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a profile repository on db.
func NewMongoProfileRepo(db *mongo.Database) ProfileRepository {
	repo := &MongoProfileRepo{coll: db.Collection(collectionName)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create profile indexes", zap.Error(err))
	}
	return repo
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoProfileRepo) Configured() bool { return true }

// Get retrieves a profile by uid. A missing profile is not an error.
func (r *MongoProfileRepo) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var profile models.UserProfile
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile %s: %w", uid, err)
	}
	return &profile, nil
}

// Create writes the whole profile document, replacing any previous one.
func (r *MongoProfileRepo) Create(ctx context.Context, profile *models.UserProfile) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"uid": profile.UID}, profile, opts); err != nil {
		return fmt.Errorf("failed to create profile %s: %w", profile.UID, err)
	}
	return nil
}

// Update applies a partial update and stamps updatedAt with the server clock.
func (r *MongoProfileRepo) Update(ctx context.Context, uid string, update models.ProfileUpdate) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	// An empty update only touches updatedAt; Mongo rejects an empty $set.
	doc := bson.M{"$currentDate": bson.M{"updatedAt": true}}
	if !update.Empty() {
		doc["$set"] = bson.M(update.Fields())
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"uid": uid}, doc)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", uid, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile %s: %w", uid, backend.ErrNotFound)
	}
	return nil
}
