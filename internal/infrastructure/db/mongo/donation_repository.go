package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

const collectionDonations = "donations"

type DonationRepository struct {
	col *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{col: db.Collection(collectionDonations)}
}

// Create inserts a new donation document.
func (r *DonationRepository) Create(ctx context.Context, d *domain.Donation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the donations collection.
func (r *DonationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
