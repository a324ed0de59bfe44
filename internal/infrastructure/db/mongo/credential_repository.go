package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

const collectionCredentials = "credentials"

// CredentialRepository stores the credential map as one document per key.
// The key (email or username) is the document _id, so uniqueness comes from
// the primary index.
type CredentialRepository struct {
	col *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{col: db.Collection(collectionCredentials)}
}

type credentialDoc struct {
	Key       string    `bson:"_id"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *CredentialRepository) Lookup(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc credentialDoc
	err := r.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("find credential: %w", err)
	}
	return doc.Password, true, nil
}

func (r *CredentialRepository) Create(ctx context.Context, key, password string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := credentialDoc{Key: key, Password: password, CreatedAt: time.Now().UTC()}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}
