package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// CredentialsKey holds the whole credential map as one JSON object:
// {"<email or username>": "<password>"}.
const CredentialsKey = "jpk_users"

const maxTxRetries = 5

// CredentialStore is the credential map kept under a single Redis key.
type CredentialStore struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewCredentialStore(client *redis.Client, log zerolog.Logger) *CredentialStore {
	return &CredentialStore{client: client, log: log}
}

func (s *CredentialStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	users, err := s.load(ctx, s.client)
	if err != nil {
		return "", false, err
	}
	pw, ok := users[key]
	return pw, ok, nil
}

// Create adds key to the map with an optimistic WATCH/MULTI cycle so two
// concurrent creates cannot drop each other's entries.
func (s *CredentialStore) Create(ctx context.Context, key, password string) error {
	txf := func(tx *redis.Tx) error {
		users, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		if _, exists := users[key]; exists {
			return domain.ErrUserExists
		}
		users[key] = password
		raw, err := json.Marshal(users)
		if err != nil {
			return fmt.Errorf("encode credentials: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, CredentialsKey, raw, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, CredentialsKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("create credential: %w", err)
		}
		return err
	}
	return fmt.Errorf("create credential: %w", redis.TxFailedErr)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// load reads the map. A missing or malformed value reads as empty.
func (s *CredentialStore) load(ctx context.Context, c getter) (map[string]string, error) {
	raw, err := c.Get(ctx, CredentialsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	users := map[string]string{}
	if err := json.Unmarshal(raw, &users); err != nil {
		s.log.Warn().Err(err).Str("key", CredentialsKey).Msg("malformed credential map, treating as empty")
		return map[string]string{}, nil
	}
	// A stored JSON null decodes to a nil map.
	if users == nil {
		users = map[string]string{}
	}
	return users, nil
}
