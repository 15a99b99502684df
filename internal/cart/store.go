package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type snapshotStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type cartKeyer interface {
	CartKey(token string) string
}

// Store persists cart snapshots in Redis keyed by an opaque cart token.
// Every save refreshes the TTL so an active session never expires mid-order.
type Store struct {
	store snapshotStore
	keyer cartKeyer
	ttl   time.Duration
}

// NewStore constructs the snapshot store.
func NewStore(store snapshotStore, keyer cartKeyer, ttl time.Duration) (*Store, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if keyer == nil {
		return nil, fmt.Errorf("cart keyer required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &Store{store: store, keyer: keyer, ttl: ttl}, nil
}

// MintToken issues a fresh opaque cart token.
func (s *Store) MintToken() string {
	return uuid.NewString()
}

// ValidateToken rejects tokens that are not well-formed UUIDs before they
// ever reach Redis.
func ValidateToken(token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid cart token").
			WithDetails(map[string]string{"cart_token": "must be a valid token"})
	}
	return nil
}

// Load fetches the snapshot for the token. A missing key yields an empty
// cart rather than an error so expired sessions restart cleanly.
func (s *Store) Load(ctx context.Context, token string) (*Cart, error) {
	raw, err := s.store.Get(ctx, s.keyer.CartKey(token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewCart(), nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis: load cart")
	}

	var state Cart
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart snapshot")
	}
	if state.Lines == nil {
		state.Lines = []Line{}
	}
	return &state, nil
}

// Save writes the snapshot and refreshes its TTL.
func (s *Store) Save(ctx context.Context, token string, state *Cart) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}
	if err := s.store.Set(ctx, s.keyer.CartKey(token), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis: save cart")
	}
	return nil
}

// Delete drops the snapshot entirely.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.store.Del(ctx, s.keyer.CartKey(token)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis: delete cart")
	}
	return nil
}

// Touch refreshes the TTL without rewriting the snapshot.
func (s *Store) Touch(ctx context.Context, token string) error {
	if err := s.store.Expire(ctx, s.keyer.CartKey(token), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis: touch cart")
	}
	return nil
}
