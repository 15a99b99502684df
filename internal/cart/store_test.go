package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySnapshots struct {
	values map[string]string
	ttls   map[string]time.Duration
	setErr error
	getErr error
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (m *memorySnapshots) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value.(string)
	m.ttls[key] = ttl
	return nil
}

func (m *memorySnapshots) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	value, ok := m.values[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (m *memorySnapshots) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
		delete(m.ttls, key)
	}
	return nil
}

func (m *memorySnapshots) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.ttls[key] = ttl
	return nil
}

type staticKeyer struct{}

func (staticKeyer) CartKey(token string) string { return "brasa:cart:" + token }

func newTestStore(t *testing.T) (*Store, *memorySnapshots) {
	t.Helper()
	snapshots := newMemorySnapshots()
	store, err := NewStore(snapshots, staticKeyer{}, time.Hour)
	require.NoError(t, err)
	return store, snapshots
}

func TestNewStore_ValidatesDeps(t *testing.T) {
	_, err := NewStore(nil, staticKeyer{}, time.Hour)
	require.Error(t, err)

	_, err = NewStore(newMemorySnapshots(), nil, time.Hour)
	require.Error(t, err)

	_, err = NewStore(newMemorySnapshots(), staticKeyer{}, 0)
	require.Error(t, err)
}

func TestStoreLoad_MissingKeyYieldsEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)

	state, err := store.Load(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
	assert.NotNil(t, state.Lines)
}

func TestStoreSaveLoad_Roundtrip(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()
	token := store.MintToken()

	state := NewCart()
	note := "bem passado"
	state.AddItem(Line{
		DishID:    uuid.New(),
		Name:      "Filé Mignon ao Molho",
		UnitPrice: decimal.RequireFromString("89.90"),
		Quantity:  2,
		Note:      &note,
	})
	state.IsOpen = true

	require.NoError(t, store.Save(ctx, token, state))
	assert.Equal(t, time.Hour, snapshots.ttls["brasa:cart:"+token])

	loaded, err := store.Load(ctx, token)
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, "Filé Mignon ao Molho", loaded.Lines[0].Name)
	assert.Equal(t, "89.90", loaded.Lines[0].UnitPrice.StringFixed(2))
	require.NotNil(t, loaded.Lines[0].Note)
	assert.Equal(t, "bem passado", *loaded.Lines[0].Note)
	assert.True(t, loaded.IsOpen)
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	token := store.MintToken()

	require.NoError(t, store.Save(ctx, token, NewCart()))
	require.NoError(t, store.Delete(ctx, token))

	state, err := store.Load(ctx, token)
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
}

func TestValidateToken(t *testing.T) {
	assert.NoError(t, ValidateToken(uuid.NewString()))
	assert.Error(t, ValidateToken("not-a-token"))
	assert.Error(t, ValidateToken(""))
}
