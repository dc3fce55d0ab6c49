package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radin-System/go-sarvcrm-api/internal/cache"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCache(time.Minute, 0)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "fields.Contacts", []byte(`{"first_name":{}}`)))

		value, ok := c.Get(ctx, "fields.Contacts")
		require.True(t, ok)
		assert.Equal(t, []byte(`{"first_name":{}}`), value)
	})

	t.Run("miss on absent key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCache(time.Minute, 0)

		value, ok := c.Get(context.Background(), "fields.Leads")
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("entries expire", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCache(20*time.Millisecond, 0)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "fields.Contacts", []byte(`{}`)))

		time.Sleep(50 * time.Millisecond)

		_, ok := c.Get(ctx, "fields.Contacts")
		assert.False(t, ok)
	})

	t.Run("delete removes entry", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCache(time.Minute, 0)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "fields.Contacts", []byte(`{}`)))
		require.NoError(t, c.Delete(ctx, "fields.Contacts"))

		_, ok := c.Get(ctx, "fields.Contacts")
		assert.False(t, ok)
	})

	t.Run("delete absent key is not an error", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCache(time.Minute, 0)

		assert.NoError(t, c.Delete(context.Background(), "fields.Nothing"))
	})

	t.Run("evicts oldest entry at capacity", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCache(time.Minute, 2)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "fields.Accounts", []byte(`1`)))
		time.Sleep(5 * time.Millisecond)
		require.NoError(t, c.Set(ctx, "fields.Contacts", []byte(`2`)))
		time.Sleep(5 * time.Millisecond)
		require.NoError(t, c.Set(ctx, "fields.Leads", []byte(`3`)))

		_, ok := c.Get(ctx, "fields.Accounts")
		assert.False(t, ok, "oldest entry should be evicted")

		_, ok = c.Get(ctx, "fields.Contacts")
		assert.True(t, ok)

		_, ok = c.Get(ctx, "fields.Leads")
		assert.True(t, ok)
	})

	t.Run("updating existing key does not evict", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCache(time.Minute, 2)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "fields.Accounts", []byte(`1`)))
		require.NoError(t, c.Set(ctx, "fields.Contacts", []byte(`2`)))
		require.NoError(t, c.Set(ctx, "fields.Accounts", []byte(`updated`)))

		value, ok := c.Get(ctx, "fields.Accounts")
		require.True(t, ok)
		assert.Equal(t, []byte(`updated`), value)

		_, ok = c.Get(ctx, "fields.Contacts")
		assert.True(t, ok)
	})

	t.Run("close clears entries", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCache(time.Minute, 0)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "fields.Contacts", []byte(`{}`)))
		require.NoError(t, c.Close())

		_, ok := c.Get(ctx, "fields.Contacts")
		assert.False(t, ok)
	})
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	c := &cache.NoOpCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "fields.Contacts", []byte(`{}`)))

	value, ok := c.Get(ctx, "fields.Contacts")
	assert.False(t, ok)
	assert.Nil(t, value)

	assert.NoError(t, c.Delete(ctx, "fields.Contacts"))
	assert.NoError(t, c.Close())
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *sarvcrm.CacheConfig
		want    interface{}
		wantErr error
	}{
		{
			name:   "nil config",
			config: nil,
			want:   &cache.NoOpCache{},
		},
		{
			name:   "empty type",
			config: &sarvcrm.CacheConfig{},
			want:   &cache.NoOpCache{},
		},
		{
			name:   "none type",
			config: &sarvcrm.CacheConfig{Type: sarvcrm.CacheTypeNone},
			want:   &cache.NoOpCache{},
		},
		{
			name:   "memory type",
			config: &sarvcrm.CacheConfig{Type: sarvcrm.CacheTypeMemory, TTL: time.Minute},
			want:   &cache.MemoryCache{},
		},
		{
			name:    "nats type without URL",
			config:  &sarvcrm.CacheConfig{Type: sarvcrm.CacheTypeNATS},
			wantErr: cache.ErrNATSURLRequired,
		},
		{
			name:    "unknown type",
			config:  &sarvcrm.CacheConfig{Type: sarvcrm.CacheType("redis")},
			wantErr: cache.ErrUnknownCacheType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := cache.New(tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}
}
