package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

const (
	defaultBucket    = "sarv-fields"
	natsSetupTimeout = 5 * time.Second
)

// NATSCache stores entries in a JetStream key-value bucket so several
// processes can share one field catalog.
type NATSCache struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

// NewNATSCache connects to the configured NATS server and binds the bucket,
// creating it with the configured TTL when it does not exist yet.
func NewNATSCache(cfg *sarvcrm.CacheConfig) (*NATSCache, error) {
	if cfg == nil || cfg.NATSURL == "" {
		return nil, ErrNATSURLRequired
	}

	bucket := cfg.NATSBucket
	if bucket == "" {
		bucket = defaultBucket
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}

	conn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), natsSetupTimeout)
	defer cancel()

	kv, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket: bucket,
		TTL:    ttl,
	})
	if errors.Is(err, jetstream.ErrBucketExists) {
		kv, err = js.KeyValue(ctx, bucket)
	}

	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("binding KV bucket %q: %w", bucket, err)
	}

	return &NATSCache{conn: conn, kv: kv}, nil
}

func (c *NATSCache) Get(ctx context.Context, key string) ([]byte, bool) {
	entry, err := c.kv.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	return entry.Value(), true
}

func (c *NATSCache) Set(ctx context.Context, key string, value []byte) error {
	if _, err := c.kv.Put(ctx, key, value); err != nil {
		return fmt.Errorf("storing key %q: %w", key, err)
	}

	return nil
}

func (c *NATSCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(ctx, key)
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}

	return nil
}

func (c *NATSCache) Close() error {
	c.conn.Close()

	return nil
}
