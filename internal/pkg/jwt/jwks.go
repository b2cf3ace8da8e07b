package jwt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-resty/resty/v2"
)

var ErrUnknownKey = errors.New("signing key not found in key set")

// minRefreshInterval bounds how often an unknown kid can trigger a refetch.
const minRefreshInterval = 10 * time.Second

// JWKSClient fetches the identity provider's key set and caches keys by kid.
type JWKSClient struct {
	http  *resty.Client
	url   string
	ttl   time.Duration
	cache *ristretto.Cache[string, any]

	mu          sync.Mutex
	lastRefresh time.Time
}

func NewJWKSClient(url string, ttl, timeout time.Duration) (*JWKSClient, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create jwks cache: %w", err)
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond)

	return &JWKSClient{
		http:  client,
		url:   url,
		ttl:   ttl,
		cache: cache,
	}, nil
}

// Key returns the public key for kid. A miss refetches the key set at most once.
func (c *JWKSClient) Key(ctx context.Context, kid string) (any, error) {
	if kid == "" {
		return nil, ErrUnknownKey
	}
	if key, ok := c.cache.Get(kid); ok {
		return key, nil
	}

	keys, err := c.refresh(ctx, kid)
	if err != nil {
		return nil, err
	}
	if key, ok := keys[kid]; ok {
		return key, nil
	}
	return nil, ErrUnknownKey
}

func (c *JWKSClient) refresh(ctx context.Context, kid string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have loaded the key while we waited.
	if key, ok := c.cache.Get(kid); ok {
		return map[string]any{kid: key}, nil
	}
	if !c.lastRefresh.IsZero() && time.Since(c.lastRefresh) < minRefreshInterval {
		return nil, ErrUnknownKey
	}

	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jwks: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("jwks endpoint returned %d", resp.StatusCode())
	}

	var set jose.JSONWebKeySet
	if err := json.Unmarshal(resp.Body(), &set); err != nil {
		return nil, fmt.Errorf("failed to decode jwks: %w", err)
	}

	keys := make(map[string]any, len(set.Keys))
	for _, k := range set.Keys {
		if k.KeyID == "" || !k.IsPublic() || !k.Valid() {
			continue
		}
		keys[k.KeyID] = k.Key
		c.cache.SetWithTTL(k.KeyID, k.Key, 1, c.ttl)
	}
	c.cache.Wait()
	c.lastRefresh = time.Now()

	slog.Debug("JWKS refreshed", slog.Int("keys", len(keys)))
	return keys, nil
}

func (c *JWKSClient) Close() {
	c.cache.Close()
}
