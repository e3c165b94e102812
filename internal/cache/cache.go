// Package cache is the read-through layer in front of the view projector.
//
// Entries are namespaced by a per-profile generation counter. Every write to a
// profile's events bumps the counter, so stale entries become unreachable at
// once and simply age out; a cached view is therefore always equal to a fresh
// recomputation against the store as of the last write.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ViewCache stores serialized view pages.
type ViewCache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key with the cache's TTL.
	Set(ctx context.Context, key string, value []byte) error
	// Generation returns the current generation of a business profile.
	Generation(ctx context.Context, businessProfileID string) (int64, error)
	// Invalidate bumps the generation of a business profile.
	Invalidate(ctx context.Context, businessProfileID string) error
	Close() error
}

// Key builds the cache key of one view call.
func Key(businessProfileID string, generation int64, view string, params any) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("ledger:view:%s:g%d:%s:%s", businessProfileID, generation, view, hex.EncodeToString(sum[:12])), nil
}

func generationKey(businessProfileID string) string {
	return "ledger:view:gen:" + businessProfileID
}
