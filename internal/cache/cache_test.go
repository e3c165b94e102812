package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementsViewCache(t *testing.T) {
	var _ ViewCache = (*RedisViewCache)(nil)
	var _ ViewCache = (*MemoryViewCache)(nil)
	var _ ViewCache = NoopViewCache{}
}

func TestKey_StableAndGenerationScoped(t *testing.T) {
	params := map[string]any{"limit": 50, "types": []string{"invoice_issued"}}
	k1, err := Key("p1", 0, "ledger", params)
	require.NoError(t, err)
	k2, err := Key("p1", 0, "ledger", params)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := Key("p1", 1, "ledger", params)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	k4, err := Key("p1", 0, "inbox", params)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4)
}

func TestMemoryViewCache_GetSetExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryViewCache(time.Minute)
	c.now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	val, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)

	now = now.Add(2 * time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryViewCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryViewCache(0)

	gen, err := c.Generation(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, c.Invalidate(ctx, "p1"))
	require.NoError(t, c.Invalidate(ctx, "p1"))
	gen, err = c.Generation(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)

	other, err := c.Generation(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), other)
}

// TestRedisViewCache needs a running server; set LEDGER_TEST_REDIS_ADDR to enable it.
func TestRedisViewCache(t *testing.T) {
	addr := os.Getenv("LEDGER_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LEDGER_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	c := NewRedisViewCache(addr, "", 0, time.Minute)
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	profile := "test-" + time.Now().Format("150405.000000000")
	before, err := c.Generation(ctx, profile)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, profile))
	after, err := c.Generation(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)

	key, err := Key(profile, after, "ledger", nil)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, key, []byte(`{"events":[]}`)))
	val, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"events":[]}`, string(val))
}
