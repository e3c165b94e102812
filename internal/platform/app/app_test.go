package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/cache"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/platform/config"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenViewCache_SharedStorageNeverFallsBackToProcessCache(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for name, addr := range map[string]string{
		"no redis configured": "",
		"redis unreachable":   "127.0.0.1:1",
	} {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Config{StorageDriver: config.StorageDriverPostgres, RedisAddr: addr, ViewCacheTTL: time.Minute}

			vc := openViewCache(ctx, cfg, quietLogger())

			assert.IsType(t, cache.NoopViewCache{}, vc)
		})
	}
}

func TestOpenViewCache_MemoryStorageUsesProcessCache(t *testing.T) {
	cfg := &config.Config{StorageDriver: config.StorageDriverMemory, ViewCacheTTL: time.Minute}

	vc := openViewCache(context.Background(), cfg, quietLogger())

	_, ok := vc.(*cache.MemoryViewCache)
	assert.True(t, ok)
}

func TestNew_MemoryDriverWiresTracingAndServices(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		StorageDriver:       config.StorageDriverMemory,
		ViewCacheTTL:        time.Minute,
		ReconcileBatchLimit: 10,
		ChainNumberPrefix:   "CH",
		TraceSampleRate:     1,
	}

	a, err := New(ctx, cfg, quietLogger())
	require.NoError(t, err)

	require.NotNil(t, a.Tracing)
	require.NotNil(t, a.Services.Reconciler)
	_, span := a.Tracing.Tracer().Start(ctx, "ledger.test")
	assert.True(t, span.SpanContext().IsSampled())
	span.End()
	assert.NoError(t, a.Close())
}
