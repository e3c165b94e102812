package cache

import "context"

// NoopViewCache never stores anything; every view is recomputed.
type NoopViewCache struct{}

func (NoopViewCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NoopViewCache) Set(context.Context, string, []byte) error { return nil }
func (NoopViewCache) Generation(context.Context, string) (int64, error) { return 0, nil }
func (NoopViewCache) Invalidate(context.Context, string) error { return nil }
func (NoopViewCache) Close() error { return nil }
