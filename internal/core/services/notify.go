package services

import (
	"context"
	"log/slog"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/cache"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/publisher"
)

// writeNotifier runs the side effects that follow a successful write: the view
// cache of the profile is invalidated and a notification is published. Neither
// failure is returned to the caller; the write has already happened.
type writeNotifier struct {
	BaseService
	publisher publisher.Publisher
	viewCache cache.ViewCache
}

func newWriteNotifier(pub publisher.Publisher, vc cache.ViewCache) writeNotifier {
	if pub == nil {
		pub = &publisher.NoopPublisher{}
	}
	if vc == nil {
		vc = cache.NoopViewCache{}
	}
	return writeNotifier{publisher: pub, viewCache: vc}
}

func (n *writeNotifier) afterWrite(ctx context.Context, businessProfileID, topic string, payload any) {
	if err := n.viewCache.Invalidate(ctx, businessProfileID); err != nil {
		n.LogError(ctx, err, "Failed to invalidate view cache", slog.String("business_profile_id", businessProfileID))
	}
	if err := n.publisher.Publish(ctx, topic, payload); err != nil {
		n.LogError(ctx, err, "Failed to publish notification", slog.String("topic", topic))
	}
}
