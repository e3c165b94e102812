package services

import (
	"context"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// ViewSvc projects read-only perspectives over the event store. Every view is a
// deterministic function of the store's current contents.
type ViewSvc interface {
	// LedgerView returns posted events ordered by occurred_at desc, id desc.
	LedgerView(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error)

	// InboxView returns unposted events needing action ordered by recorded_at desc, id desc.
	InboxView(ctx context.Context, businessProfileID string, limit int, nextToken *string) (*domain.EventPage, error)

	// InvoiceView is LedgerView restricted to invoice documents.
	InvoiceView(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error)

	// ExpenseView is LedgerView restricted to expense documents.
	ExpenseView(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error)

	// AuditView returns every event regardless of posting, ordered by recorded_at desc, id desc.
	AuditView(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error)

	// OrphanView returns events without a chain ordered by recorded_at desc, id desc.
	OrphanView(ctx context.Context, businessProfileID string, limit int, nextToken *string) (*domain.EventPage, error)

	// ChainEvents returns a chain's events ordered by occurred_at asc.
	ChainEvents(ctx context.Context, chainID string) ([]domain.Event, error)
}
