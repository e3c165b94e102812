package pgsql

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

func TestBuildEventQuery_LedgerPage(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	after := domain.Cursor{At: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ID: "evt-9"}

	sql, args := buildEventQuery(domain.EventQuery{
		BusinessProfileID: "p1",
		Posted:            domain.BoolPtr(true),
		DocumentTypes:     []string{"invoice"},
		OccurredFrom:      &from,
		Sort:              domain.SortOccurredDesc,
		After:             &after,
		Limit:             51,
	})

	assert.Contains(t, sql, "business_profile_id = $1")
	assert.Contains(t, sql, "posted = $2")
	assert.Contains(t, sql, "document_type = ANY($3)")
	assert.Contains(t, sql, "occurred_at >= $4")
	assert.Contains(t, sql, `(occurred_at, id COLLATE "C") < ($5, $6)`)
	assert.Contains(t, sql, `ORDER BY occurred_at DESC, id COLLATE "C" DESC`)
	assert.True(t, strings.HasSuffix(sql, "LIMIT $7"))
	require.Len(t, args, 7)
	assert.Equal(t, "p1", args[0])
	assert.Equal(t, true, args[1])
	assert.Equal(t, []string{"invoice"}, args[2])
	assert.Equal(t, "evt-9", args[5])
	assert.Equal(t, 51, args[6])
}

func TestBuildEventQuery_Orderings(t *testing.T) {
	sql, args := buildEventQuery(domain.EventQuery{
		BusinessProfileID: "p1",
		Orphaned:          domain.BoolPtr(true),
		Sort:              domain.SortOccurredAsc,
		After:             &domain.Cursor{At: time.Now(), ID: "x"},
	})
	assert.Contains(t, sql, "chain_id IS NULL")
	assert.Contains(t, sql, `(occurred_at, id COLLATE "C") > ($2, $3)`)
	assert.Contains(t, sql, "ORDER BY occurred_at ASC")
	assert.NotContains(t, sql, "LIMIT")
	assert.Len(t, args, 3)

	sql, _ = buildEventQuery(domain.EventQuery{Sort: domain.SortRecordedDesc, NeedsAction: domain.BoolPtr(true)})
	assert.Contains(t, sql, "ORDER BY recorded_at DESC")
	assert.Contains(t, sql, "needs_action = $1")
}

func TestBuildEventQuery_NoFilters(t *testing.T) {
	sql, args := buildEventQuery(domain.EventQuery{})
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestBuildEventPatch_MetadataOnlyLeavesFinancialColumns(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	changes := map[string]any{"metadata": map[string]any{"note": "x"}}

	sql, args, guarded := buildEventPatch("evt-1", domain.EventPatch{
		NeedsAction: domain.BoolPtr(true),
		Metadata:    map[string]any{"note": "x"},
	}, changes, at)

	assert.False(t, guarded)
	assert.Equal(t, "UPDATE events SET needs_action = $2, metadata = metadata || $3::jsonb, changes = $4, updated_at = $5 WHERE id = $1", sql)
	for _, col := range []string{"amount", "currency", "posted", "status", "blocked_by", "classification"} {
		assert.NotContains(t, sql, col+" =")
	}
	require.Len(t, args, 5)
	assert.Equal(t, "evt-1", args[0])
	assert.Equal(t, at, args[4])
}

func TestBuildEventPatch_FrozenFieldsRequireUnposted(t *testing.T) {
	amount := decimal.NewFromInt(200)
	category := "fuel"

	sql, args, guarded := buildEventPatch("evt-1", domain.EventPatch{
		Category: &category,
		Amount:   &amount,
	}, nil, time.Time{})

	assert.True(t, guarded)
	assert.Contains(t, sql, "category = $2, amount = $3")
	assert.True(t, strings.HasSuffix(sql, "WHERE id = $1 AND NOT posted"))
	require.Len(t, args, 5)
	assert.Equal(t, amount, args[2])
}
