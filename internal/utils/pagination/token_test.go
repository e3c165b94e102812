package pagination

import (
	"testing"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	at := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	cursor := domain.Cursor{At: at, ID: "3f1c7a2e-0000-4000-8000-000000000001"}

	token := EncodeCursor(domain.SortOccurredDesc, cursor)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=")

	decoded, err := DecodeCursor(domain.SortOccurredDesc, token)
	require.NoError(t, err)
	assert.True(t, at.Equal(decoded.At))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestEncodeCursor_NormalizesToUTC(t *testing.T) {
	warsaw := time.FixedZone("CEST", 2*60*60)
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, warsaw)

	decoded, err := DecodeCursor(domain.SortRecordedDesc, EncodeCursor(domain.SortRecordedDesc, domain.Cursor{At: at, ID: "x"}))
	require.NoError(t, err)
	assert.True(t, at.Equal(decoded.At))
	assert.Equal(t, time.UTC, decoded.At.Location())
}

func TestDecodeCursorErrors(t *testing.T) {
	_, err := DecodeCursor(domain.SortOccurredDesc, "this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	other := EncodeCursor(domain.SortRecordedDesc, domain.Cursor{At: time.Now(), ID: "e1"})
	_, err = DecodeCursor(domain.SortOccurredDesc, other)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordering")

	missingID := EncodeCursor(domain.SortOccurredDesc, domain.Cursor{At: time.Now()})
	_, err = DecodeCursor(domain.SortOccurredDesc, missingID)
	assert.Error(t, err)
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, DefaultLimit},
		{"negative uses default", -3, DefaultLimit},
		{"within range", 20, 20},
		{"max", MaxLimit, MaxLimit},
		{"above max is capped", MaxLimit + 1, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLimit(tt.limit))
		})
	}
}
