package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

const (
	// DefaultLimit is the page size when the caller gives none.
	DefaultLimit = 50
	// MaxLimit caps the page size of every view.
	MaxLimit = 500
)

// NormalizeLimit applies DefaultLimit and MaxLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor creates an opaque token from the sort key and id of the last row
// of a page. The ordering is embedded so a token cannot be replayed against a
// view sorted differently.
func EncodeCursor(sort domain.EventSort, cursor domain.Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", sort, cursor.At.UTC().Format(timeFormat), cursor.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor for the same ordering.
func DecodeCursor(sort domain.EventSort, token string) (domain.Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return domain.Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return domain.Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	if domain.EventSort(parts[0]) != sort {
		return domain.Cursor{}, fmt.Errorf("pagination token belongs to ordering %q, not %q", parts[0], sort)
	}
	at, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return domain.Cursor{}, fmt.Errorf("invalid pagination token format (time parse): %w", err)
	}
	return domain.Cursor{At: at, ID: parts[2]}, nil
}
