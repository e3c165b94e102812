package domain

import (
	"sort"
	"strings"
	"time"
)

// EventSort is the ordering of a view.
type EventSort string

const (
	// SortOccurredDesc orders by economic date, newest first, then id descending.
	SortOccurredDesc EventSort = "occurred_desc"
	// SortRecordedDesc orders by entry time, newest first, then id descending.
	SortRecordedDesc EventSort = "recorded_desc"
	// SortOccurredAsc orders a chain's history oldest first, then id ascending.
	SortOccurredAsc EventSort = "occurred_asc"
)

// Cursor marks the last row of the previous page.
type Cursor struct {
	At time.Time
	ID string
}

// EventQuery is the filter every view reduces to. Zero values mean "no filter".
type EventQuery struct {
	BusinessProfileID string
	Posted            *bool
	NeedsAction       *bool
	Orphaned          *bool
	ChainID           string
	ActorID           string
	EventTypes        []EventType
	DocumentTypes     []string
	Counterparty      string
	OccurredFrom      *time.Time
	OccurredTo        *time.Time
	RecordedFrom      *time.Time
	RecordedTo        *time.Time
	Sort              EventSort
	After             *Cursor
	Limit             int
}

// Matches reports whether e satisfies every filter of q (ignoring the cursor and limit).
func (q EventQuery) Matches(e *Event) bool {
	if q.BusinessProfileID != "" && e.BusinessProfileID != q.BusinessProfileID {
		return false
	}
	if q.Posted != nil && e.Posted != *q.Posted {
		return false
	}
	if q.NeedsAction != nil && e.NeedsAction != *q.NeedsAction {
		return false
	}
	if q.Orphaned != nil && e.IsOrphaned() != *q.Orphaned {
		return false
	}
	if q.ChainID != "" && (e.ChainID == nil || *e.ChainID != q.ChainID) {
		return false
	}
	if q.ActorID != "" && e.ActorID != q.ActorID {
		return false
	}
	if len(q.EventTypes) > 0 && !containsEventType(q.EventTypes, e.EventType) {
		return false
	}
	if len(q.DocumentTypes) > 0 && !containsString(q.DocumentTypes, e.DocumentType) {
		return false
	}
	if q.Counterparty != "" {
		if e.Counterparty == nil || !strings.Contains(strings.ToLower(*e.Counterparty), strings.ToLower(q.Counterparty)) {
			return false
		}
	}
	if !inRange(e.OccurredAt, q.OccurredFrom, q.OccurredTo) {
		return false
	}
	if !inRange(e.RecordedAt, q.RecordedFrom, q.RecordedTo) {
		return false
	}
	return true
}

// SortKey returns the time the query orders by.
func (q EventQuery) SortKey(e *Event) time.Time {
	if q.Sort == SortRecordedDesc {
		return e.RecordedAt
	}
	return e.OccurredAt
}

// Less reports whether a sorts before b under q's ordering.
func (q EventQuery) Less(a, b *Event) bool {
	ka, kb := q.SortKey(a), q.SortKey(b)
	if q.Sort == SortOccurredAsc {
		if !ka.Equal(kb) {
			return ka.Before(kb)
		}
		return a.ID < b.ID
	}
	if !ka.Equal(kb) {
		return ka.After(kb)
	}
	return a.ID > b.ID
}

// AfterCursor reports whether e comes strictly after the cursor in q's ordering.
func (q EventQuery) AfterCursor(e *Event) bool {
	if q.After == nil {
		return true
	}
	marker := &Event{ID: q.After.ID, OccurredAt: q.After.At, RecordedAt: q.After.At}
	return q.Less(marker, e)
}

// CursorFor builds the cursor pointing at e.
func (q EventQuery) CursorFor(e *Event) Cursor {
	return Cursor{At: q.SortKey(e), ID: e.ID}
}

// Apply filters, orders and truncates events according to q. It is the reference
// semantics every storage implementation must reproduce.
func (q EventQuery) Apply(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for i := range events {
		if q.Matches(&events[i]) && q.AfterCursor(&events[i]) {
			out = append(out, events[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return q.Less(&out[i], &out[j]) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// EventPage is one page of a view.
type EventPage struct {
	Events    []Event `json:"events"`
	NextToken *string `json:"nextToken,omitempty"`
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func containsEventType(set []EventType, t EventType) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// ViewFilter is the caller-facing filter of the ledger, invoice, expense and audit views.
type ViewFilter struct {
	BusinessProfileID string
	From              *time.Time
	To                *time.Time
	EventTypes        []EventType
	DocumentTypes     []string
	Counterparty      string
	ActorID           string
	Limit             int
	NextToken         *string
}
