package pgsql

import (
	"fmt"
	"strings"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

const eventColumns = `id, business_profile_id, event_type, event_number, occurred_at, recorded_at,
	amount, currency, direction, posted, needs_action, status, decision_id, blocked_by, blocked_reason,
	source, classification, category, vat_rate, actor_id, actor_name, actor_role,
	entity_type, entity_id, document_type, document_id, document_number, counterparty, linked_documents,
	chain_id, parent_event_id, action_summary, changes, metadata, is_material, created_at, updated_at`

// argList numbers positional parameters as they are appended.
type argList []any

func (a *argList) add(v any) string {
	*a = append(*a, v)
	return fmt.Sprintf("$%d", len(*a))
}

// buildEventQuery renders an EventQuery as SQL. The ordering uses the "C" collation on id
// so ties break the same way Go compares strings.
func buildEventQuery(q domain.EventQuery) (string, []any) {
	var args argList
	var where []string

	if q.BusinessProfileID != "" {
		where = append(where, "business_profile_id = "+args.add(q.BusinessProfileID))
	}
	if q.Posted != nil {
		where = append(where, "posted = "+args.add(*q.Posted))
	}
	if q.NeedsAction != nil {
		where = append(where, "needs_action = "+args.add(*q.NeedsAction))
	}
	if q.Orphaned != nil {
		if *q.Orphaned {
			where = append(where, "chain_id IS NULL")
		} else {
			where = append(where, "chain_id IS NOT NULL")
		}
	}
	if q.ChainID != "" {
		where = append(where, "chain_id = "+args.add(q.ChainID))
	}
	if q.ActorID != "" {
		where = append(where, "actor_id = "+args.add(q.ActorID))
	}
	if len(q.EventTypes) > 0 {
		types := make([]string, len(q.EventTypes))
		for i, t := range q.EventTypes {
			types[i] = string(t)
		}
		where = append(where, "event_type = ANY("+args.add(types)+")")
	}
	if len(q.DocumentTypes) > 0 {
		where = append(where, "document_type = ANY("+args.add(q.DocumentTypes)+")")
	}
	if q.Counterparty != "" {
		where = append(where, "strpos(lower(counterparty), lower("+args.add(q.Counterparty)+")) > 0")
	}
	if q.OccurredFrom != nil {
		where = append(where, "occurred_at >= "+args.add(*q.OccurredFrom))
	}
	if q.OccurredTo != nil {
		where = append(where, "occurred_at <= "+args.add(*q.OccurredTo))
	}
	if q.RecordedFrom != nil {
		where = append(where, "recorded_at >= "+args.add(*q.RecordedFrom))
	}
	if q.RecordedTo != nil {
		where = append(where, "recorded_at <= "+args.add(*q.RecordedTo))
	}

	sortCol, dir, cmp := "occurred_at", "DESC", "<"
	switch q.Sort {
	case domain.SortRecordedDesc:
		sortCol = "recorded_at"
	case domain.SortOccurredAsc:
		dir, cmp = "ASC", ">"
	}
	if q.After != nil {
		where = append(where, fmt.Sprintf(`(%s, id COLLATE "C") %s (%s, %s)`,
			sortCol, cmp, args.add(q.After.At), args.add(q.After.ID)))
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(eventColumns)
	sb.WriteString("\nFROM events")
	if len(where) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(where, "\n  AND "))
	}
	fmt.Fprintf(&sb, "\nORDER BY %s %s, id COLLATE \"C\" %s", sortCol, dir, dir)
	if q.Limit > 0 {
		sb.WriteString("\nLIMIT " + args.add(q.Limit))
	}
	return sb.String(), args
}

// buildEventPatch renders the UPDATE for a patch. Only columns the patch sets appear
// in SET; metadata keys are merged with the jsonb || operator. guarded reports whether
// the statement only applies to unposted events.
func buildEventPatch(eventID string, patch domain.EventPatch, changes map[string]any, updatedAt time.Time) (query string, args []any, guarded bool) {
	var a argList
	id := a.add(eventID)
	var set []string
	col := func(name string, v any) { set = append(set, name+" = "+a.add(v)) }

	if patch.Classification != nil {
		col("classification", *patch.Classification)
	}
	if patch.Category != nil {
		col("category", *patch.Category)
	}
	if patch.VATRate != nil {
		col("vat_rate", *patch.VATRate)
	}
	if patch.Counterparty != nil {
		col("counterparty", *patch.Counterparty)
	}
	if patch.Amount != nil {
		col("amount", *patch.Amount)
	}
	if patch.Currency != nil {
		col("currency", *patch.Currency)
	}
	if patch.Direction != nil {
		col("direction", string(*patch.Direction))
	}
	if patch.OccurredAt != nil {
		col("occurred_at", *patch.OccurredAt)
	}
	if patch.EntityType != nil {
		col("entity_type", *patch.EntityType)
	}
	if patch.EntityID != nil {
		col("entity_id", *patch.EntityID)
	}
	if patch.DocumentType != nil {
		col("document_type", *patch.DocumentType)
	}
	if patch.DocumentID != nil {
		col("document_id", *patch.DocumentID)
	}
	if patch.DocumentNumber != nil {
		col("document_number", *patch.DocumentNumber)
	}
	if patch.ActionSummary != nil {
		col("action_summary", *patch.ActionSummary)
	}
	if patch.IsMaterial != nil {
		col("is_material", *patch.IsMaterial)
	}
	if patch.LinkedDocuments != nil {
		col("linked_documents", patch.LinkedDocuments)
	}
	if patch.NeedsAction != nil {
		col("needs_action", *patch.NeedsAction)
	}
	if patch.Metadata != nil {
		set = append(set, "metadata = metadata || "+a.add(patch.Metadata)+"::jsonb")
	}
	col("changes", changes)
	col("updated_at", updatedAt)

	query = "UPDATE events SET " + strings.Join(set, ", ") + " WHERE id = " + id
	if guarded = patch.TouchesFrozenFields(); guarded {
		query += " AND NOT posted"
	}
	return query, a, guarded
}
