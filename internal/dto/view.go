package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// ViewParams defines query parameters shared by the event views.
// Times are RFC 3339; event types may repeat or be comma separated.
type ViewParams struct {
	BusinessProfileID string   `form:"businessProfileID"`
	From              string   `form:"from"`
	To                string   `form:"to"`
	EventTypes        []string `form:"eventType"`
	DocumentTypes     []string `form:"documentType"`
	Counterparty      string   `form:"counterparty"`
	ActorID           string   `form:"actorID"`
	Limit             int      `form:"limit"`
	NextToken         string   `form:"nextToken"`
}

// ToViewFilter converts the params into a domain filter.
func (p ViewParams) ToViewFilter() (domain.ViewFilter, error) {
	filter := domain.ViewFilter{
		BusinessProfileID: strings.TrimSpace(p.BusinessProfileID),
		Counterparty:      strings.TrimSpace(p.Counterparty),
		ActorID:           strings.TrimSpace(p.ActorID),
		Limit:             p.Limit,
		DocumentTypes:     splitList(p.DocumentTypes),
		NextToken:         p.Token(),
	}
	var err error
	if filter.From, err = parseTime("from", p.From); err != nil {
		return domain.ViewFilter{}, err
	}
	if filter.To, err = parseTime("to", p.To); err != nil {
		return domain.ViewFilter{}, err
	}
	for _, t := range splitList(p.EventTypes) {
		filter.EventTypes = append(filter.EventTypes, domain.EventType(t))
	}
	return filter, nil
}

// Token returns the continuation token, nil when absent.
func (p ViewParams) Token() *string {
	if p.NextToken == "" {
		return nil
	}
	token := p.NextToken
	return &token
}

func parseTime(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC 3339 timestamp: %w", name, apperrors.ErrValidation)
	}
	return &t, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
