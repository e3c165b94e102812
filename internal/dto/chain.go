package dto

import "github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"

// AttachEventRequest links an event to a chain chosen by the user.
type AttachEventRequest struct {
	ChainID          string  `json:"chainID" binding:"required"`
	CausationEventID *string `json:"causationEventID"`
}

// SearchChainsParams defines query parameters for the chain picker.
type SearchChainsParams struct {
	BusinessProfileID string `form:"businessProfileID" binding:"required"`
	Query             string `form:"q"`
	ChainType         string `form:"chainType"`
	Limit             int    `form:"limit,default=20"`
}

// ToChainSearchQuery converts the params into a domain query.
func (p SearchChainsParams) ToChainSearchQuery() domain.ChainSearchQuery {
	return domain.ChainSearchQuery{
		BusinessProfileID: p.BusinessProfileID,
		Text:              p.Query,
		ChainType:         p.ChainType,
		Limit:             p.Limit,
	}
}

// SearchChainsResponse lists ranked candidates.
type SearchChainsResponse struct {
	Candidates []domain.ChainCandidate `json:"candidates"`
}

// BulkReconcileRequest starts a bulk auto-attach run for one profile.
type BulkReconcileRequest struct {
	BusinessProfileID string `json:"businessProfileID" binding:"required"`
	Limit             int    `json:"limit"`
}

// ChainEventsResponse lists a chain's events in occurrence order.
type ChainEventsResponse struct {
	Chain  domain.Chain   `json:"chain"`
	Events []domain.Event `json:"events"`
}
