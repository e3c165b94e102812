package domain

import "time"

// ChainState is the lifecycle of a causal chain.
type ChainState string

const (
	ChainOpen   ChainState = "open"
	ChainClosed ChainState = "closed"
)

// Chain groups events tied to the same underlying business object.
type Chain struct {
	ChainID           string     `json:"chainID"`
	BusinessProfileID string     `json:"businessProfileID"`
	ChainNumber       string     `json:"chainNumber"`
	ChainType         string     `json:"chainType"`
	Title             string     `json:"title"`
	State             ChainState `json:"state"`
	// ObjectID anchors the chain on the business object referenced by metadata.object_id.
	ObjectID *string `json:"objectID,omitempty"`
	// EntityType/EntityID is the entity the chain tracks.
	EntityType     string    `json:"entityType"`
	EntityID       string    `json:"entityID"`
	AnchorEventID  string    `json:"anchorEventID"`
	EventCount     int       `json:"eventCount"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AttachMethod records how an event found its chain.
type AttachMethod string

const (
	AttachObjectRef       AttachMethod = "object_ref"
	AttachEntityRef       AttachMethod = "entity_ref"
	AttachMetadataInvoice AttachMethod = "metadata_invoice"
	AttachMetadataCash    AttachMethod = "metadata_cash"
	AttachNewChain        AttachMethod = "new_chain"
	AttachManual          AttachMethod = "manual"
	AttachAlreadyAttached AttachMethod = "already_attached"
)

// Confidence returns the fixed confidence for each method.
func (m AttachMethod) Confidence() float64 {
	switch m {
	case AttachObjectRef, AttachManual, AttachAlreadyAttached:
		return 1.0
	case AttachEntityRef:
		return 0.9
	case AttachMetadataInvoice, AttachMetadataCash:
		return 0.8
	case AttachNewChain:
		return 0.5
	}
	return 0
}

// LowConfidenceThreshold marks results that consuming UIs should flag for review.
const LowConfidenceThreshold = 0.6

// AttachResult is the outcome of attaching one event to a chain.
type AttachResult struct {
	EventID         string       `json:"eventID"`
	Success         bool         `json:"success"`
	ChainID         *string      `json:"chainID,omitempty"`
	Method          AttachMethod `json:"method,omitempty"`
	Confidence      float64      `json:"confidence"`
	CreatedNewChain bool         `json:"createdNewChain"`
	Error           string       `json:"error,omitempty"`
}

// NeedsReview reports whether the match is weak enough to surface a warning.
func (r AttachResult) NeedsReview() bool {
	return r.Success && r.Confidence < LowConfidenceThreshold
}

// BulkResult summarises a batch reconciliation.
type BulkResult struct {
	Processed int            `json:"processed"`
	Attached  int            `json:"attached"`
	Failed    int            `json:"failed"`
	Cancelled bool           `json:"cancelled"`
	Results   []AttachResult `json:"results"`
}

// Add records one item's result and keeps the counters in step.
func (b *BulkResult) Add(r AttachResult) {
	b.Processed++
	if r.Success {
		b.Attached++
	} else {
		b.Failed++
	}
	b.Results = append(b.Results, r)
}

// ChainCandidate is a chain offered for manual attachment.
type ChainCandidate struct {
	Chain          Chain   `json:"chain"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// ChainSearchQuery drives search_chains_for_attach.
type ChainSearchQuery struct {
	BusinessProfileID string
	Text              string
	ChainType         string
	Limit             int
}
