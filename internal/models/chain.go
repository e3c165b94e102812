package models

import "time"

// Chain is one row of the chains table.
type Chain struct {
	ChainID           string    `db:"chain_id"`
	BusinessProfileID string    `db:"business_profile_id"`
	ChainNumber       string    `db:"chain_number"`
	ChainType         string    `db:"chain_type"`
	Title             string    `db:"title"`
	State             string    `db:"state"`
	ObjectID          *string   `db:"object_id"`
	EntityType        string    `db:"entity_type"`
	EntityID          string    `db:"entity_id"`
	AnchorEventID     string    `db:"anchor_event_id"`
	EventCount        int       `db:"event_count"`
	LastActivityAt    time.Time `db:"last_activity_at"`
	CreatedAt         time.Time `db:"created_at"`
}
