package mapping

import (
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/models"
)

// ToDomainChain converts a model Chain to a domain Chain
func ToDomainChain(m models.Chain) domain.Chain {
	return domain.Chain{
		ChainID:           m.ChainID,
		BusinessProfileID: m.BusinessProfileID,
		ChainNumber:       m.ChainNumber,
		ChainType:         m.ChainType,
		Title:             m.Title,
		State:             domain.ChainState(m.State),
		ObjectID:          m.ObjectID,
		EntityType:        m.EntityType,
		EntityID:          m.EntityID,
		AnchorEventID:     m.AnchorEventID,
		EventCount:        m.EventCount,
		LastActivityAt:    m.LastActivityAt.UTC(),
		CreatedAt:         m.CreatedAt.UTC(),
	}
}
