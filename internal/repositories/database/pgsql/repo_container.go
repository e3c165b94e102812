package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	eventRepo := newPgxEventRepository(dbPool)
	decisionRepo := newPgxDecisionRepository(dbPool)
	chainRepo := newPgxChainRepository(dbPool, eventRepo)

	return portsrepo.RepositoryProvider{
		EventRepo:    eventRepo,
		DecisionRepo: decisionRepo,
		ChainRepo:    chainRepo,
	}
}
