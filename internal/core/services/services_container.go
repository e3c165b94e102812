package services

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/cache"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/enforcement"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/idgen"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/platform/config"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/publisher"
)

// Infrastructure carries the shared collaborators handed to every service.
// Nil fields fall back to no-op implementations.
type Infrastructure struct {
	Publisher publisher.Publisher
	ViewCache cache.ViewCache
	Engine    *enforcement.Engine
	// Tracer defaults to the global otel provider's tracer.
	Tracer    trace.Tracer
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, infra Infrastructure) *portssvc.ServiceContainer {
	if infra.Publisher == nil {
		infra.Publisher = &publisher.NoopPublisher{}
	}
	if infra.ViewCache == nil {
		infra.ViewCache = cache.NoopViewCache{}
	}
	if infra.Engine == nil {
		infra.Engine = enforcement.NewEngine(nil)
	}

	container := &portssvc.ServiceContainer{}

	container.Enforcement = NewEnforcementService(repos.EventRepo, repos.DecisionRepo, infra.Engine)
	container.Decision = NewDecisionService(repos.DecisionRepo, infra.Engine)

	container.Event = NewEventService(
		repos.EventRepo,
		repos.DecisionRepo,
		WithEventPublisher(infra.Publisher),
		WithEventViewCache(infra.ViewCache),
		WithEventEngine(infra.Engine),
	)

	container.View = NewViewService(repos.EventRepo, infra.ViewCache)

	container.Reconciler = NewReconcilerService(
		repos.EventRepo,
		repos.ChainRepo,
		WithReconcilerPublisher(infra.Publisher),
		WithReconcilerViewCache(infra.ViewCache),
		WithReconcilerEngine(infra.Engine),
		WithChainNumbers(idgen.NewGenerator(cfg.ChainNumberPrefix)),
		WithBatchLimit(cfg.ReconcileBatchLimit),
		WithTracer(infra.Tracer),
	)

	return container
}
