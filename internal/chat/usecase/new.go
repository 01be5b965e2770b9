package usecase

import (
	"time"

	"multilingual-chatbot/internal/chat/repository"
	"multilingual-chatbot/internal/orchestrator"
	"multilingual-chatbot/pkg/log"
)

// Metrics receives chat outcomes. *metrics.Metrics implements it.
type Metrics interface {
	ObserveTurn(mode, outcome string, d time.Duration)
	IncReset()
	IncSessionCreated()
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo    repository.Repository
	pool    *orchestrator.Pool
	metrics Metrics
	locks   *sessionLocks
	l       log.Logger
	now     func() time.Time
}

// New creates a new chat UseCase implementation. metrics may be nil.
func New(repo repository.Repository, pool *orchestrator.Pool, metrics Metrics, l log.Logger) *implUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &implUseCase{
		repo:    repo,
		pool:    pool,
		metrics: metrics,
		locks:   newSessionLocks(),
		l:       l,
		now:     time.Now,
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveTurn(string, string, time.Duration) {}
func (nopMetrics) IncReset()                                 {}
func (nopMetrics) IncSessionCreated()                        {}
