package articlename

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/infra/notifier"
	"stock-admin/internal/observability/logging"
	"stock-admin/internal/observability/metrics"
	"stock-admin/internal/observability/tracing"
	"stock-admin/internal/repository"
)

// Messages reported by a seed run.
const (
	seedSuccessFormat  = "%d articles d'exemple créés avec succès"
	SeedFailureMessage = "Erreur lors de la création des articles d'exemple"
)

// SampleSource returns a fresh copy of the sample article names.
type SampleSource func() ([]*entity.ArticleName, error)

// SeedResult is the outcome reported to the user.
type SeedResult struct {
	Success bool
	Message string
	Created int
}

// Seeder bulk-inserts the sample article names in one transaction.
//
// A running flag makes concurrent calls no-ops: while a seed is outstanding
// any further call returns ErrSeedInProgress without touching the store.
// The flag is advisory; an in-flight seed is never canceled by it.
type Seeder struct {
	Repo     repository.ArticleNameRepository
	Samples  SampleSource
	Notifier notifier.Notifier
	Logger   *slog.Logger

	running atomic.Bool
}

// Running reports whether a seed is currently outstanding.
func (s *Seeder) Running() bool {
	return s.running.Load()
}

// Seed inserts the sample set on behalf of actor.
//
// Store failures produce a result with Success=false and the generic failure
// message alongside the wrapped error.
func (s *Seeder) Seed(ctx context.Context, actor entity.Actor) (SeedResult, error) {
	if !actor.IsAuthenticated() {
		return SeedResult{}, ErrUnauthenticated
	}
	if !s.running.CompareAndSwap(false, true) {
		metrics.RecordSeedRun(metrics.SeedResultInProgress, 0)
		return SeedResult{}, ErrSeedInProgress
	}
	defer s.running.Store(false)

	ctx, span := tracing.StartSpan(ctx, "articlename.Seed")
	defer span.End()

	created, err := s.insertSamples(ctx, actor)
	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordSeedRun(metrics.SeedResultFailure, 0)
		s.logger(ctx).ErrorContext(ctx, "sample seed failed",
			slog.String("actor_id", actor.ID),
			slog.Any("error", err))
		return SeedResult{Success: false, Message: SeedFailureMessage}, err
	}

	metrics.RecordSeedRun(metrics.SeedResultSuccess, created)
	s.logger(ctx).InfoContext(ctx, "sample article names seeded",
		slog.String("actor_id", actor.ID),
		slog.Int("count", created))

	if s.Notifier != nil {
		_ = s.Notifier.Notify(ctx, notifier.SampleDataSeeded(actor, created, time.Now()))
	}

	return SeedResult{
		Success: true,
		Message: fmt.Sprintf(seedSuccessFormat, created),
		Created: created,
	}, nil
}

func (s *Seeder) insertSamples(ctx context.Context, actor entity.Actor) (int, error) {
	samples, err := s.Samples()
	if err != nil {
		return 0, fmt.Errorf("load samples: %w", err)
	}
	for _, a := range samples {
		a.IsActive = true
		a.CreatedBy = actor.ID
		a.CreatedByName = actor.DisplayName()
	}

	start := time.Now()
	err = s.Repo.CreateBatch(ctx, samples)
	metrics.RecordDBQuery("create_article_names_batch", time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("insert samples: %w", err)
	}
	return len(samples), nil
}

// logger はリクエストスコープのロガーを優先する
func (s *Seeder) logger(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.Logger)
}
