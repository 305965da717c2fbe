// Package content implements the reference-data administration screen:
// the super-admin gate, the create-article-name form and the sample seed action.
package content

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/infra/notifier"
	"stock-admin/internal/observability/logging"
	"stock-admin/internal/observability/metrics"
	"stock-admin/internal/observability/tracing"
	"stock-admin/internal/repository"
	"stock-admin/internal/usecase/articlename"
)

// Seeder inserts the sample article names.
type Seeder interface {
	Seed(ctx context.Context, actor entity.Actor) (articlename.SeedResult, error)
	Running() bool
}

// Service wires the screen to the article name store and the seeder.
type Service struct {
	ArticleNames repository.ArticleNameRepository
	Seeder       Seeder
	Notifier     notifier.Notifier // optional
	BackRoute    string
	Logger       *slog.Logger
}

// SubmitResult is the state of the form after a submission.
type SubmitResult struct {
	Notification Notification
	Form         Form
	ModalOpen    bool
	Article      *entity.ArticleName // set on success only
}

// SeedOutcome is the feedback of a seed request.
type SeedOutcome struct {
	Notification Notification
	Created      int
}

// Screen returns the initial screen state, or ErrUnauthorized for anyone
// but a super administrator.
func (s *Service) Screen(actor entity.Actor) (*Screen, error) {
	if !actor.IsSuperAdmin() {
		return nil, ErrUnauthorized
	}

	back := s.BackRoute
	if back == "" {
		back = defaultBackRoute
	}
	seeding := false
	if s.Seeder != nil {
		seeding = s.Seeder.Running()
	}

	return &Screen{
		Title:       screenTitle,
		Description: screenDescription,
		BackRoute:   back,
		Units:       entity.Units(),
		Form:        DefaultForm(),
		Seeding:     seeding,
		Sections:    sections(),
	}, nil
}

// Submit validates form and persists a new article name.
//
// On success the form is reset and the modal closed. On any failure the form
// comes back exactly as submitted with the modal still open. The returned
// error is nil, ErrUnauthorized, a *entity.ValidationError or a *PersistError.
func (s *Service) Submit(ctx context.Context, actor entity.Actor, form Form) (SubmitResult, error) {
	failed := SubmitResult{Form: form, ModalOpen: true}

	if !actor.IsSuperAdmin() {
		failed.Notification = UnauthorizedNotification
		return failed, ErrUnauthorized
	}

	ctx, span := tracing.StartSpan(ctx, "content.Submit",
		attribute.String("actor.id", actor.ID))
	defer span.End()

	a, err := form.toArticleName(actor)
	if err != nil {
		metrics.RecordArticleNameCreateFailure(metrics.FailureReasonValidation)
		failed.Notification = NameRequiredNotification
		var ve *entity.ValidationError
		if errors.As(err, &ve) && ve.Field == "default_unit" {
			failed.Notification = InvalidUnitNotification
		}
		return failed, err
	}

	if err := s.ArticleNames.Create(ctx, a); err != nil {
		perr := &PersistError{Op: "create article name", Err: err}
		tracing.RecordError(span, perr)
		metrics.RecordArticleNameCreateFailure(metrics.FailureReasonStore)
		s.logger(ctx).ErrorContext(ctx, "create article name failed",
			slog.String("actor_id", actor.ID),
			slog.String("name", a.Name),
			slog.Any("error", err))
		failed.Notification = CreateFailedNotification
		return failed, perr
	}

	metrics.RecordArticleNameCreated()
	span.SetAttributes(attribute.Int64("article_name.id", a.ID))
	s.logger(ctx).InfoContext(ctx, "article name created",
		slog.Int64("id", a.ID),
		slog.String("name", a.Name),
		slog.String("actor_id", actor.ID))

	if s.Notifier != nil {
		_ = s.Notifier.Notify(ctx, notifier.ArticleNameCreated(a))
	}

	return SubmitResult{
		Notification: CreatedNotification,
		Form:         DefaultForm(),
		ModalOpen:    false,
		Article:      a,
	}, nil
}

// Seed runs the sample-data seeder for actor.
// The returned error is nil, ErrUnauthorized, articlename.ErrSeedInProgress
// or a *PersistError.
func (s *Service) Seed(ctx context.Context, actor entity.Actor) (SeedOutcome, error) {
	if !actor.IsSuperAdmin() {
		return SeedOutcome{Notification: UnauthorizedNotification}, ErrUnauthorized
	}

	res, err := s.Seeder.Seed(ctx, actor)
	switch {
	case err == nil && res.Success:
		return SeedOutcome{
			Notification: Notification{Title: "Succès", Description: res.Message, Variant: VariantDefault},
			Created:      res.Created,
		}, nil
	case errors.Is(err, articlename.ErrSeedInProgress):
		return SeedOutcome{Notification: SeedInProgressNotification}, err
	case errors.Is(err, articlename.ErrUnauthenticated):
		return SeedOutcome{Notification: UnauthorizedNotification}, ErrUnauthorized
	}

	n := SeedFailedNotification
	if res.Message != "" {
		n.Description = res.Message
	}
	if err == nil {
		err = errors.New("seed reported failure")
	}
	return SeedOutcome{Notification: n}, &PersistError{Op: "seed sample article names", Err: err}
}

// logger はリクエストスコープのロガーを優先する
func (s *Service) logger(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.Logger)
}
