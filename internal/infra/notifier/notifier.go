// Package notifier sends audit notifications about reference-data changes
// made from the admin console.
//
// Implementations post to chat webhooks (Slack, Discord). NoOpNotifier is
// used when no webhook is configured, and Async wraps any Notifier so that
// callers never wait on the network.
package notifier

import (
	"context"
	"fmt"
	"time"

	"stock-admin/internal/domain/entity"
)

// EventKind identifies what happened.
type EventKind string

const (
	EventArticleNameCreated EventKind = "article_name.created"
	EventSampleDataSeeded   EventKind = "sample_data.seeded"
)

// Event is a single audit notification.
type Event struct {
	Kind    EventKind
	Title   string
	Detail  string
	ActorID string
	Actor   string
	At      time.Time
}

// Notifier is an interface for sending audit notifications.
type Notifier interface {
	// Notify delivers e. Implementations apply their own rate limiting
	// and must respect ctx cancellation.
	Notify(ctx context.Context, e Event) error
}

// ArticleNameCreated builds the event emitted after an article name is stored.
func ArticleNameCreated(a *entity.ArticleName) Event {
	detail := fmt.Sprintf("Unité par défaut : %s", a.DefaultUnit)
	if d := a.DescriptionText(); d != "" {
		detail += "\n" + d
	}
	return Event{
		Kind:    EventArticleNameCreated,
		Title:   fmt.Sprintf("Nouvel article : %s", a.Name),
		Detail:  detail,
		ActorID: a.CreatedBy,
		Actor:   a.CreatedByName,
		At:      a.CreatedAt,
	}
}

// SampleDataSeeded builds the event emitted after the sample set is inserted.
func SampleDataSeeded(actor entity.Actor, count int, at time.Time) Event {
	return Event{
		Kind:    EventSampleDataSeeded,
		Title:   "Articles d'exemple créés",
		Detail:  fmt.Sprintf("%d articles d'exemple ajoutés", count),
		ActorID: actor.ID,
		Actor:   actor.DisplayName(),
		At:      at,
	}
}
