package notifier

import (
	"context"
	"fmt"
	"time"
)

const (
	// Slack Block Kit limits
	maxSectionTextLength = 3000
	maxFallbackLength    = 150

	truncationSuffix = "..."
)

// SlackNotifier posts audit events to a Slack Incoming Webhook.
type SlackNotifier struct {
	client *webhookClient
}

// NewSlackNotifier creates a SlackNotifier limited to 1 message per second,
// the Incoming Webhook limit.
func NewSlackNotifier(cfg WebhookConfig) *SlackNotifier {
	return &SlackNotifier{client: newWebhookClient("slack", cfg, NewRateLimiter(1.0, 1))}
}

// SlackWebhookPayload represents the JSON payload sent to Slack webhook using Block Kit.
type SlackWebhookPayload struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks"`
}

// SlackBlock represents a Slack Block Kit block.
type SlackBlock struct {
	Type     string            `json:"type"`
	Text     *SlackTextObject  `json:"text,omitempty"`
	Elements []SlackTextObject `json:"elements,omitempty"`
}

// SlackTextObject represents a text object in Slack Block Kit.
type SlackTextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// buildBlockKitPayload renders e as a section block (bold title + detail)
// followed by a context block (actor + timestamp).
func buildBlockKitPayload(e Event) SlackWebhookPayload {
	fallback := truncate(fmt.Sprintf("%s - %s", e.Title, e.Actor), maxFallbackLength, truncationSuffix)
	section := truncate(fmt.Sprintf("*%s*\n\n%s", e.Title, e.Detail), maxSectionTextLength, truncationSuffix)

	return SlackWebhookPayload{
		Text: fallback,
		Blocks: []SlackBlock{
			{
				Type: "section",
				Text: &SlackTextObject{Type: "mrkdwn", Text: section},
			},
			{
				Type: "context",
				Elements: []SlackTextObject{
					{Type: "mrkdwn", Text: fmt.Sprintf("%s • %s", e.Actor, e.At.Format(time.RFC3339))},
				},
			},
		},
	}
}

// Notify implements Notifier.
func (s *SlackNotifier) Notify(ctx context.Context, e Event) error {
	return s.client.send(ctx, e, buildBlockKitPayload(e))
}
