package notifier

import (
	"context"
	"time"
)

const (
	// Discord limits
	maxTitleLength       = 256
	maxDescriptionLength = 4096

	discordGreenColor = 0x2ECC71
	discordBlueColor  = 0x3498DB
)

// DiscordNotifier posts audit events to a Discord webhook.
type DiscordNotifier struct {
	client *webhookClient
}

// NewDiscordNotifier creates a DiscordNotifier limited to 2 requests per
// second with a burst of 5.
func NewDiscordNotifier(cfg WebhookConfig) *DiscordNotifier {
	return &DiscordNotifier{client: newWebhookClient("discord", cfg, NewRateLimiter(2.0, 5))}
}

// DiscordWebhookPayload represents the JSON payload sent to a Discord webhook.
type DiscordWebhookPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

// DiscordEmbed represents a Discord embed message.
type DiscordEmbed struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Color       int                `json:"color"`
	Footer      DiscordEmbedFooter `json:"footer"`
	Timestamp   string             `json:"timestamp"`
}

// DiscordEmbedFooter represents the footer of a Discord embed.
type DiscordEmbedFooter struct {
	Text string `json:"text"`
}

func buildEmbedPayload(e Event) DiscordWebhookPayload {
	color := discordBlueColor
	if e.Kind == EventArticleNameCreated {
		color = discordGreenColor
	}

	return DiscordWebhookPayload{
		Embeds: []DiscordEmbed{{
			Title:       truncate(e.Title, maxTitleLength, ""),
			Description: truncate(e.Detail, maxDescriptionLength, truncationSuffix),
			Color:       color,
			Footer:      DiscordEmbedFooter{Text: e.Actor},
			Timestamp:   e.At.Format(time.RFC3339),
		}},
	}
}

// Notify implements Notifier.
func (d *DiscordNotifier) Notify(ctx context.Context, e Event) error {
	return d.client.send(ctx, e, buildEmbedPayload(e))
}
