package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging alerts instead of sending
// them. It is used when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that only logs.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &NoOpNotifier{log: log}
}

// SendAlert logs a single alert.
func (n *NoOpNotifier) SendAlert(_ context.Context, alert *AlertPayload) error {
	n.log.Info("listing matched (no notification backend configured)",
		"release_id", alert.ReleaseID,
		"release", alert.ReleaseTitle,
		"listing_id", alert.ListingID,
		"price", alert.Price,
		"media", alert.MediaCondition.Short(),
		"url", alert.ListingURL,
	)
	return nil
}

// SendBatchAlert logs a batch of alerts.
func (n *NoOpNotifier) SendBatchAlert(_ context.Context, alerts []AlertPayload, release string) error {
	n.log.Info("listings matched (no notification backend configured)",
		"release", release,
		"count", len(alerts),
	)
	return nil
}
