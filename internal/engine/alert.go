package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/discogs-alert/internal/notify"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

const batchThreshold = 5

// send delivers matches for one release. Five or more matches go out as a
// single batch; fewer are sent one by one and the first failure stops the
// release so none of its listings are marked seen.
func (eng *Engine) send(ctx context.Context, release string, listings []domain.Listing) error {
	payloads := make([]notify.AlertPayload, 0, len(listings))
	for i := range listings {
		payloads = append(payloads, notify.NewAlertPayload(release, &listings[i], eng.siteURL))
	}

	if len(payloads) >= batchThreshold {
		if err := eng.notifier.SendBatchAlert(ctx, payloads, release); err != nil {
			return fmt.Errorf("sending batch alert: %w", err)
		}
		return nil
	}

	for i := range payloads {
		if err := eng.notifier.SendAlert(ctx, &payloads[i]); err != nil {
			return fmt.Errorf("sending alert for listing %d: %w", payloads[i].ListingID, err)
		}
	}

	return nil
}
