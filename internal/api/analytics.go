package api

import (
	"context"
	"net/http"
	"time"

	"github.com/quickcourt/client-go/internal/transport"
	"github.com/quickcourt/client-go/internal/types"
)

type searchEventWire struct {
	Query       string    `json:"query"`
	Location    string    `json:"location,omitempty"`
	SportTypes  []string  `json:"sport_types,omitempty"`
	ResultCount int       `json:"result_count"`
	UserID      string    `json:"user_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// SendSearchEvent posts one analytics event. The transport retry budget is
// zeroed here: the event queue owns retries for this path, with its own
// backoff, so stacking the transport's resends on top would multiply
// attempts.
func SendSearchEvent(ctx context.Context, t *transport.Transport, ev types.SearchEvent) error {
	noRetries := 0
	_, err := t.Send(ctx, &transport.Request{
		Method: http.MethodPost,
		Path:   "/analytics/search",
		Body: searchEventWire{
			Query:       ev.Query,
			Location:    ev.Location,
			SportTypes:  ev.SportTypes,
			ResultCount: ev.ResultCount,
			UserID:      ev.UserID,
			OccurredAt:  ev.OccurredAt,
		},
		Operation: "search_analytics",
		Retries:   &noRetries,
	})
	return err
}
