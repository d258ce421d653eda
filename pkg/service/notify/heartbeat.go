package notify

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/utils/safe"
)

// Heartbeat pings an external monitoring endpoint after a successful run.
// The monitor alerts when pings stop arriving; a failed ping is logged by
// the caller and never fails the run itself.
type Heartbeat struct {
	url        string
	httpClient *http.Client
}

func NewHeartbeat(url string) *Heartbeat {
	return &Heartbeat{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Ping sends a HEAD request to the monitoring endpoint
func (h *Heartbeat) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.url, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build heartbeat request")
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send heartbeat")
	}
	safe.Close(ctx, resp.Body)

	return nil
}
