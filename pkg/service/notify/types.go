package notify

import "context"

// Service delivers operational notifications about ingestion runs. Delivery
// failures are always non-fatal for the run that reports them.
type Service interface {
	// Notify posts an operational message to the configured channel
	Notify(ctx context.Context, message string) error
}
