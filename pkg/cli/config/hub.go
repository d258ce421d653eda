package config

import (
	"log/slog"

	"github.com/reef-world/finsync/pkg/service/hub"
	"github.com/urfave/cli/v3"
)

// Hub holds CLI flags for the Hub API source
type Hub struct {
	endpoint string
	apiKey   string
}

// Flags returns CLI flags for Hub source configuration
func (h *Hub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "hub-endpoint",
			Usage:       "Hub API base URL",
			Sources:     cli.EnvVars("FINSYNC_HUB_ENDPOINT"),
			Destination: &h.endpoint,
		},
		&cli.StringFlag{
			Name:        "hub-api-key",
			Usage:       "Hub API key",
			Sources:     cli.EnvVars("FINSYNC_HUB_API_KEY"),
			Destination: &h.apiKey,
		},
	}
}

// Enabled reports whether the Hub source is configured
func (h *Hub) Enabled() bool {
	return h.endpoint != "" && h.apiKey != ""
}

// LogValue masks the API key in log output
func (h Hub) LogValue() slog.Value {
	apiKey := "(not set)"
	if h.apiKey != "" {
		apiKey = "(configured)"
	}
	return slog.GroupValue(
		slog.String("endpoint", h.endpoint),
		slog.String("api_key", apiKey),
	)
}

// Configure builds the Hub API client
func (h *Hub) Configure() (*hub.Client, error) {
	return hub.New(h.endpoint, h.apiKey)
}
