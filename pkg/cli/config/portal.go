package config

import (
	"log/slog"

	"github.com/reef-world/finsync/pkg/service/portal"
	"github.com/urfave/cli/v3"
)

// Portal holds CLI flags for the legacy Portal API source
type Portal struct {
	endpoint string
	apiKey   string
}

// Flags returns CLI flags for Portal source configuration
func (p *Portal) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "portal-endpoint",
			Usage:       "Portal API base URL",
			Sources:     cli.EnvVars("FINSYNC_PORTAL_ENDPOINT"),
			Destination: &p.endpoint,
		},
		&cli.StringFlag{
			Name:        "portal-api-key",
			Usage:       "Portal API key",
			Sources:     cli.EnvVars("FINSYNC_PORTAL_API_KEY"),
			Destination: &p.apiKey,
		},
	}
}

// Enabled reports whether the Portal source is configured
func (p *Portal) Enabled() bool {
	return p.endpoint != "" && p.apiKey != ""
}

// LogValue masks the API key in log output
func (p Portal) LogValue() slog.Value {
	apiKey := "(not set)"
	if p.apiKey != "" {
		apiKey = "(configured)"
	}
	return slog.GroupValue(
		slog.String("endpoint", p.endpoint),
		slog.String("api_key", apiKey),
	)
}

// Configure builds the Portal API client
func (p *Portal) Configure() (*portal.Client, error) {
	return portal.New(p.endpoint, p.apiKey)
}
