package config

import (
	"github.com/reef-world/finsync/pkg/service/assets"
	"github.com/urfave/cli/v3"
)

// Assets holds CLI flags for the member logo cache
type Assets struct {
	dir             string
	defaultFilename string
}

// Flags returns CLI flags for asset cache configuration
func (a *Assets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "assets-dir",
			Usage:       "Directory for cached member logos",
			Value:       "./assets/logos",
			Sources:     cli.EnvVars("FINSYNC_ASSETS_DIR"),
			Destination: &a.dir,
		},
		&cli.StringFlag{
			Name:        "assets-default-logo",
			Usage:       "Fallback logo filename used when a download fails",
			Value:       "member-default.png",
			Sources:     cli.EnvVars("FINSYNC_ASSETS_DEFAULT_LOGO"),
			Destination: &a.defaultFilename,
		},
	}
}

// Configure builds the asset cache over the configured directory
func (a *Assets) Configure() (*assets.Cache, error) {
	return assets.New(a.dir, a.defaultFilename)
}
