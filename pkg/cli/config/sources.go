package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// SourceTuning is the per-source reconciliation tuning loaded from the
// optional TOML file. Durations use Go syntax ("1h", "30m").
type SourceTuning struct {
	Schedule    string `toml:"schedule"`
	GraceWindow string `toml:"grace_window"`
	ScoreTTL    string `toml:"score_ttl"`
}

// Tuning represents the source tuning configuration file
type Tuning struct {
	Hub    SourceTuning `toml:"hub"`
	Portal SourceTuning `toml:"portal"`
}

// Sources holds the CLI flag for the tuning file path
type Sources struct {
	path string
}

// NewSources builds a Sources pointing at a tuning file, used by tests
func NewSources(path string) *Sources {
	return &Sources{path: path}
}

// Flags returns CLI flags for source tuning configuration
func (s *Sources) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sources-config",
			Usage:       "Path to source tuning TOML file (optional)",
			Sources:     cli.EnvVars("FINSYNC_SOURCES_CONFIG"),
			Destination: &s.path,
		},
	}
}

// The grace window of each source must exceed its polling interval, so
// defaults keep a wide margin. Portal data changes rarely and its score
// averages are kept for four weeks.
func defaultTuning() Tuning {
	return Tuning{
		Hub: SourceTuning{
			Schedule:    "@every 30m",
			GraceWindow: "1h",
		},
		Portal: SourceTuning{
			Schedule:    "@every 12h",
			GraceWindow: "24h",
			ScoreTTL:    "672h",
		},
	}
}

// Load reads the tuning file, falling back to defaults when no path is
// given. Fields omitted from the file keep their default values.
func (s *Sources) Load() (*Tuning, error) {
	tuning := defaultTuning()
	if s.path == "" {
		return &tuning, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read source tuning file", goerr.V("path", s.path))
	}

	if err := toml.Unmarshal(data, &tuning); err != nil {
		return nil, goerr.Wrap(err, "failed to parse source tuning file", goerr.V("path", s.path))
	}

	if err := tuning.Validate(); err != nil {
		return nil, goerr.Wrap(err, "source tuning validation failed", goerr.V("path", s.path))
	}

	return &tuning, nil
}

// Validate checks schedules and durations in the tuning file
func (t *Tuning) Validate() error {
	for kind, st := range map[types.SourceKind]SourceTuning{
		types.SourceHub:    t.Hub,
		types.SourcePortal: t.Portal,
	} {
		if st.Schedule == "" {
			return goerr.New("schedule is required", goerr.V("source", kind))
		}
		if _, err := time.ParseDuration(st.GraceWindow); err != nil {
			return goerr.Wrap(err, "invalid grace window", goerr.V("source", kind))
		}
		if st.ScoreTTL != "" {
			if _, err := time.ParseDuration(st.ScoreTTL); err != nil {
				return goerr.Wrap(err, "invalid score TTL", goerr.V("source", kind))
			}
		}
	}
	return nil
}

// For returns the tuning for one source
func (t *Tuning) For(kind types.SourceKind) SourceTuning {
	switch kind {
	case types.SourcePortal:
		return t.Portal
	default:
		return t.Hub
	}
}

// SourceConfig converts the tuning into the reconciliation settings.
// Call Validate (via Load) first; parse errors here fall back to zero.
func (st SourceTuning) SourceConfig() usecase.SourceConfig {
	grace, _ := time.ParseDuration(st.GraceWindow)
	var ttl time.Duration
	if st.ScoreTTL != "" {
		ttl, _ = time.ParseDuration(st.ScoreTTL)
	}
	return usecase.SourceConfig{
		GraceWindow: grace,
		ScoreTTL:    ttl,
	}
}
