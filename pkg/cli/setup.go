package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/cli/config"
	"github.com/reef-world/finsync/pkg/service/hub"
	"github.com/reef-world/finsync/pkg/service/portal"
	"github.com/reef-world/finsync/pkg/usecase"
	"github.com/reef-world/finsync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// sourceConfigs bundles the flag structs shared by serve and ingest
type sourceConfigs struct {
	repo    config.Repository
	cache   config.ScoreCache
	hub     config.Hub
	portal  config.Portal
	assets  config.Assets
	notify  config.Notify
	sources config.Sources
}

func (c *sourceConfigs) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, c.repo.Flags()...)
	flags = append(flags, c.cache.Flags()...)
	flags = append(flags, c.hub.Flags()...)
	flags = append(flags, c.portal.Flags()...)
	flags = append(flags, c.assets.Flags()...)
	flags = append(flags, c.notify.Flags()...)
	flags = append(flags, c.sources.Flags()...)
	return flags
}

// build wires the repositories, services and sources into the use case
// layer. The returned closers release external connections in reverse
// order of construction.
func (c *sourceConfigs) build(ctx context.Context) (*usecase.UseCases, *config.Tuning, func(), error) {
	tuning, err := c.sources.Load()
	if err != nil {
		return nil, nil, nil, goerr.Wrap(err, "failed to load source tuning")
	}

	repo, err := c.repo.Configure(ctx)
	if err != nil {
		return nil, nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}

	closers := []func(){
		func() {
			if err := repo.Close(); err != nil {
				logging.Default().Error("failed to close repository", "error", err.Error())
			}
		},
	}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	scores, err := c.cache.Configure(ctx)
	if err != nil {
		closeAll()
		return nil, nil, nil, goerr.Wrap(err, "failed to initialize score cache")
	}
	closers = append(closers, func() {
		if err := scores.Close(); err != nil {
			logging.Default().Error("failed to close score cache", "error", err.Error())
		}
	})

	assetCache, err := c.assets.Configure()
	if err != nil {
		closeAll()
		return nil, nil, nil, goerr.Wrap(err, "failed to initialize asset cache")
	}

	ucOpts := []usecase.Option{
		usecase.WithScoreCache(scores),
		usecase.WithAssets(assetCache),
		usecase.WithProduction(c.notify.Production()),
	}

	notifier, err := c.notify.Notifier()
	if err != nil {
		closeAll()
		return nil, nil, nil, goerr.Wrap(err, "failed to initialize notifier")
	}
	if notifier != nil {
		ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
		logging.Default().Info("Slack notification enabled", "notify", c.notify)
	}
	if hb := c.notify.Heartbeat(); hb != nil {
		ucOpts = append(ucOpts, usecase.WithHeartbeat(hb))
	}

	if c.hub.Enabled() {
		client, err := c.hub.Configure()
		if err != nil {
			closeAll()
			return nil, nil, nil, goerr.Wrap(err, "failed to initialize hub client")
		}
		ucOpts = append(ucOpts, usecase.WithSource(
			hub.NewSource(client),
			tuning.Hub.SourceConfig(),
		))
		logging.Default().Info("Hub source enabled", "hub", c.hub)
	}

	if c.portal.Enabled() {
		client, err := c.portal.Configure()
		if err != nil {
			closeAll()
			return nil, nil, nil, goerr.Wrap(err, "failed to initialize portal client")
		}
		ucOpts = append(ucOpts, usecase.WithSource(
			portal.NewSource(client),
			tuning.Portal.SourceConfig(),
		))
		logging.Default().Info("Portal source enabled", "portal", c.portal)
	}

	uc := usecase.New(repo, ucOpts...)
	return uc, tuning, closeAll, nil
}
