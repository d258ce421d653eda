package config

import (
	"log/slog"

	"github.com/reef-world/finsync/pkg/service/notify"
	"github.com/reef-world/finsync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Notify holds CLI flags for operational notifications
type Notify struct {
	slackToken   string
	slackChannel string
	heartbeatURL string
	production   bool
}

// Flags returns CLI flags for notification configuration
func (n *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for failure notifications",
			Sources:     cli.EnvVars("FINSYNC_SLACK_OAUTH_TOKEN"),
			Destination: &n.slackToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for failure notifications",
			Sources:     cli.EnvVars("FINSYNC_SLACK_CHANNEL"),
			Destination: &n.slackChannel,
		},
		&cli.StringFlag{
			Name:        "heartbeat-url",
			Usage:       "Monitoring URL pinged after each successful run",
			Sources:     cli.EnvVars("FINSYNC_HEARTBEAT_URL"),
			Destination: &n.heartbeatURL,
		},
		&cli.BoolFlag{
			Name:        "production",
			Usage:       "Enable production-only behavior such as heartbeats",
			Sources:     cli.EnvVars("FINSYNC_PRODUCTION"),
			Destination: &n.production,
		},
	}
}

// Production reports whether production-only behavior is enabled
func (n *Notify) Production() bool {
	return n.production
}

// LogValue masks the Slack token in log output
func (n Notify) LogValue() slog.Value {
	token := "(not set)"
	if n.slackToken != "" {
		token = "(configured)"
	}
	return slog.GroupValue(
		slog.String("slack_token", token),
		slog.String("slack_channel", n.slackChannel),
		slog.String("heartbeat_url", n.heartbeatURL),
		slog.Bool("production", n.production),
	)
}

// Notifier builds the Slack notifier, or nil when not configured
func (n *Notify) Notifier() (notify.Service, error) {
	if n.slackToken == "" && n.slackChannel == "" {
		logging.Default().Info("Slack notification is disabled")
		return nil, nil
	}
	return notify.NewSlack(n.slackToken, n.slackChannel)
}

// Heartbeat builds the heartbeat pinger, or nil when not configured
func (n *Notify) Heartbeat() *notify.Heartbeat {
	if n.heartbeatURL == "" {
		return nil
	}
	return notify.NewHeartbeat(n.heartbeatURL)
}
