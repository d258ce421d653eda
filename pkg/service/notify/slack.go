package notify

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// client implements Service interface
type client struct {
	api     *slack.Client
	channel string
}

// NewSlack creates a Slack-backed notifier posting to the given channel
func NewSlack(token, channel string) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	return &client{
		api:     slack.New(token),
		channel: channel,
	}, nil
}

func (c *client) Notify(ctx context.Context, message string) error {
	_, _, err := c.api.PostMessageContext(ctx, c.channel,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post notification", goerr.V("channel", c.channel))
	}
	return nil
}
