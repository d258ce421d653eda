package hub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/utils/safe"
)

const defaultTimeout = 2 * time.Minute

// Client fetches operation records from the Hub API. The Hub is the current
// API generation: a single authenticated call returns the full member list.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, used by tests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(endpoint, apiKey string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, goerr.New("hub endpoint is required", goerr.T(model.ErrTagConfig))
	}
	if apiKey == "" {
		return nil, goerr.New("hub API key is required", goerr.T(model.ErrTagConfig))
	}

	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FetchOperations retrieves the full operations listing. Records named with
// literal parentheses, e.g. "(Test Account)", are sandbox fixtures injected
// upstream and are dropped before the result is returned.
func (c *Client) FetchOperations(ctx context.Context) ([]Operation, error) {
	url := c.endpoint + "/operations"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build hub request", goerr.T(model.ErrTagConfig), goerr.V("url", url))
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch operations", goerr.T(model.ErrTagNetwork), goerr.V("url", url))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, goerr.New("hub returned non-OK status", goerr.T(model.ErrTagProtocol),
			goerr.V("status", resp.StatusCode), goerr.V("body", string(body)))
	}

	var operations []Operation
	if err := json.NewDecoder(resp.Body).Decode(&operations); err != nil {
		return nil, goerr.Wrap(err, "failed to decode operations response", goerr.T(model.ErrTagProtocol))
	}

	filtered := operations[:0]
	for _, op := range operations {
		if isTestFixture(op.Name) {
			continue
		}
		filtered = append(filtered, op)
	}

	return filtered, nil
}

func isTestFixture(name string) bool {
	return strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")")
}
