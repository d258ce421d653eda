package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/utils/safe"
)

// Nested expansions fan out into hundreds of calls, so the budget per call
// stays modest while the run as a whole may take a while.
const defaultTimeout = 1 * time.Minute

// Client fetches member records from the legacy Portal API. The Portal only
// exposes members through a three-level nesting: countries own regions,
// regions own locations, locations own members.
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
		return nil, goerr.New("portal endpoint is required", goerr.T(model.ErrTagConfig))
	}
	if apiKey == "" {
		return nil, goerr.New("portal API key is required", goerr.T(model.ErrTagConfig))
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

// fetchList performs one authenticated Portal call and decodes the data
// array of its envelope into out.
func (c *Client) fetchList(ctx context.Context, path string, out any) error {
	reqURL := c.endpoint + path + "?key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build portal request", goerr.T(model.ErrTagConfig), goerr.V("path", path))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch from portal", goerr.T(model.ErrTagNetwork), goerr.V("path", path))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return goerr.New("portal returned non-OK status", goerr.T(model.ErrTagProtocol),
			goerr.V("status", resp.StatusCode), goerr.V("path", path))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return goerr.Wrap(err, "failed to decode portal response", goerr.T(model.ErrTagProtocol), goerr.V("path", path))
	}
	if env.Success != 1 {
		return goerr.New("portal reported failure", goerr.T(model.ErrTagProtocol),
			goerr.V("path", path), goerr.V("error_message", env.ErrorMessage))
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return goerr.Wrap(err, "failed to decode portal data", goerr.T(model.ErrTagProtocol), goerr.V("path", path))
	}
	return nil
}

func (c *Client) FetchCountries(ctx context.Context) ([]Country, error) {
	var countries []Country
	if err := c.fetchList(ctx, "/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (c *Client) FetchRegions(ctx context.Context, countryID int64) ([]Region, error) {
	var regions []Region
	if err := c.fetchList(ctx, fmt.Sprintf("/countries/%d/regions", countryID), &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (c *Client) FetchLocations(ctx context.Context, regionID int64) ([]Location, error) {
	var locations []Location
	if err := c.fetchList(ctx, fmt.Sprintf("/regions/%d/locations", regionID), &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) FetchMembers(ctx context.Context, locationID int64) ([]Member, error) {
	var members []Member
	if err := c.fetchList(ctx, fmt.Sprintf("/locations/%d/members", locationID), &members); err != nil {
		return nil, err
	}
	return members, nil
}
