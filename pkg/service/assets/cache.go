package assets

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/utils/safe"
)

const downloadTimeout = 30 * time.Second

// Cache maintains a flat directory of logo images named by the basename of
// their source URL. Content is assumed immutable per basename: once a file
// exists no network fetch happens for it again.
//
// The directory listing is snapshotted at construction and tracked in
// memory afterwards. Runs are serialized by the scheduler, so concurrent
// changes to the directory are not a concern.
type Cache struct {
	dir             string
	defaultFilename string
	httpClient      *http.Client

	mu    sync.Mutex
	known map[string]bool
}

type Option func(*Cache)

// WithHTTPClient replaces the underlying HTTP client, used by tests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Cache) {
		c.httpClient = httpClient
	}
}

// New snapshots the asset directory and returns a cache. defaultFilename
// is returned for records without a usable logo and on download failure.
func New(dir, defaultFilename string, opts ...Option) (*Cache, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read asset directory", goerr.T(model.ErrTagConfig), goerr.V("dir", dir))
	}

	known := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			known[entry.Name()] = true
		}
	}

	c := &Cache{
		dir:             dir,
		defaultFilename: defaultFilename,
		httpClient:      &http.Client{Timeout: downloadTimeout},
		known:           known,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Ensure returns the local filename for remoteURL, downloading it first if
// no file with that basename exists yet. fetched reports whether a network
// download happened.
//
// Failures are non-fatal: the configured default filename is returned
// together with the error, and the caller keeps going with the fallback.
func (c *Cache) Ensure(ctx context.Context, remoteURL string) (filename string, fetched bool, err error) {
	basename := basenameOf(remoteURL)
	if basename == "" {
		return c.defaultFilename, false, goerr.New("no usable logo URL", goerr.T(model.ErrTagAsset), goerr.V("url", remoteURL))
	}

	c.mu.Lock()
	exists := c.known[basename]
	c.mu.Unlock()
	if exists {
		return basename, false, nil
	}

	if err := c.download(ctx, remoteURL, basename); err != nil {
		return c.defaultFilename, false, err
	}

	c.mu.Lock()
	c.known[basename] = true
	c.mu.Unlock()

	return basename, true, nil
}

func (c *Cache) download(ctx context.Context, remoteURL, basename string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build asset request", goerr.T(model.ErrTagAsset), goerr.V("url", remoteURL))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to download asset", goerr.T(model.ErrTagAsset), goerr.V("url", remoteURL))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return goerr.New("asset download returned non-OK status", goerr.T(model.ErrTagAsset),
			goerr.V("url", remoteURL), goerr.V("status", resp.StatusCode))
	}

	// Download into a temp file in the same directory so the final rename
	// is atomic and a failed transfer never leaves a partial asset behind.
	tmp, err := os.CreateTemp(c.dir, ".download-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.T(model.ErrTagAsset), goerr.V("dir", c.dir))
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		safe.Close(ctx, tmp)
		safe.Remove(ctx, tmpPath)
		return goerr.Wrap(err, "failed to write asset", goerr.T(model.ErrTagAsset), goerr.V("url", remoteURL))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(ctx, tmpPath)
		return goerr.Wrap(err, "failed to flush asset", goerr.T(model.ErrTagAsset), goerr.V("url", remoteURL))
	}

	if err := os.Rename(tmpPath, filepath.Join(c.dir, basename)); err != nil {
		safe.Remove(ctx, tmpPath)
		return goerr.Wrap(err, "failed to place asset", goerr.T(model.ErrTagAsset), goerr.V("basename", basename))
	}

	return nil
}

// DefaultFilename returns the configured fallback asset name
func (c *Cache) DefaultFilename() string {
	return c.defaultFilename
}

func basenameOf(remoteURL string) string {
	if remoteURL == "" {
		return ""
	}
	u, err := url.Parse(remoteURL)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
