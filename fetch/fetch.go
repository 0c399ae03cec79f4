package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the JPL SSD API root.
const DefaultBaseURL = "https://ssd-api.jpl.nasa.gov"

// Config holds client limits.
type Config struct {
	// BaseURL overrides the JPL SSD API root.
	// If empty, DefaultBaseURL is used.
	BaseURL string

	// HTTPClient overrides the HTTP client.
	// If nil, a client with a 60-second timeout is used.
	HTTPClient *http.Client

	// MaxConcurrent is the maximum number of in-flight requests.
	// If 0, defaults to 2.
	MaxConcurrent int64

	// RequestsPerSecond throttles request starts.
	// If 0, defaults to 1.
	RequestsPerSecond float64
}

// Client fetches NASA datasets from the JPL SSD API. Requests are rate
// limited and capped in flight; the API is a shared public service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	sem        *semaphore.Weighted
}

// NewClient creates a JPL SSD API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 2
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}

	burst := int(cfg.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		sem:        semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// StatusError reports a non-OK response from the API.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: %s returned status %d", e.Path, e.StatusCode)
}

// ApproachParams narrows a close-approach fetch. Zero values are omitted
// from the request, falling back to the API defaults.
type ApproachParams struct {
	// DateMin and DateMax bound the approach date.
	DateMin time.Time
	DateMax time.Time

	// DistMax is the maximum approach distance in au.
	DistMax float64

	// Designation restricts the fetch to a single object.
	Designation string
}

func (p ApproachParams) values() url.Values {
	v := url.Values{}
	if !p.DateMin.IsZero() {
		v.Set("date-min", p.DateMin.UTC().Format("2006-01-02"))
	}
	if !p.DateMax.IsZero() {
		v.Set("date-max", p.DateMax.UTC().Format("2006-01-02"))
	}
	if p.DistMax > 0 {
		v.Set("dist-max", strconv.FormatFloat(p.DistMax, 'f', -1, 64))
	}
	if p.Designation != "" {
		v.Set("des", p.Designation)
	}
	return v
}

// FetchApproaches requests close-approach data (the cad.json format).
// The caller must close the returned body.
func (c *Client) FetchApproaches(ctx context.Context, params ApproachParams) (io.ReadCloser, error) {
	return c.get(ctx, "/cad.api", params.values())
}

// FetchObjects requests the NEO object records used to build neos.csv.
// The response is the SBDB query envelope (fields header plus data
// rows). The caller must close the returned body.
func (c *Client) FetchObjects(ctx context.Context) (io.ReadCloser, error) {
	v := url.Values{}
	v.Set("fields", "pdes,name,diameter,pha")
	v.Set("sb-group", "neo")
	return c.get(ctx, "/sbdb_query.api", v)
}

// get issues a throttled GET request. The concurrency slot is held until
// the returned body is closed; responses stream.
func (c *Client) get(ctx context.Context, path string, query url.Values) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.sem.Release(1)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.sem.Release(1)
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		c.sem.Release(1)
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	return &throttledBody{ReadCloser: resp.Body, release: func() { c.sem.Release(1) }}, nil
}

// throttledBody releases the client's concurrency slot when closed.
type throttledBody struct {
	io.ReadCloser
	release func()
	once    sync.Once
}

func (b *throttledBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(b.release)
	return err
}
