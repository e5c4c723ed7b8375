// Package height resolves point elevations, optionally via an external
// height lookup service.
package height

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Resolver turns a maybe-missing input elevation into a definite value.
// The returned bool reports whether the value came from a real source
// (present in the input, or a successful lookup); when false the value
// is the 0.0 sentinel.
type Resolver interface {
	Resolve(ctx context.Context, ele *float64, easting, northing float64) (float64, bool)
}

// Static is the lookup-disabled resolver: a missing elevation becomes
// the sentinel without any network access.
type Static struct{}

// Resolve implements Resolver.
func (Static) Resolve(_ context.Context, ele *float64, _, _ float64) (float64, bool) {
	if ele != nil {
		return *ele, true
	}

	return 0.0, false
}

// Client resolves missing elevations against a height lookup service
// keyed on planar coordinates. Lookup failures are logged and degrade to
// the sentinel; they never abort a conversion. Calls are paced by a
// shared limiter to respect the service's fair-use limits.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
	url     string
	sr      int
}

// NewClient builds a lookup resolver. The interval is the minimum
// spacing between consecutive lookup calls, the timeout bounds a single
// call.
func NewClient(apiURL string, sr int, interval, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		log:     log,
		url:     apiURL,
		sr:      sr,
	}
}

// heightField tolerates the service returning the height either as a
// JSON number or as a quoted numeric string.
type heightField struct {
	value float64
	set   bool
}

func (h *heightField) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("height field %q: %w", s, err)
	}

	h.value = v
	h.set = true
	return nil
}

// Resolve implements Resolver. A present input elevation is returned
// unchanged and never triggers a lookup.
func (c *Client) Resolve(ctx context.Context, ele *float64, easting, northing float64) (float64, bool) {
	if ele != nil {
		return *ele, true
	}

	h, err := c.fetch(ctx, easting, northing)
	if err != nil {
		c.log.Warn().
			Err(err).
			Float64("easting", easting).
			Float64("northing", northing).
			Msg("Could not fetch elevation, falling back to 0.0")

		return 0.0, false
	}

	return h, true
}

// fetch performs a single lookup call, no retries.
func (c *Client) fetch(ctx context.Context, easting, northing float64) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	q := url.Values{}
	q.Set("easting", strconv.FormatFloat(easting, 'f', -1, 64))
	q.Set("northing", strconv.FormatFloat(northing, 'f', -1, 64))
	q.Set("sr", strconv.Itoa(c.sr))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status %d", resp.StatusCode)
	}

	var body struct {
		Height heightField `json:"height"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if !body.Height.set {
		return 0, fmt.Errorf("response has no height field")
	}

	return body.Height.value, nil
}
