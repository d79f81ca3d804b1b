package ephemeris

import (
	"context"
	"fmt"
	"time"

	"AstroCore/internal/domain/models"
	drepo "AstroCore/internal/domain/repository"
	svccache "AstroCore/internal/service/cache"
	pkghttp "AstroCore/pkg/http"
	"AstroCore/pkg/logger"
)

// Client fetches raw chart payloads from the Swiss Ephemeris backend over
// HTTP. Responses are kept verbatim so the normalizer sees exactly what
// the backend produced.
type Client struct {
	baseURL       string
	retryAttempts int
	memoTTL       time.Duration

	http *pkghttp.Client
	memo svccache.BytesCache
	log  *logger.Logger
}

// New creates an ephemeris client. memo may be nil to disable memoization.
func New(baseURL string, timeout time.Duration, retryAttempts int, memoTTL time.Duration, memo svccache.BytesCache, log *logger.Logger) drepo.EphemerisSource {
	if retryAttempts < 1 {
		retryAttempts = 1
	}
	return &Client{
		baseURL:       baseURL,
		retryAttempts: retryAttempts,
		memoTTL:       memoTTL,
		http:          pkghttp.NewClient(pkghttp.WithTimeout(timeout)),
		memo:          memo,
		log:           log,
	}
}

// FetchChart requests a raw chart for the given birth data. Transient
// failures are retried with exponential backoff.
func (c *Client) FetchChart(ctx context.Context, birth models.BirthData) ([]byte, error) {
	key := birth.CanonicalKey()

	if c.memo != nil {
		if b, ok, err := c.memo.GetBytes(key); err == nil && ok {
			return b, nil
		}
	}

	opts := &pkghttp.RequestOptions{
		Method: pkghttp.MethodPost,
		URL:    c.baseURL + "/chart",
		Body:   birth,
	}

	var body []byte
	var lastErr error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		if err := c.http.SendAndParse(ctx, opts, &body); err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn("ephemeris fetch failed",
				logger.Int("attempt", attempt),
				logger.Error(err))

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff(attempt)):
			}
			continue
		}

		if c.memo != nil && c.memoTTL > 0 {
			_ = c.memo.SetBytes(key, body, c.memoTTL)
		}
		return body, nil
	}

	return nil, fmt.Errorf("ephemeris fetch after %d attempts: %w", c.retryAttempts, lastErr)
}

// Health probes the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	opts := &pkghttp.RequestOptions{
		Method: pkghttp.MethodGet,
		URL:    c.baseURL + "/health",
	}
	return c.http.SendAndParse(ctx, opts, nil)
}

func backoff(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt-1)) * 200 * time.Millisecond
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
