package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// Fetch defaults.
const (
	DefaultFetchWorkers    = 20
	DefaultFetchTimeout    = 8 * time.Second
	DefaultFetchAttempts   = 2
	DefaultFetchRetryDelay = 150 * time.Millisecond
	DefaultUserAgent       = "Mozilla/5.0"
	DefaultMaxBytes        = 20 << 20
)

var (
	errUnexpectedStatus = errors.New("unexpected status")
	errTooLarge         = errors.New("response too large")
)

// Fetcher downloads the corpus.
type Fetcher interface {
	// Fetch returns the bodies of urls in the order of urls. URLs that could
	// not be retrieved are omitted. The only error is a cancelled context.
	Fetch(ctx context.Context, urls []string) ([]m.RawSource, error)
}

// FetchOptions configures an HTTPFetcher. Zero values select the defaults.
type FetchOptions struct {
	Workers    int
	Timeout    time.Duration
	Attempts   int
	RetryDelay time.Duration
	UserAgent  string
	// Rate caps requests per second across workers. Zero disables the cap.
	Rate     float64
	MaxBytes int64
}

func (o FetchOptions) withDefaults() FetchOptions {
	if o.Workers <= 0 {
		o.Workers = DefaultFetchWorkers
	}

	if o.Timeout <= 0 {
		o.Timeout = DefaultFetchTimeout
	}

	if o.Attempts <= 0 {
		o.Attempts = DefaultFetchAttempts
	}

	if o.RetryDelay <= 0 {
		o.RetryDelay = DefaultFetchRetryDelay
	}

	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}

	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}

	return o
}

// HTTPFetcher downloads URLs concurrently over HTTP.
type HTTPFetcher struct {
	client  *http.Client
	opts    FetchOptions
	limiter *rate.Limiter
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client uses http.DefaultClient.
func NewHTTPFetcher(client *http.Client, opts FetchOptions) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}

	opts = opts.withDefaults()

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}

	return &HTTPFetcher{client: client, opts: opts, limiter: limiter}
}

// Fetch implements Fetcher. Each worker writes its own slot; slots are then
// compacted in input order.
func (f *HTTPFetcher) Fetch(ctx context.Context, urls []string) ([]m.RawSource, error) {
	slots := make([][]byte, len(urls))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(f.opts.Workers)

	for i, u := range urls {
		group.Go(func() error {
			body, err := f.fetchWithRetry(groupCtx, u)
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}

				slog.Debug("Fetch failed", "url", u, "error", err)

				return nil
			}

			slots[i] = body

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sources := make([]m.RawSource, 0, len(urls))

	for i, body := range slots {
		if body == nil {
			continue
		}

		sources = append(sources, m.RawSource{Identifier: urls[i], Data: body})
	}

	slog.Info("Fetched sources", "requested", len(urls), "fetched", len(sources))

	return sources, nil
}

func (f *HTTPFetcher) fetchWithRetry(ctx context.Context, u string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= f.opts.Attempts; attempt++ {
		body, err := f.fetchOnce(ctx, u)
		if err == nil {
			return body, nil
		}

		lastErr = err

		if attempt == f.opts.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.opts.RetryDelay):
		}
	}

	return nil, lastErr
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, u string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqCtx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if int64(len(body)) > f.opts.MaxBytes {
		return nil, errTooLarge
	}

	return body, nil
}
