package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Options configures an Open-Meteo client. Zero values select the defaults.
type Options struct {
	BaseURL    string
	MaxRetries int
	// Limiter throttles outbound requests; nil means unlimited.
	Limiter *rate.Limiter
}

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
	errBadRetries   = errors.New("invalid retry policy")
)

// retryPolicy doubles the wait after every failed attempt, capped at ceiling.
type retryPolicy struct {
	retries int
	base    time.Duration
	ceiling time.Duration
}

func (p retryPolicy) valid() bool {
	return p.retries == 0 || (p.retries > 0 && p.base > 0)
}

func (p retryPolicy) wait(attempt int) time.Duration {
	d := p.base << attempt
	if p.ceiling > 0 && (d > p.ceiling || d <= 0) {
		return p.ceiling
	}
	return d
}

// upstream is one Open-Meteo endpoint guarded by a limiter, a retry policy
// and its own circuit breaker.
type upstream struct {
	client  *http.Client
	limiter *rate.Limiter
	retry   retryPolicy
	breaker *gobreaker.CircuitBreaker
}

func newUpstream(name string, client *http.Client, opts Options) *upstream {
	return &upstream{
		client:  client,
		limiter: opts.Limiter,
		retry: retryPolicy{
			retries: opts.MaxRetries,
			base:    500 * time.Millisecond,
			ceiling: 5 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
}

// get fetches rawURL and returns a 2xx response whose body the caller closes.
// An open breaker ends the call at once; other failures are retried per policy.
func (u *upstream) get(ctx context.Context, rawURL string) (*http.Response, error) {
	if u.client == nil {
		return nil, errNoHTTPClient
	}
	if !u.retry.valid() {
		return nil, errBadRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := u.attempt(ctx, rawURL)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, errCircuitOpen) || ctx.Err() != nil || attempt >= u.retry.retries {
			return nil, err
		}

		timer := time.NewTimer(u.retry.wait(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (u *upstream) attempt(ctx context.Context, rawURL string) (*http.Response, error) {
	if u.limiter != nil {
		if err := u.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	out, err := u.breaker.Execute(func() (any, error) {
		resp, err := u.client.Do(req)
		if err != nil {
			return nil, err
		}
		if err := statusError(resp.StatusCode); err != nil {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, err
		}
		return resp, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}
	return out.(*http.Response), nil
}

// statusError maps a non-2xx status to one of the sentinel errors.
func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests:
		return errRateLimited
	case code >= 500:
		return fmt.Errorf("%w: %d", errServerError, code)
	default:
		return fmt.Errorf("%w: %d", errUnexpected, code)
	}
}
