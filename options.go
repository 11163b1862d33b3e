package client

// Functional options applied during New. Options override environment
// configuration; they must be deterministic and side-effect free.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/quickcourt/client-go/internal/eventqueue"
	"github.com/quickcourt/client-go/internal/session"
	"github.com/quickcourt/client-go/internal/transport"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithConfig replaces the environment-derived configuration wholesale.
// The base URL passed to New still wins.
func WithConfig(cfg Config) Option {
	return func(c *Client) error {
		base := c.cfg.BaseURL
		c.cfg = cfg
		if cfg.BaseURL == "" {
			c.cfg.BaseURL = base
		}
		c.retry = transport.RetryPolicy{MaxRetries: c.cfg.MaxRetries, BaseDelay: c.cfg.RetryBaseDelay}
		return nil
	}
}

// WithHTTPClient swaps the underlying http.Client, e.g. for a test
// server's client or custom TLS settings.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets a coarse safety-net timeout on the underlying
// http.Client. Per-request deadlines from the read/write timeouts still
// apply beneath it.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithSessionStore injects a session store, letting callers share state
// with the embedding app or swap in a test double.
func WithSessionStore(s session.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("session store must not be nil")
		}
		c.store = s
		return nil
	}
}

// WithNavigator injects the navigator the 401 handler redirects through.
func WithNavigator(n transport.Navigator) Option {
	return func(c *Client) error {
		if n == nil {
			return fmt.Errorf("navigator must not be nil")
		}
		c.nav = n
		return nil
	}
}

// WithRetryPolicy overrides the retry budget for transient network
// failures.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) error {
		if p.MaxRetries < 0 {
			return fmt.Errorf("max retries must be >= 0")
		}
		c.retry = p
		return nil
	}
}

// WithRetry toggles transparent retry entirely.
func WithRetry(enabled bool) Option {
	return func(c *Client) error {
		c.cfg.RetryEnabled = enabled
		return nil
	}
}

// WithMockFallback toggles static-dataset substitution on read failures.
func WithMockFallback(enabled bool) Option {
	return func(c *Client) error {
		c.cfg.UseMockFallback = enabled
		return nil
	}
}

// WithRequestLogging toggles the per-request/response debug log lines.
func WithRequestLogging(enabled bool) Option {
	return func(c *Client) error {
		c.cfg.LogRequests = enabled
		return nil
	}
}

// WithOfflineProbe injects the device connectivity check consulted when
// classifying transport failures.
func WithOfflineProbe(probe func() bool) Option {
	return func(c *Client) error {
		c.offline = probe
		return nil
	}
}

// WithAnalyticsConfig overrides the analytics queue tunables.
func WithAnalyticsConfig(cfg eventqueue.Config) Option {
	return func(c *Client) error {
		c.queueCfg = cfg
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is dumped when enabled. Not for production use.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
