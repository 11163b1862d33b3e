package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the client knobs. Environment variables are parsed from the
// QUICKCOURT_ prefix; functional options applied in New override them.
type Config struct {
	// BaseURL of the backend, e.g. https://api.quickcourt.example/api.
	BaseURL string `envconfig:"BASE_URL" default:""`

	// Per-call timeouts. Booking writes get the longer budget because the
	// backend holds a slot reservation while processing them.
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// Transparent retry of transient network failures.
	RetryEnabled   bool          `envconfig:"RETRY_ENABLED" default:"true"`
	MaxRetries     int           `envconfig:"MAX_RETRIES" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"RETRY_BASE_DELAY" default:"1s"`

	// UseMockFallback masks read failures with the static dataset.
	UseMockFallback bool `envconfig:"USE_MOCK_FALLBACK" default:"true"`

	// LogRequests emits a debug line per request and response.
	LogRequests bool `envconfig:"LOG_REQUESTS" default:"false"`

	// LoginPath is the route the 401 handler redirects to.
	LoginPath string `envconfig:"LOGIN_PATH" default:"/login"`
}

// ConfigFromEnv populates Config from QUICKCOURT_-prefixed environment
// variables.
func ConfigFromEnv() (Config, error) {
	var c Config
	return c, envconfig.Process("QUICKCOURT", &c)
}
