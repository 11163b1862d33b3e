package client

import (
	"testing"
	"time"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("read timeout = %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("write timeout = %v", cfg.WriteTimeout)
	}
	if !cfg.RetryEnabled || cfg.MaxRetries != 3 || cfg.RetryBaseDelay != time.Second {
		t.Fatalf("retry defaults = %+v", cfg)
	}
	if !cfg.UseMockFallback {
		t.Fatal("mock fallback should default on")
	}
	if cfg.LoginPath != "/login" {
		t.Fatalf("login path = %q", cfg.LoginPath)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUICKCOURT_MAX_RETRIES", "5")
	t.Setenv("QUICKCOURT_RETRY_BASE_DELAY", "250ms")
	t.Setenv("QUICKCOURT_USE_MOCK_FALLBACK", "false")
	t.Setenv("QUICKCOURT_LOGIN_PATH", "/auth/login")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.MaxRetries != 5 || cfg.RetryBaseDelay != 250*time.Millisecond {
		t.Fatalf("retry overrides = %+v", cfg)
	}
	if cfg.UseMockFallback {
		t.Fatal("mock fallback override ignored")
	}
	if cfg.LoginPath != "/auth/login" {
		t.Fatalf("login path = %q", cfg.LoginPath)
	}
}

func TestOptionValidation(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"nil http client", WithHTTPClient(nil)},
		{"non-positive timeout", WithHTTPTimeout(0)},
		{"nil session store", WithSessionStore(nil)},
		{"nil navigator", WithNavigator(nil)},
		{"negative retries", WithRetryPolicy(RetryPolicy{MaxRetries: -1})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New("http://localhost:1", tc.opt); err == nil {
				t.Fatal("expected option validation error")
			}
		})
	}
}

func TestWithConfig_KeepsBaseURL(t *testing.T) {
	c, err := New("http://localhost:1", WithConfig(Config{
		ReadTimeout:    time.Second,
		WriteTimeout:   2 * time.Second,
		MaxRetries:     1,
		RetryBaseDelay: 10 * time.Millisecond,
		LoginPath:      "/login",
	}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer func() { _ = c.Close() }()
	if c.cfg.BaseURL != "http://localhost:1" {
		t.Fatalf("base url = %q", c.cfg.BaseURL)
	}
	if c.retry.MaxRetries != 1 || c.retry.BaseDelay != 10*time.Millisecond {
		t.Fatalf("retry policy = %+v", c.retry)
	}
}
