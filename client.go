// Package client is the Go SDK for the QuickCourt sports-venue booking
// backend.
//
// A Client composes a Transport (request pipeline, retry, error
// classification), a session store, a static fallback dataset for read
// operations, and a background queue for fire-and-forget analytics.
package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/quickcourt/client-go/internal/api"
	"github.com/quickcourt/client-go/internal/errs"
	"github.com/quickcourt/client-go/internal/eventqueue"
	"github.com/quickcourt/client-go/internal/fallback"
	"github.com/quickcourt/client-go/internal/session"
	"github.com/quickcourt/client-go/internal/transport"
)

// Client is the QuickCourt API client. Construct with New; all methods are
// safe for concurrent use.
type Client struct {
	cfg   Config
	http  *http.Client
	store session.Store
	nav   transport.Navigator

	retry   transport.RetryPolicy
	offline func() bool

	transport *transport.Transport
	queue     *eventqueue.Dispatcher
	queueCfg  eventqueue.Config

	closedOnce uint32
}

// New constructs a Client for the given base URL. Configuration is read
// from the environment first, then overridden by options.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.BaseURL = baseURL

	queueCfg, err := eventqueue.LoadConfig()
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:      cfg,
		http:     &http.Client{},
		store:    session.NewMemoryStore(),
		nav:      transport.NewPathRecorder("/"),
		retry:    transport.RetryPolicy{MaxRetries: cfg.MaxRetries, BaseDelay: cfg.RetryBaseDelay},
		queueCfg: queueCfg,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.transport = transport.New(transport.Options{
		BaseURL:      c.cfg.BaseURL,
		HTTPClient:   c.http,
		Session:      c.store,
		Navigator:    c.nav,
		Retry:        c.retry,
		RetryEnabled: c.cfg.RetryEnabled,
		LogRequests:  c.cfg.LogRequests,
		LoginPath:    c.cfg.LoginPath,
		ReadTimeout:  c.cfg.ReadTimeout,
		WriteTimeout: c.cfg.WriteTimeout,
		Offline:      c.offline,
	})

	c.queue = eventqueue.New(c.queueCfg, func(ctx context.Context, ev SearchEvent) error {
		return api.SendSearchEvent(ctx, c.transport, ev)
	})

	return c, nil
}

// Close drains and stops the analytics queue. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.queue != nil {
		c.queue.Stop()
	}
	return nil
}

// --------------------------------------------------------------------
// Session
// --------------------------------------------------------------------

// SetSession installs session state, e.g. after a login handled outside
// this SDK.
func (c *Client) SetSession(s Session) { c.store.Set(s) }

// Session returns a snapshot of the current session.
func (c *Client) Session() Session { return c.store.Snapshot() }

// Logout clears the session. Requests sent afterwards are unauthenticated.
func (c *Client) Logout() { c.store.Clear() }

// --------------------------------------------------------------------
// Venue operations
// --------------------------------------------------------------------

// FetchVenues searches venues. When the backend is unreachable or failing
// and mock fallback is enabled, the static dataset is filtered with the
// same semantics and returned with IsOfflineData set.
func (c *Client) FetchVenues(ctx context.Context, f VenueFilters) (*VenueList, error) {
	out, err := api.FetchVenues(ctx, c.transport, f)
	if err == nil {
		return out, nil
	}
	if c.fallbackAllowed(err) {
		fallbackServed.WithLabelValues("fetch_venues").Inc()
		return fallback.Venues(f), nil
	}
	return nil, err
}

// FetchVenueDetails retrieves one venue, consulting the static dataset by
// id before raising when the live call cannot succeed.
func (c *Client) FetchVenueDetails(ctx context.Context, id string) (*Venue, error) {
	v, err := api.FetchVenueDetails(ctx, c.transport, id)
	if err == nil {
		return v, nil
	}
	if c.fallbackAllowed(err) {
		if fv, ok := fallback.VenueByID(id); ok {
			fallbackServed.WithLabelValues("fetch_venue_details").Inc()
			return fv, nil
		}
	}
	return nil, err
}

// SportsCategories lists sport category strings.
func (c *Client) SportsCategories(ctx context.Context) ([]string, error) {
	cats, err := api.SportsCategories(ctx, c.transport)
	if err == nil {
		return cats, nil
	}
	if c.fallbackAllowed(err) {
		fallbackServed.WithLabelValues("sports_categories").Inc()
		return fallback.SportsCategories(), nil
	}
	return nil, err
}

// PopularLocations lists locations ranked by venue count.
func (c *Client) PopularLocations(ctx context.Context) ([]LocationCount, error) {
	locs, err := api.PopularLocations(ctx, c.transport)
	if err == nil {
		return locs, nil
	}
	if c.fallbackAllowed(err) {
		fallbackServed.WithLabelValues("popular_locations").Inc()
		return fallback.PopularLocations(), nil
	}
	return nil, err
}

// --------------------------------------------------------------------
// Booking operations
// --------------------------------------------------------------------

// CreateBooking creates a booking via the legacy path. Mutating: failures
// always surface.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingAck, error) {
	return api.CreateBooking(ctx, c.transport, req)
}

// CreateNewBooking creates a booking via the current path. HTTP 409 maps
// to ErrSlotUnavailable, 402 to ErrPaymentFailed. Mutating: no fallback.
func (c *Client) CreateNewBooking(ctx context.Context, req NewBookingRequest) (*BookingAck, error) {
	return api.CreateNewBooking(ctx, c.transport, req)
}

// ReadBookings lists bookings, substituting the static dataset on
// transient backend failure when mock fallback is enabled.
func (c *Client) ReadBookings(ctx context.Context, f BookingFilters) (*BookingList, error) {
	out, err := api.ReadBookings(ctx, c.transport, f)
	if err == nil {
		return out, nil
	}
	if c.fallbackAllowed(err) {
		fallbackServed.WithLabelValues("read_bookings").Inc()
		return fallback.Bookings(f), nil
	}
	return nil, err
}

// GetBooking retrieves one booking, consulting the static dataset by id
// before raising.
func (c *Client) GetBooking(ctx context.Context, id string) (*Booking, error) {
	b, err := api.GetBooking(ctx, c.transport, id)
	if err == nil {
		return b, nil
	}
	if c.fallbackAllowed(err) {
		if fb, ok := fallback.BookingByID(id); ok {
			fallbackServed.WithLabelValues("get_booking").Inc()
			return fb, nil
		}
	}
	return nil, err
}

// UpdateBookingStatus changes a booking's status. Mutating: no fallback.
func (c *Client) UpdateBookingStatus(ctx context.Context, id, status, reason string) (*Booking, error) {
	return api.UpdateBookingStatus(ctx, c.transport, id, status, reason)
}

// --------------------------------------------------------------------
// User operations
// --------------------------------------------------------------------

// RegisterUser creates an account and persists the returned session.
// HTTP 409 maps to ErrEmailExists.
func (c *Client) RegisterUser(ctx context.Context, req RegisterUserRequest) (*AuthResult, error) {
	res, err := api.RegisterUser(ctx, c.transport, req)
	if err != nil {
		return nil, err
	}
	c.persistAuth(res)
	return res, nil
}

// VerifyOTP confirms a registration one-time password and refreshes the
// persisted session.
func (c *Client) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthResult, error) {
	res, err := api.VerifyOTP(ctx, c.transport, req)
	if err != nil {
		return nil, err
	}
	c.persistAuth(res)
	return res, nil
}

func (c *Client) persistAuth(res *AuthResult) {
	if res.AccessToken == "" {
		return
	}
	c.store.Set(Session{
		AuthToken: res.AccessToken,
		UserID:    res.UserID,
		UserRole:  res.Role,
		UserEmail: res.Email,
	})
}

// --------------------------------------------------------------------
// Analytics and health
// --------------------------------------------------------------------

// TrackSearch records a search event in the background. Fire-and-forget:
// enqueue failures and delivery failures never reach the caller.
func (c *Client) TrackSearch(ctx context.Context, ev SearchEvent) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	key := ev.UserID
	if key == "" {
		key = "anonymous"
	}
	if err := c.queue.Submit(ctx, key, ev); err != nil {
		// Dropped analytics are acceptable; the queue already counted it.
		_ = err
	}
}

// FlushAnalytics blocks until previously tracked events for the given user
// key have been handled. Intended for shutdown paths and tests.
func (c *Client) FlushAnalytics(ctx context.Context, userKey string) error {
	if userKey == "" {
		userKey = "anonymous"
	}
	return c.queue.Flush(ctx, userKey)
}

// Health probes the backend.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	return api.Health(ctx, c.transport)
}

// fallbackAllowed applies the read-path masking rule: fallback only after
// the transport's retry budget is exhausted, only for offline/timeout/
// network/server failures, and only when enabled.
func (c *Client) fallbackAllowed(err error) bool {
	return c.cfg.UseMockFallback && errs.FallbackEligible(err)
}
