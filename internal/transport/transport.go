// Package transport executes HTTP calls against the QuickCourt backend.
//
// It owns the cross-cutting policies of the SDK: an explicit middleware
// pipeline for outgoing requests, classification of every failure, bounded
// retry with linear backoff for transient network errors, and the 401
// session-clear/redirect rule.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/quickcourt/client-go/internal/errs"
	"github.com/quickcourt/client-go/internal/session"
)

// Default per-call timeouts. Reads are short; booking writes get longer
// because the backend holds a slot reservation while it processes them.
const (
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// RetryPolicy bounds transparent resends of a single logical call.
// It is immutable; per-call retry state lives in the Send loop, never on
// the request object.
type RetryPolicy struct {
	MaxRetries int           // resends after the initial attempt
	BaseDelay  time.Duration // wait before retry n is BaseDelay * n
}

// DefaultRetryPolicy matches the documented client defaults.
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: time.Second}

// Request describes one call. Owned by the caller; the Transport never
// mutates it.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Operation string // for logging and metrics

	// Timeout overrides the method-based default when > 0.
	Timeout time.Duration
	// Retries overrides the policy's MaxRetries when non-nil. A zero
	// value disables resends for this call.
	Retries *int
}

// Response is a successful raw result.
type Response struct {
	StatusCode int
	Body       []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// RequestContext is per-call metadata threaded through the middleware
// pipeline. Discarded once response handling completes.
type RequestContext struct {
	ID        string
	Operation string
	StartTime time.Time
	Attempt   int
}

// RequestMiddleware mutates an outgoing request before it is sent.
// Returning an error aborts the call; that path is never retried.
type RequestMiddleware func(*http.Request, *RequestContext) error

// Options configures a Transport.
type Options struct {
	BaseURL      string
	HTTPClient   *http.Client
	Session      session.Store
	Navigator    Navigator
	Retry        RetryPolicy
	RetryEnabled bool
	LogRequests  bool
	LoginPath    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Offline is the device connectivity probe consulted when classifying
	// transport failures. Nil means "always online".
	Offline func() bool
}

// Transport issues requests through the middleware pipeline and applies
// the retry, auth and classification policies uniformly.
type Transport struct {
	baseURL      string
	http         *http.Client
	session      session.Store
	nav          Navigator
	retry        RetryPolicy
	retryEnabled bool
	logRequests  bool
	loginPath    string
	readTimeout  time.Duration
	writeTimeout time.Duration
	offline      func() bool

	reqMW []RequestMiddleware
}

// New constructs a Transport, composing the default middleware pipeline:
// session headers, request ID, optional request log.
func New(o Options) *Transport {
	t := &Transport{
		baseURL:      strings.TrimRight(o.BaseURL, "/"),
		http:         o.HTTPClient,
		session:      o.Session,
		nav:          o.Navigator,
		retry:        o.Retry,
		retryEnabled: o.RetryEnabled,
		logRequests:  o.LogRequests,
		loginPath:    o.LoginPath,
		readTimeout:  o.ReadTimeout,
		writeTimeout: o.WriteTimeout,
		offline:      o.Offline,
	}
	if t.http == nil {
		t.http = &http.Client{}
	}
	if t.session == nil {
		t.session = session.NewMemoryStore()
	}
	if t.nav == nil {
		t.nav = NewPathRecorder("/")
	}
	if t.retry.MaxRetries <= 0 {
		t.retry.MaxRetries = DefaultRetryPolicy.MaxRetries
	}
	if t.retry.BaseDelay <= 0 {
		t.retry.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	if t.loginPath == "" {
		t.loginPath = "/login"
	}
	if t.readTimeout <= 0 {
		t.readTimeout = DefaultReadTimeout
	}
	if t.writeTimeout <= 0 {
		t.writeTimeout = DefaultWriteTimeout
	}
	if t.offline == nil {
		t.offline = func() bool { return false }
	}
	t.reqMW = []RequestMiddleware{t.sessionHeaders, t.requestID, t.logRequest}
	return t
}

// Session exposes the injected store for the owning client.
func (t *Transport) Session() session.Store { return t.session }

// Navigator exposes the injected navigator for the owning client.
func (t *Transport) Navigator() Navigator { return t.nav }

// Send executes the request, transparently resending transient network
// failures up to the retry budget with linear backoff. The outcome of the
// final attempt fully replaces earlier failures.
func (t *Transport) Send(ctx context.Context, r *Request) (*Response, error) {
	rc := &RequestContext{
		ID:        uuid.NewString(),
		Operation: r.Operation,
		StartTime: time.Now(),
	}

	maxRetries := 0
	if t.retryEnabled {
		maxRetries = t.retry.MaxRetries
		if r.Retries != nil {
			maxRetries = *r.Retries
		}
	}

	for attempt := 0; ; attempt++ {
		rc.Attempt = attempt + 1
		resp, cerr := t.roundTrip(ctx, r, rc)
		if cerr == nil {
			return resp, nil
		}
		if attempt >= maxRetries || !errs.IsTransient(cerr) {
			return nil, cerr
		}

		delay := t.retry.BaseDelay * time.Duration(attempt+1)
		retriesTotal.WithLabelValues(r.Operation).Inc()
		log.Warn().
			Str("operation", r.Operation).
			Str("request_id", rc.ID).
			Int("attempt", rc.Attempt).
			Dur("backoff", delay).
			Err(cerr).
			Msg("transient network error, retrying")

		select {
		case <-ctx.Done():
			return nil, errs.ClassifyTransport(ctx.Err(), t.offline())
		case <-time.After(delay):
		}
	}
}

// roundTrip performs a single attempt: build, run middleware, execute,
// classify.
func (t *Transport) roundTrip(ctx context.Context, r *Request, rc *RequestContext) (*Response, *errs.ClassifiedError) {
	var bodyReader io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, errs.New(errs.Unknown, fmt.Sprintf("encode request body: %v", err), err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	cctx, cancel := context.WithTimeout(ctx, t.timeoutFor(r))
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, r.Method, t.urlFor(r), bodyReader)
	if err != nil {
		return nil, errs.New(errs.Unknown, fmt.Sprintf("build request: %v", err), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for _, mw := range t.reqMW {
		if err := mw(req, rc); err != nil {
			// Context construction failures abort the call unretried.
			return nil, errs.New(errs.Unknown, fmt.Sprintf("request middleware: %v", err), err)
		}
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return nil, errs.ClassifyTransport(err, t.offline())
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.ClassifyTransport(err, t.offline())
	}

	if resp.StatusCode < 400 {
		latency := time.Since(rc.StartTime)
		requestLatency.WithLabelValues(r.Operation).Observe(latency.Seconds())
		if t.logRequests {
			log.Debug().
				Str("operation", r.Operation).
				Str("method", r.Method).
				Str("path", r.Path).
				Int("status", resp.StatusCode).
				Dur("latency", latency).
				Msg("api response")
		}
		return &Response{StatusCode: resp.StatusCode, Body: data}, nil
	}

	return nil, t.failStatus(r, rc, resp.StatusCode, data)
}

// failStatus classifies an HTTP error status and applies the 401 and 429
// interceptor rules before handing the error back.
func (t *Transport) failStatus(r *Request, rc *RequestContext, status int, body []byte) *errs.ClassifiedError {
	ce := errs.ClassifyStatus(status, serverMessage(body))

	switch status {
	case http.StatusUnauthorized:
		t.handleUnauthorized()
	case http.StatusTooManyRequests:
		log.Warn().
			Str("operation", r.Operation).
			Str("request_id", rc.ID).
			Msg("rate limited by backend")
	}

	requestFailures.WithLabelValues(r.Operation, ce.Kind.String()).Inc()
	return ce
}

// handleUnauthorized clears the session and redirects to the login route,
// carrying the interrupted path. No redirect when already on the login
// route, so an expired session on the login page cannot loop.
func (t *Transport) handleUnauthorized() {
	t.session.Clear()
	cur := t.nav.CurrentPath()
	if cur == t.loginPath {
		return
	}
	t.nav.NavigateTo(t.loginPath + "?redirect=" + url.QueryEscape(cur))
	log.Info().Str("from", cur).Msg("session expired, redirecting to login")
}

func (t *Transport) timeoutFor(r *Request) time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return t.readTimeout
	}
	return t.writeTimeout
}

func (t *Transport) urlFor(r *Request) string {
	u := t.baseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// ------------------------------
// Default request middleware
// ------------------------------

// sessionHeaders attaches Authorization and X-User-ID from the session
// store. An empty session is not an error; the request goes out
// unauthenticated.
func (t *Transport) sessionHeaders(req *http.Request, _ *RequestContext) error {
	s := t.session.Snapshot()
	if s.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AuthToken)
	}
	if s.UserID != "" {
		req.Header.Set("X-User-ID", s.UserID)
	}
	return nil
}

func (t *Transport) requestID(req *http.Request, rc *RequestContext) error {
	req.Header.Set("X-Request-ID", rc.ID)
	return nil
}

// logRequest emits the outgoing-request line. Logging never alters request
// semantics; it only reads.
func (t *Transport) logRequest(req *http.Request, rc *RequestContext) error {
	if !t.logRequests {
		return nil
	}
	log.Debug().
		Str("operation", rc.Operation).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", rc.ID).
		Int("attempt", rc.Attempt).
		Msg("api request")
	return nil
}

// serverMessage pulls the error message out of a JSON error body, trying
// the field names the backend is known to use.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Error != "":
		return payload.Error
	default:
		return payload.Detail
	}
}
