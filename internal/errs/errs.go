// Package errs provides error classification for the client SDK.
// Every failed call produces exactly one ClassifiedError; retry and
// fallback policy decisions key off its Kind.
package errs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// Kind buckets a failure for policy decisions (retry, fallback, redirect).
type Kind int

const (
	Unknown Kind = iota
	Offline
	Timeout
	NetworkError
	ServerError
	NotFound
	RateLimited
	AuthError
	ValidationError
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Offline:
		return "Offline"
	case Timeout:
		return "Timeout"
	case NetworkError:
		return "NetworkError"
	case ServerError:
		return "ServerError"
	case NotFound:
		return "NotFound"
	case RateLimited:
		return "RateLimited"
	case AuthError:
		return "AuthError"
	case ValidationError:
		return "ValidationError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Retryable reports whether errors of this kind may be retried or masked
// by fallback data. NotFound, AuthError and ValidationError are terminal.
func (k Kind) Retryable() bool {
	switch k {
	case NotFound, AuthError, ValidationError:
		return false
	default:
		return true
	}
}

// ClassifiedError wraps a failure with categorization metadata.
// It is produced once per failed call and never mutated afterwards.
type ClassifiedError struct {
	Kind       Kind
	Message    string
	Retryable  bool
	HTTPStatus int // 0 for non-HTTP failures
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Kind, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// New builds a ClassifiedError of the given kind.
func New(kind Kind, message string, underlying error) *ClassifiedError {
	return &ClassifiedError{
		Kind:       kind,
		Message:    message,
		Retryable:  kind.Retryable(),
		Underlying: underlying,
	}
}

// ClassifyTransport categorizes a failure that occurred before any HTTP
// status was received. offline reports the device connectivity probe;
// it takes precedence over everything else.
func ClassifyTransport(err error, offline bool) *ClassifiedError {
	if offline {
		return New(Offline, "device is offline", err)
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return New(Timeout, "request timed out", err)
	case isTimeout(err):
		return New(Timeout, "connection timed out", err)
	case isNetwork(err):
		return New(NetworkError, "network error", err)
	default:
		return New(Unknown, err.Error(), err)
	}
}

// ClassifyStatus categorizes an HTTP status. body carries the response
// payload for diagnostics; message, when non-empty, is the server-supplied
// error message extracted from it.
func ClassifyStatus(status int, message string) *ClassifiedError {
	kind := kindForStatus(status)
	if message == "" {
		message = fmt.Sprintf("unexpected status %d", status)
	}
	return &ClassifiedError{
		Kind:       kind,
		Message:    message,
		Retryable:  kind.Retryable(),
		HTTPStatus: status,
		Underlying: fmt.Errorf("http status %d", status),
	}
}

func kindForStatus(status int) Kind {
	switch {
	case status >= 500:
		return ServerError
	case status == 404:
		return NotFound
	case status == 429:
		return RateLimited
	case status == 401:
		return AuthError
	case status == 400:
		return ValidationError
	default:
		return Unknown
	}
}

// KindOf extracts the Kind from err, or Unknown when err is not classified.
func KindOf(err error) Kind {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return Unknown
}

// StatusOf extracts the HTTP status from err, or 0 when unavailable.
func StatusOf(err error) int {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.HTTPStatus
	}
	return 0
}

// IsTransient reports whether err is a transport-level failure the Transport
// may resend: connection timeout, connection refused, or a generic network
// error. HTTP-status failures are never transient at the transport level.
func IsTransient(err error) bool {
	var ce *ClassifiedError
	if !errors.As(err, &ce) {
		return false
	}
	if ce.HTTPStatus != 0 {
		return false
	}
	return ce.Kind == Timeout || ce.Kind == NetworkError
}

// FallbackEligible reports whether a read operation may substitute fallback
// data for err instead of surfacing it.
func FallbackEligible(err error) bool {
	switch KindOf(err) {
	case Offline, Timeout, NetworkError, ServerError:
		return true
	default:
		return false
	}
}

// UserMessage maps err to a message suitable for direct display.
func UserMessage(err error) string {
	switch KindOf(err) {
	case Offline:
		return "You appear to be offline. Please check your internet connection."
	case Timeout:
		return "The request timed out. Please try again."
	case NetworkError:
		return "Unable to reach the server. Please check your connection and try again."
	case ServerError:
		return "Something went wrong on our end. Please try again later."
	case NotFound:
		return "The requested resource could not be found."
	case RateLimited:
		return "Too many requests. Please wait a moment and try again."
	case AuthError:
		return "Your session has expired. Please sign in again."
	case ValidationError:
		return "The request was invalid. Please check your input and try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

func isNetwork(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "network error") ||
		strings.Contains(msg, "no such host")
}
