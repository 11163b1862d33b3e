package client

import (
	"github.com/quickcourt/client-go/internal/errs"
	"github.com/quickcourt/client-go/internal/types"
)

// Sentinel errors with display-ready messages, re-exported so callers
// compare against a single symbol.
var (
	ErrSlotUnavailable = types.ErrSlotUnavailable
	ErrPaymentFailed   = types.ErrPaymentFailed
	ErrEmailExists     = types.ErrEmailExists
)

// ErrorKind is the classification attached to every failed call.
type ErrorKind = errs.Kind

// Classified error kinds.
const (
	KindUnknown         = errs.Unknown
	KindOffline         = errs.Offline
	KindTimeout         = errs.Timeout
	KindNetworkError    = errs.NetworkError
	KindServerError     = errs.ServerError
	KindNotFound        = errs.NotFound
	KindRateLimited     = errs.RateLimited
	KindAuthError       = errs.AuthError
	KindValidationError = errs.ValidationError
)

// KindOf extracts the classification from an error returned by this SDK.
func KindOf(err error) ErrorKind { return errs.KindOf(err) }

// IsRetryable reports whether the failure is of a kind that may succeed on
// a later attempt.
func IsRetryable(err error) bool { return errs.KindOf(err).Retryable() }

// UserMessage maps an error to a message suitable for direct display.
func UserMessage(err error) string { return errs.UserMessage(err) }
