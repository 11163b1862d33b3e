package types

import "errors"

// Sentinel errors surfaced to callers with display-ready messages. The
// booking and registration paths map well-known HTTP statuses onto these
// so the UI can show them verbatim.
var (
	// ErrSlotUnavailable maps HTTP 409 on booking creation.
	ErrSlotUnavailable = errors.New("This time slot is no longer available. Please select a different time.")

	// ErrPaymentFailed maps HTTP 402 on booking creation.
	ErrPaymentFailed = errors.New("Payment failed. Please try again with a different payment method.")

	// ErrEmailExists maps HTTP 409 on registration.
	ErrEmailExists = errors.New("An account with this email already exists.")
)
