package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ------------------------------
// Filter / request parameter objects
// ------------------------------

// Venue list sort keys accepted by the backend.
const (
	SortByRating    = "rating"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
	SortByDistance  = "distance"
	SortByName      = "name"
)

// VenueFilters describes a venue search. Zero values mean "no constraint".
type VenueFilters struct {
	Search      string
	Location    string
	SportTypes  []string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	VenueTypes  []string
	MinRating   float64
	MaxDistance float64
	SortBy      string
	Page        int
	Limit       int
	UserLat     *float64
	UserLng     *float64
}

// BookingFilters describes a booking listing query.
type BookingFilters struct {
	UserID          string
	UserRole        string
	FacilityOwnerID string
	DateFrom        *time.Time
	DateTo          *time.Time
	Status          string
	SportTypes      []string
	VenueIDs        []string
	Search          string
	SortBy          string
	Page            int
	Limit           int
	IncludeCustomer bool
	IncludeVenue    bool
	IncludePayment  bool
}

// CreateBookingRequest is the legacy POST /bookings payload.
type CreateBookingRequest struct {
	VenueID         string          `json:"venue_id"`
	CourtID         string          `json:"court_id"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	DurationMinutes int             `json:"duration_minutes"`
	Customer        CustomerInfo    `json:"customer"`
	PaymentMethod   string          `json:"payment_method"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	SpecialRequests string          `json:"special_requests,omitempty"`
}

// NewBookingRequest is the current POST /newbooking payload. Shape matches
// CreateBookingRequest today; the paths diverge server-side.
type NewBookingRequest = CreateBookingRequest

// RegisterUserRequest is the POST /userregister payload.
type RegisterUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

// VerifyOTPRequest is the POST /userregister/verify-otp payload.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// UpdateBookingStatusRequest is the PUT /readbookings/{id}/status payload.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
