package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ------------------------------
// Core domain entities
// ------------------------------

// PriceRange is the per-hour price band across a venue's courts.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Court is a single bookable court within a venue.
type Court struct {
	ID           string          `json:"courtId"`
	VenueID      string          `json:"venueId"`
	Name         string          `json:"name"`
	Sport        string          `json:"sport"`
	PricePerHour decimal.Decimal `json:"pricePerHour"`
}

// Venue is a bookable sports facility with one or more courts.
type Venue struct {
	ID            string          `json:"venueId"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Location      string          `json:"location"`
	Address       string          `json:"address,omitempty"`
	Sports        []string        `json:"sports"`
	VenueType     string          `json:"venueType"` // indoor | outdoor | mixed
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	StartingPrice decimal.Decimal `json:"startingPrice"`
	PriceRange    PriceRange      `json:"priceRange"`
	Amenities     []string        `json:"amenities,omitempty"`
	Photos        []string        `json:"photos,omitempty"`
	Courts        []Court         `json:"courts,omitempty"`
	Latitude      float64         `json:"latitude,omitempty"`
	Longitude     float64         `json:"longitude,omitempty"`
}

// CustomerInfo is the contact block attached to a booking.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Booking statuses used by the backend.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is a reservation of a specific court/time-slot by a customer.
type Booking struct {
	ID                 string          `json:"bookingId"`
	ConfirmationNumber string          `json:"confirmationNumber,omitempty"`
	VenueID            string          `json:"venueId"`
	VenueName          string          `json:"venueName,omitempty"`
	CourtID            string          `json:"courtId"`
	CourtName          string          `json:"courtName,omitempty"`
	UserID             string          `json:"userId"`
	Sport              string          `json:"sport,omitempty"`
	StartTime          time.Time       `json:"startTime"`
	EndTime            time.Time       `json:"endTime"`
	DurationMinutes    int             `json:"durationMinutes,omitempty"`
	Status             string          `json:"status"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Currency           string          `json:"currency,omitempty"`
	PaymentMethod      string          `json:"paymentMethod,omitempty"`
	PaymentStatus      string          `json:"paymentStatus,omitempty"`
	SpecialRequests    string          `json:"specialRequests,omitempty"`
	Customer           *CustomerInfo   `json:"customer,omitempty"`
	Venue              *Venue          `json:"venue,omitempty"`
	CreatedAt          time.Time       `json:"createdAt,omitempty"`
}

// LocationCount is one entry of the popular-locations listing.
type LocationCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HealthStatus is the backend health probe response.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// SearchEvent is a fire-and-forget analytics record describing one search.
type SearchEvent struct {
	Query       string    `json:"query"`
	Location    string    `json:"location,omitempty"`
	SportTypes  []string  `json:"sportTypes,omitempty"`
	ResultCount int       `json:"resultCount"`
	UserID      string    `json:"userId,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}
