package types

// ------------------------------
// Normalized response objects
// ------------------------------

// VenueList is the canonical venue search result. IsOfflineData marks
// results served from the static fallback dataset instead of the backend.
type VenueList struct {
	Venues        []Venue `json:"venues"`
	TotalCount    int     `json:"totalCount"`
	CurrentPage   int     `json:"currentPage"`
	TotalPages    int     `json:"totalPages"`
	HasNextPage   bool    `json:"hasNextPage"`
	IsOfflineData bool    `json:"isOfflineData,omitempty"`
}

// BookingList is the canonical booking listing result.
type BookingList struct {
	Bookings      []Booking `json:"bookings"`
	TotalCount    int       `json:"totalCount"`
	CurrentPage   int       `json:"currentPage"`
	TotalPages    int       `json:"totalPages"`
	HasNextPage   bool      `json:"hasNextPage"`
	IsOfflineData bool      `json:"isOfflineData,omitempty"`
}

// BookingAck is the backend's acknowledgement of a created booking.
type BookingAck struct {
	BookingID          string `json:"bookingId"`
	ConfirmationNumber string `json:"confirmationNumber"`
	Status             string `json:"status"`
}

// AuthResult is the session material returned by registration and OTP
// verification. The client persists it into the session store.
type AuthResult struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	Email       string `json:"email"`
}
