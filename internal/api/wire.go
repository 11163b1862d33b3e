package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quickcourt/client-go/internal/types"
)

// Wire structs mirror the backend's snake_case payloads. Normalization
// into the canonical types happens here and nowhere else.

type priceRangeWire struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

type courtWire struct {
	ID           string          `json:"court_id"`
	VenueID      string          `json:"venue_id"`
	Name         string          `json:"name"`
	Sport        string          `json:"sport"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
}

type venueWire struct {
	ID            string          `json:"venue_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	Address       string          `json:"address"`
	Sports        []string        `json:"sports"`
	VenueType     string          `json:"venue_type"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	PriceRange    *priceRangeWire `json:"price_range"`
	Amenities     []string        `json:"amenities"`
	Photos        []string        `json:"photos"`
	Courts        []courtWire     `json:"courts"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
}

func (w venueWire) normalize() types.Venue {
	v := types.Venue{
		ID:            w.ID,
		Name:          w.Name,
		Description:   w.Description,
		Location:      w.Location,
		Address:       w.Address,
		Sports:        w.Sports,
		VenueType:     w.VenueType,
		Rating:        w.Rating,
		ReviewCount:   w.ReviewCount,
		StartingPrice: w.StartingPrice,
		Amenities:     w.Amenities,
		Photos:        w.Photos,
		Latitude:      w.Latitude,
		Longitude:     w.Longitude,
	}
	if w.PriceRange != nil {
		v.PriceRange = types.PriceRange{Min: w.PriceRange.Min, Max: w.PriceRange.Max}
	} else {
		// Backend omits the range for single-court venues; default both
		// bounds to the starting price so filters keep working.
		v.PriceRange = types.PriceRange{Min: w.StartingPrice, Max: w.StartingPrice}
	}
	for _, c := range w.Courts {
		v.Courts = append(v.Courts, types.Court{
			ID:           c.ID,
			VenueID:      c.VenueID,
			Name:         c.Name,
			Sport:        c.Sport,
			PricePerHour: c.PricePerHour,
		})
	}
	return v
}

type venueListWire struct {
	Venues      []venueWire `json:"venues"`
	TotalCount  int         `json:"total_count"`
	CurrentPage int         `json:"current_page"`
	TotalPages  int         `json:"total_pages"`
	HasNextPage bool        `json:"has_next_page"`
}

func (w venueListWire) normalize() *types.VenueList {
	out := &types.VenueList{
		Venues:      make([]types.Venue, 0, len(w.Venues)),
		TotalCount:  w.TotalCount,
		CurrentPage: w.CurrentPage,
		TotalPages:  w.TotalPages,
		HasNextPage: w.HasNextPage,
	}
	for _, v := range w.Venues {
		out.Venues = append(out.Venues, v.normalize())
	}
	if out.CurrentPage == 0 {
		out.CurrentPage = 1
	}
	return out
}

type customerWire struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type bookingWire struct {
	ID                 string          `json:"booking_id"`
	ConfirmationNumber string          `json:"confirmation_number"`
	VenueID            string          `json:"venue_id"`
	VenueName          string          `json:"venue_name"`
	CourtID            string          `json:"court_id"`
	CourtName          string          `json:"court_name"`
	UserID             string          `json:"user_id"`
	Sport              string          `json:"sport"`
	StartTime          time.Time       `json:"start_time"`
	EndTime            time.Time       `json:"end_time"`
	DurationMinutes    int             `json:"duration_minutes"`
	Status             string          `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	Currency           string          `json:"currency"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentStatus      string          `json:"payment_status"`
	SpecialRequests    string          `json:"special_requests"`
	Customer           *customerWire   `json:"customer"`
	Venue              *venueWire      `json:"venue"`
	CreatedAt          time.Time       `json:"created_at"`
}

func (w bookingWire) normalize() types.Booking {
	b := types.Booking{
		ID:                 w.ID,
		ConfirmationNumber: w.ConfirmationNumber,
		VenueID:            w.VenueID,
		VenueName:          w.VenueName,
		CourtID:            w.CourtID,
		CourtName:          w.CourtName,
		UserID:             w.UserID,
		Sport:              w.Sport,
		StartTime:          w.StartTime,
		EndTime:            w.EndTime,
		DurationMinutes:    w.DurationMinutes,
		Status:             w.Status,
		TotalAmount:        w.TotalAmount,
		Currency:           w.Currency,
		PaymentMethod:      w.PaymentMethod,
		PaymentStatus:      w.PaymentStatus,
		SpecialRequests:    w.SpecialRequests,
		CreatedAt:          w.CreatedAt,
	}
	if w.Customer != nil {
		b.Customer = &types.CustomerInfo{Name: w.Customer.Name, Email: w.Customer.Email, Phone: w.Customer.Phone}
	}
	if w.Venue != nil {
		v := w.Venue.normalize()
		b.Venue = &v
	}
	return b
}

type bookingListWire struct {
	Bookings    []bookingWire `json:"bookings"`
	TotalCount  int           `json:"total_count"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
	HasNextPage bool          `json:"has_next_page"`
}

func (w bookingListWire) normalize() *types.BookingList {
	out := &types.BookingList{
		Bookings:    make([]types.Booking, 0, len(w.Bookings)),
		TotalCount:  w.TotalCount,
		CurrentPage: w.CurrentPage,
		TotalPages:  w.TotalPages,
		HasNextPage: w.HasNextPage,
	}
	for _, b := range w.Bookings {
		out.Bookings = append(out.Bookings, b.normalize())
	}
	if out.CurrentPage == 0 {
		out.CurrentPage = 1
	}
	return out
}

type bookingAckWire struct {
	BookingID          string `json:"booking_id"`
	ConfirmationNumber string `json:"confirmation_number"`
	Status             string `json:"status"`
}

func (w bookingAckWire) normalize() *types.BookingAck {
	return &types.BookingAck{
		BookingID:          w.BookingID,
		ConfirmationNumber: w.ConfirmationNumber,
		Status:             w.Status,
	}
}

type authResultWire struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	Email       string `json:"email"`
}

func (w authResultWire) normalize() *types.AuthResult {
	return &types.AuthResult{
		AccessToken: w.AccessToken,
		UserID:      w.UserID,
		Role:        w.Role,
		Email:       w.Email,
	}
}
