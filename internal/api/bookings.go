package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/quickcourt/client-go/internal/errs"
	"github.com/quickcourt/client-go/internal/transport"
	"github.com/quickcourt/client-go/internal/types"
)

// CreateBooking creates a booking via the legacy POST /bookings path.
// Kept for backends that have not migrated to /newbooking yet.
func CreateBooking(ctx context.Context, t *transport.Transport, req types.CreateBookingRequest) (*types.BookingAck, error) {
	return createBooking(ctx, t, "/bookings", "create_booking", req)
}

// CreateNewBooking creates a booking via the current POST /newbooking path.
func CreateNewBooking(ctx context.Context, t *transport.Transport, req types.NewBookingRequest) (*types.BookingAck, error) {
	return createBooking(ctx, t, "/newbooking", "create_new_booking", req)
}

func createBooking(ctx context.Context, t *transport.Transport, path, op string, req types.CreateBookingRequest) (*types.BookingAck, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodPost,
		Path:      path,
		Body:      req,
		Operation: op,
	})
	if err != nil {
		switch errs.StatusOf(err) {
		case http.StatusConflict:
			return nil, types.ErrSlotUnavailable
		case http.StatusPaymentRequired:
			return nil, types.ErrPaymentFailed
		}
		return nil, err
	}
	var w bookingAckWire
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	return w.normalize(), nil
}

// ReadBookings lists bookings matching the filters.
func ReadBookings(ctx context.Context, t *transport.Transport, f types.BookingFilters) (*types.BookingList, error) {
	q := url.Values{}
	setStr(q, "user_id", f.UserID)
	setStr(q, "user_role", f.UserRole)
	setStr(q, "facility_owner_id", f.FacilityOwnerID)
	if f.DateFrom != nil {
		q.Set("date_from", f.DateFrom.Format(time.RFC3339))
	}
	if f.DateTo != nil {
		q.Set("date_to", f.DateTo.Format(time.RFC3339))
	}
	setStr(q, "status", f.Status)
	setList(q, "sport_types", f.SportTypes)
	setList(q, "venue_ids", f.VenueIDs)
	setStr(q, "search", f.Search)
	setStr(q, "sort_by", f.SortBy)
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.IncludeCustomer {
		q.Set("include_customer", "true")
	}
	if f.IncludeVenue {
		q.Set("include_venue", "true")
	}
	if f.IncludePayment {
		q.Set("include_payment", "true")
	}

	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodGet,
		Path:      "/readbookings",
		Query:     q,
		Operation: "read_bookings",
	})
	if err != nil {
		return nil, err
	}
	var w bookingListWire
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	return w.normalize(), nil
}

// GetBooking retrieves a single booking.
func GetBooking(ctx context.Context, t *transport.Transport, id string) (*types.Booking, error) {
	if err := types.ValidateIDPresent(id, "bookingId"); err != nil {
		return nil, err
	}
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodGet,
		Path:      "/readbookings/" + url.PathEscape(id),
		Operation: "get_booking",
	})
	if err != nil {
		return nil, err
	}
	var w bookingWire
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	b := w.normalize()
	return &b, nil
}

// UpdateBookingStatus changes a booking's status. Mutating path: failures
// always surface, never masked by fallback data.
func UpdateBookingStatus(ctx context.Context, t *transport.Transport, id, status, reason string) (*types.Booking, error) {
	if err := types.ValidateIDPresent(id, "bookingId"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(status, "status"); err != nil {
		return nil, err
	}
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodPut,
		Path:      "/readbookings/" + url.PathEscape(id) + "/status",
		Body:      types.UpdateBookingStatusRequest{Status: status, Reason: reason},
		Operation: "update_booking_status",
	})
	if err != nil {
		return nil, err
	}
	var w bookingWire
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	b := w.normalize()
	return &b, nil
}
