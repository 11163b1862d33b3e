// Package fallback serves substitute results from a static dataset when the
// live backend is unreachable or failing. Results carry the same shape as a
// live response, tagged IsOfflineData so callers can surface a notice.
package fallback

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quickcourt/client-go/internal/types"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ts(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// venueDataset is read-only; every provider call returns fresh copies.
var venueDataset = []types.Venue{
	{
		ID: "venue-001", Name: "Ace Tennis Club", Location: "Koramangala, Bengaluru",
		Address: "14 80 Feet Rd, Koramangala", Sports: []string{"Tennis"},
		VenueType: "outdoor", Rating: 4.7, ReviewCount: 212,
		StartingPrice: d(600), PriceRange: types.PriceRange{Min: d(600), Max: d(900)},
		Amenities: []string{"Parking", "Locker Room", "Floodlights"},
		Courts: []types.Court{
			{ID: "court-001a", VenueID: "venue-001", Name: "Court 1", Sport: "Tennis", PricePerHour: d(600)},
			{ID: "court-001b", VenueID: "venue-001", Name: "Court 2 (Clay)", Sport: "Tennis", PricePerHour: d(900)},
		},
		Latitude: 12.9352, Longitude: 77.6245,
	},
	{
		ID: "venue-002", Name: "Smash Badminton Arena", Location: "Indiranagar, Bengaluru",
		Address: "221 CMH Rd, Indiranagar", Sports: []string{"Badminton"},
		VenueType: "indoor", Rating: 4.5, ReviewCount: 340,
		StartingPrice: d(350), PriceRange: types.PriceRange{Min: d(350), Max: d(500)},
		Amenities: []string{"Parking", "Cafeteria", "Air Conditioning"},
		Courts: []types.Court{
			{ID: "court-002a", VenueID: "venue-002", Name: "Court A", Sport: "Badminton", PricePerHour: d(350)},
			{ID: "court-002b", VenueID: "venue-002", Name: "Court B", Sport: "Badminton", PricePerHour: d(350)},
			{ID: "court-002c", VenueID: "venue-002", Name: "Court C (Premium)", Sport: "Badminton", PricePerHour: d(500)},
		},
		Latitude: 12.9719, Longitude: 77.6412,
	},
	{
		ID: "venue-003", Name: "Hoops Basketball Center", Location: "HSR Layout, Bengaluru",
		Sports:    []string{"Basketball"},
		VenueType: "indoor", Rating: 4.2, ReviewCount: 98,
		StartingPrice: d(800), PriceRange: types.PriceRange{Min: d(800), Max: d(1200)},
		Amenities: []string{"Locker Room", "Scoreboard"},
		Courts: []types.Court{
			{ID: "court-003a", VenueID: "venue-003", Name: "Full Court", Sport: "Basketball", PricePerHour: d(1200)},
			{ID: "court-003b", VenueID: "venue-003", Name: "Half Court", Sport: "Basketball", PricePerHour: d(800)},
		},
		Latitude: 12.9116, Longitude: 77.6474,
	},
	{
		ID: "venue-004", Name: "Greenfield Turf Park", Location: "Whitefield, Bengaluru",
		Sports:    []string{"Football", "Cricket"},
		VenueType: "outdoor", Rating: 4.4, ReviewCount: 421,
		StartingPrice: d(1000), PriceRange: types.PriceRange{Min: d(1000), Max: d(1800)},
		Amenities: []string{"Parking", "Floodlights", "Washrooms"},
		Courts: []types.Court{
			{ID: "court-004a", VenueID: "venue-004", Name: "Turf 1 (5-a-side)", Sport: "Football", PricePerHour: d(1000)},
			{ID: "court-004b", VenueID: "venue-004", Name: "Turf 2 (7-a-side)", Sport: "Football", PricePerHour: d(1800)},
		},
		Latitude: 12.9698, Longitude: 77.7500,
	},
	{
		ID: "venue-005", Name: "Metro Squash Courts", Location: "MG Road, Bengaluru",
		Sports:    []string{"Squash"},
		VenueType: "indoor", Rating: 4.8, ReviewCount: 67,
		StartingPrice: d(700), PriceRange: types.PriceRange{Min: d(700), Max: d(700)},
		Amenities: []string{"Air Conditioning", "Pro Shop"},
		Courts: []types.Court{
			{ID: "court-005a", VenueID: "venue-005", Name: "Court 1", Sport: "Squash", PricePerHour: d(700)},
		},
		Latitude: 12.9758, Longitude: 77.6096,
	},
	{
		ID: "venue-006", Name: "Riverside Tennis & Swim", Location: "Jayanagar, Bengaluru",
		Sports:    []string{"Tennis", "Swimming"},
		VenueType: "mixed", Rating: 3.9, ReviewCount: 154,
		StartingPrice: d(400), PriceRange: types.PriceRange{Min: d(400), Max: d(750)},
		Amenities: []string{"Parking", "Pool", "Coaching"},
		Courts: []types.Court{
			{ID: "court-006a", VenueID: "venue-006", Name: "Tennis Court 1", Sport: "Tennis", PricePerHour: d(750)},
			{ID: "court-006b", VenueID: "venue-006", Name: "Lap Pool", Sport: "Swimming", PricePerHour: d(400)},
		},
		Latitude: 12.9308, Longitude: 77.5838,
	},
}

// bookingDataset backs the readbookings fallback path.
var bookingDataset = []types.Booking{
	{
		ID: "booking-101", ConfirmationNumber: "QC-2406-AX71", VenueID: "venue-002",
		VenueName: "Smash Badminton Arena", CourtID: "court-002a", CourtName: "Court A",
		UserID: "user-42", Sport: "Badminton",
		StartTime: ts("2026-08-28T18:00:00+05:30"), EndTime: ts("2026-08-28T19:00:00+05:30"),
		DurationMinutes: 60, Status: types.BookingConfirmed,
		TotalAmount: d(350), Currency: "INR", PaymentMethod: "upi", PaymentStatus: "paid",
		Customer:  &types.CustomerInfo{Name: "Asha Rao", Email: "asha@example.com", Phone: "+91-98450-11111"},
		CreatedAt: ts("2026-08-20T11:04:00+05:30"),
	},
	{
		ID: "booking-102", ConfirmationNumber: "QC-2406-BK54", VenueID: "venue-001",
		VenueName: "Ace Tennis Club", CourtID: "court-001b", CourtName: "Court 2 (Clay)",
		UserID: "user-42", Sport: "Tennis",
		StartTime: ts("2026-08-30T07:00:00+05:30"), EndTime: ts("2026-08-30T08:30:00+05:30"),
		DurationMinutes: 90, Status: types.BookingPending,
		TotalAmount: d(1350), Currency: "INR", PaymentMethod: "card", PaymentStatus: "pending",
		Customer:  &types.CustomerInfo{Name: "Asha Rao", Email: "asha@example.com"},
		CreatedAt: ts("2026-08-26T09:15:00+05:30"),
	},
	{
		ID: "booking-103", ConfirmationNumber: "QC-2405-CM08", VenueID: "venue-004",
		VenueName: "Greenfield Turf Park", CourtID: "court-004b", CourtName: "Turf 2 (7-a-side)",
		UserID: "user-77", Sport: "Football",
		StartTime: ts("2026-08-25T20:00:00+05:30"), EndTime: ts("2026-08-25T21:00:00+05:30"),
		DurationMinutes: 60, Status: types.BookingCompleted,
		TotalAmount: d(1800), Currency: "INR", PaymentMethod: "upi", PaymentStatus: "paid",
		Customer:  &types.CustomerInfo{Name: "Vikram Shetty", Email: "vikram@example.com"},
		CreatedAt: ts("2026-08-19T17:42:00+05:30"),
	},
	{
		ID: "booking-104", ConfirmationNumber: "QC-2405-DQ33", VenueID: "venue-003",
		VenueName: "Hoops Basketball Center", CourtID: "court-003a", CourtName: "Full Court",
		UserID: "user-77", Sport: "Basketball",
		StartTime: ts("2026-08-22T17:00:00+05:30"), EndTime: ts("2026-08-22T18:00:00+05:30"),
		DurationMinutes: 60, Status: types.BookingCancelled,
		TotalAmount: d(1200), Currency: "INR", PaymentMethod: "card", PaymentStatus: "refunded",
		Customer:  &types.CustomerInfo{Name: "Vikram Shetty", Email: "vikram@example.com"},
		CreatedAt: ts("2026-08-15T08:30:00+05:30"),
	},
	{
		ID: "booking-105", ConfirmationNumber: "QC-2406-EF19", VenueID: "venue-002",
		VenueName: "Smash Badminton Arena", CourtID: "court-002c", CourtName: "Court C (Premium)",
		UserID: "user-13", Sport: "Badminton",
		StartTime: ts("2026-09-01T19:00:00+05:30"), EndTime: ts("2026-09-01T20:00:00+05:30"),
		DurationMinutes: 60, Status: types.BookingConfirmed,
		TotalAmount: d(500), Currency: "INR", PaymentMethod: "wallet", PaymentStatus: "paid",
		Customer:  &types.CustomerInfo{Name: "Meera Iyer", Email: "meera@example.com"},
		CreatedAt: ts("2026-08-27T21:58:00+05:30"),
	},
}
