package fallback

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/client-go/internal/types"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestVenues_EmptyFiltersReturnEverything(t *testing.T) {
	t.Parallel()
	got := Venues(types.VenueFilters{})
	require.Len(t, got.Venues, len(venueDataset))
	assert.Equal(t, len(venueDataset), got.TotalCount)
	assert.Equal(t, 1, got.CurrentPage)
	assert.Equal(t, 1, got.TotalPages)
	assert.False(t, got.HasNextPage)
	assert.True(t, got.IsOfflineData)
}

func TestVenues_SearchMatchesNameSportsLocation(t *testing.T) {
	t.Parallel()
	got := Venues(types.VenueFilters{Search: "tennis"})
	require.NotEmpty(t, got.Venues)
	for _, v := range got.Venues {
		matched := false
		for _, field := range append([]string{v.Name, v.Location}, v.Sports...) {
			if containsFold(field, "tennis") {
				matched = true
			}
		}
		assert.True(t, matched, "venue %s does not match search", v.ID)
	}
	// "Riverside Tennis & Swim" matches on name even though location differs.
	ids := venueIDs(got.Venues)
	assert.Contains(t, ids, "venue-001")
	assert.Contains(t, ids, "venue-006")
	assert.NotContains(t, ids, "venue-004")
}

func TestVenues_Idempotent(t *testing.T) {
	t.Parallel()
	f := types.VenueFilters{Search: "Tennis", MinRating: 4.0}
	first := Venues(f)
	second := Venues(f)
	assert.Equal(t, first, second)
}

func TestVenues_ResultsDoNotAliasDataset(t *testing.T) {
	t.Parallel()
	got := Venues(types.VenueFilters{Search: "Ace Tennis Club"})
	require.Len(t, got.Venues, 1)
	got.Venues[0].Sports[0] = "MUTATED"
	got.Venues[0].Courts[0].Name = "MUTATED"

	again := Venues(types.VenueFilters{Search: "Ace Tennis Club"})
	require.Len(t, again.Venues, 1)
	assert.Equal(t, "Tennis", again.Venues[0].Sports[0])
	assert.Equal(t, "Court 1", again.Venues[0].Courts[0].Name)
}

func TestVenues_FilterSemantics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		f       types.VenueFilters
		wantIDs []string
	}{
		{
			"sport type set membership",
			types.VenueFilters{SportTypes: []string{"Badminton", "Squash"}},
			[]string{"venue-002", "venue-005"},
		},
		{
			"venue type",
			types.VenueFilters{VenueTypes: []string{"outdoor"}},
			[]string{"venue-001", "venue-004"},
		},
		{
			"min rating threshold",
			types.VenueFilters{MinRating: 4.6},
			[]string{"venue-001", "venue-005"},
		},
		{
			"price range overlap",
			types.VenueFilters{PriceMin: dec(900), PriceMax: dec(1100)},
			[]string{"venue-001", "venue-003", "venue-004"},
		},
		{
			"price max only",
			types.VenueFilters{PriceMax: dec(400)},
			[]string{"venue-002", "venue-006"},
		},
		{
			"combined",
			types.VenueFilters{Search: "Bengaluru", SportTypes: []string{"Tennis"}, MinRating: 4.5},
			[]string{"venue-001"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Venues(tc.f)
			assert.ElementsMatch(t, tc.wantIDs, venueIDs(got.Venues))
		})
	}
}

func TestVenueByID(t *testing.T) {
	t.Parallel()
	v, ok := VenueByID("venue-003")
	require.True(t, ok)
	assert.Equal(t, "Hoops Basketball Center", v.Name)

	_, ok = VenueByID("venue-999")
	assert.False(t, ok)
}

func TestBookings_StatusAndUserFilters(t *testing.T) {
	t.Parallel()
	confirmed := Bookings(types.BookingFilters{Status: "confirmed"})
	require.NotEmpty(t, confirmed.Bookings)
	for _, b := range confirmed.Bookings {
		assert.Equal(t, types.BookingConfirmed, b.Status)
	}
	assert.True(t, confirmed.IsOfflineData)

	mine := Bookings(types.BookingFilters{UserID: "user-42"})
	require.Len(t, mine.Bookings, 2)

	none := Bookings(types.BookingFilters{UserID: "user-42", Status: "completed"})
	assert.Empty(t, none.Bookings)
	assert.Equal(t, 0, none.TotalCount)
}

func TestBookingByID(t *testing.T) {
	t.Parallel()
	b, ok := BookingByID("booking-103")
	require.True(t, ok)
	assert.Equal(t, "QC-2405-CM08", b.ConfirmationNumber)

	_, ok = BookingByID("booking-999")
	assert.False(t, ok)
}

func TestSportsCategories(t *testing.T) {
	t.Parallel()
	cats := SportsCategories()
	assert.Contains(t, cats, "Tennis")
	assert.Contains(t, cats, "Swimming")
	assert.IsIncreasing(t, cats)
}

func TestPopularLocations(t *testing.T) {
	t.Parallel()
	locs := PopularLocations()
	require.NotEmpty(t, locs)
	for i := 1; i < len(locs); i++ {
		assert.GreaterOrEqual(t, locs[i-1].Count, locs[i].Count)
	}
}

func venueIDs(vs []types.Venue) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}
