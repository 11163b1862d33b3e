package fallback

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quickcourt/client-go/internal/types"
)

// Venues filters the static dataset with the same semantics the backend
// applies and returns the whole filtered set as a single page. Sorting and
// pagination parameters are accepted but deliberately ignored here.
func Venues(f types.VenueFilters) *types.VenueList {
	out := make([]types.Venue, 0, len(venueDataset))
	for _, v := range venueDataset {
		if matchesVenue(v, f) {
			out = append(out, copyVenue(v))
		}
	}
	return &types.VenueList{
		Venues:        out,
		TotalCount:    len(out),
		CurrentPage:   1,
		TotalPages:    1,
		HasNextPage:   false,
		IsOfflineData: true,
	}
}

// VenueByID looks up a single venue in the static dataset.
func VenueByID(id string) (*types.Venue, bool) {
	for _, v := range venueDataset {
		if v.ID == id {
			c := copyVenue(v)
			return &c, true
		}
	}
	return nil, false
}

// Bookings filters the static booking dataset. Same single-page contract
// as Venues.
func Bookings(f types.BookingFilters) *types.BookingList {
	out := make([]types.Booking, 0, len(bookingDataset))
	for _, b := range bookingDataset {
		if matchesBooking(b, f) {
			out = append(out, copyBooking(b))
		}
	}
	return &types.BookingList{
		Bookings:      out,
		TotalCount:    len(out),
		CurrentPage:   1,
		TotalPages:    1,
		HasNextPage:   false,
		IsOfflineData: true,
	}
}

// BookingByID looks up a single booking in the static dataset.
func BookingByID(id string) (*types.Booking, bool) {
	for _, b := range bookingDataset {
		if b.ID == id {
			c := copyBooking(b)
			return &c, true
		}
	}
	return nil, false
}

// SportsCategories returns the distinct sports across the dataset, sorted.
func SportsCategories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, v := range venueDataset {
		for _, s := range v.Sports {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	return out
}

// PopularLocations returns venue counts per location, most venues first.
func PopularLocations() []types.LocationCount {
	counts := map[string]int{}
	var order []string
	for _, v := range venueDataset {
		if _, ok := counts[v.Location]; !ok {
			order = append(order, v.Location)
		}
		counts[v.Location]++
	}
	out := make([]types.LocationCount, 0, len(order))
	for _, name := range order {
		out = append(out, types.LocationCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ------------------------------
// Filter semantics
// ------------------------------

func matchesVenue(v types.Venue, f types.VenueFilters) bool {
	if f.Search != "" && !searchMatch(v, f.Search) {
		return false
	}
	if f.Location != "" && !containsFold(v.Location, f.Location) {
		return false
	}
	if len(f.SportTypes) > 0 && !anyInSet(v.Sports, f.SportTypes) {
		return false
	}
	if len(f.VenueTypes) > 0 && !inSet(v.VenueType, f.VenueTypes) {
		return false
	}
	if f.MinRating > 0 && v.Rating < f.MinRating {
		return false
	}
	if !priceOverlap(v.PriceRange, f.PriceMin, f.PriceMax) {
		return false
	}
	return true
}

// searchMatch is a case-insensitive substring match over name, sports and
// location, mirroring the backend's search behavior.
func searchMatch(v types.Venue, q string) bool {
	if containsFold(v.Name, q) || containsFold(v.Location, q) {
		return true
	}
	for _, s := range v.Sports {
		if containsFold(s, q) {
			return true
		}
	}
	return false
}

// priceOverlap keeps venues whose price band intersects [min, max]. Missing
// bounds are open-ended. This mirrors the live API's price_min/price_max
// semantics against each record's priceRange pair.
func priceOverlap(pr types.PriceRange, min, max *decimal.Decimal) bool {
	if min != nil && pr.Max.LessThan(*min) {
		return false
	}
	if max != nil && pr.Min.GreaterThan(*max) {
		return false
	}
	return true
}

func matchesBooking(b types.Booking, f types.BookingFilters) bool {
	if f.UserID != "" && b.UserID != f.UserID {
		return false
	}
	if f.Status != "" && !strings.EqualFold(b.Status, f.Status) {
		return false
	}
	if len(f.SportTypes) > 0 && !inSet(b.Sport, f.SportTypes) {
		return false
	}
	if len(f.VenueIDs) > 0 && !inSet(b.VenueID, f.VenueIDs) {
		return false
	}
	if f.DateFrom != nil && b.StartTime.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && b.StartTime.After(*f.DateTo) {
		return false
	}
	if f.Search != "" && !containsFold(b.VenueName, f.Search) &&
		!containsFold(b.ConfirmationNumber, f.Search) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inSet(v string, set []string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func anyInSet(values, set []string) bool {
	for _, v := range values {
		if inSet(v, set) {
			return true
		}
	}
	return false
}

// ------------------------------
// Copy helpers: the dataset is never handed out by reference.
// ------------------------------

func copyVenue(v types.Venue) types.Venue {
	c := v
	c.Sports = append([]string(nil), v.Sports...)
	c.Amenities = append([]string(nil), v.Amenities...)
	c.Photos = append([]string(nil), v.Photos...)
	c.Courts = append([]types.Court(nil), v.Courts...)
	return c
}

func copyBooking(b types.Booking) types.Booking {
	c := b
	if b.Customer != nil {
		cust := *b.Customer
		c.Customer = &cust
	}
	if b.Venue != nil {
		ven := copyVenue(*b.Venue)
		c.Venue = &ven
	}
	return c
}
