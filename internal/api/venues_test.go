package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quickcourt/client-go/internal/transport"
	"github.com/quickcourt/client-go/internal/types"
)

func newTransport(srv *httptest.Server) *transport.Transport {
	return transport.New(transport.Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
}

const venueListJSON = `{
	"venues": [
		{
			"venue_id": "v1",
			"name": "Ace Tennis Club",
			"location": "Koramangala",
			"sports": ["Tennis"],
			"venue_type": "outdoor",
			"rating": 4.7,
			"review_count": 212,
			"starting_price": 600,
			"price_range": {"min": 600, "max": 900},
			"courts": [{"court_id": "c1", "venue_id": "v1", "name": "Court 1", "sport": "Tennis", "price_per_hour": 600}]
		}
	],
	"total_count": 41,
	"current_page": 2,
	"total_pages": 5,
	"has_next_page": true
}`

func TestFetchVenues_NormalizesWirePayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(venueListJSON))
	}))
	defer srv.Close()

	got, err := FetchVenues(context.Background(), newTransport(srv), types.VenueFilters{})
	if err != nil {
		t.Fatalf("fetch venues: %v", err)
	}
	if got.TotalCount != 41 || got.CurrentPage != 2 || got.TotalPages != 5 || !got.HasNextPage {
		t.Fatalf("pagination not normalized: %+v", got)
	}
	if len(got.Venues) != 1 {
		t.Fatalf("venues = %d", len(got.Venues))
	}
	v := got.Venues[0]
	if v.ID != "v1" || v.Name != "Ace Tennis Club" || v.VenueType != "outdoor" {
		t.Fatalf("venue not normalized: %+v", v)
	}
	if !v.StartingPrice.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("starting price = %s", v.StartingPrice)
	}
	if !v.PriceRange.Max.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("price range = %+v", v.PriceRange)
	}
	if len(v.Courts) != 1 || v.Courts[0].ID != "c1" {
		t.Fatalf("courts not normalized: %+v", v.Courts)
	}
	if got.IsOfflineData {
		t.Fatal("live response must not be tagged offline")
	}
}

func TestFetchVenues_BuildsQueryParams(t *testing.T) {
	t.Parallel()
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"venues":[],"total_count":0}`))
	}))
	defer srv.Close()

	min := decimal.NewFromInt(300)
	max := decimal.NewFromInt(900)
	lat, lng := 12.97, 77.59
	_, err := FetchVenues(context.Background(), newTransport(srv), types.VenueFilters{
		Search:     "tennis",
		Location:   "Bengaluru",
		SportTypes: []string{"Tennis", "Badminton"},
		PriceMin:   &min,
		PriceMax:   &max,
		VenueTypes: []string{"indoor"},
		MinRating:  4.5,
		SortBy:     types.SortByRating,
		Page:       3,
		Limit:      20,
		UserLat:    &lat,
		UserLng:    &lng,
	})
	if err != nil {
		t.Fatalf("fetch venues: %v", err)
	}

	want := map[string]string{
		"search":      "tennis",
		"location":    "Bengaluru",
		"sport_types": "Tennis,Badminton",
		"price_min":   "300",
		"price_max":   "900",
		"venue_types": "indoor",
		"min_rating":  "4.5",
		"sort_by":     "rating",
		"page":        "3",
		"limit":       "20",
		"user_lat":    "12.97",
		"user_lng":    "77.59",
	}
	for k, v := range want {
		if got.Get(k) != v {
			t.Errorf("query %s = %q, want %q", k, got.Get(k), v)
		}
	}
	if got.Has("max_distance") {
		t.Error("zero max_distance should be omitted")
	}
}

func TestFetchVenueDetails(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/venues/v42" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"venue_id":"v42","name":"Metro Squash","starting_price":"700"}`))
	}))
	defer srv.Close()

	v, err := FetchVenueDetails(context.Background(), newTransport(srv), "v42")
	if err != nil {
		t.Fatalf("fetch venue details: %v", err)
	}
	if v.ID != "v42" || v.Name != "Metro Squash" {
		t.Fatalf("unexpected venue: %+v", v)
	}
	// Missing price_range defaults to the starting price on both bounds.
	if !v.PriceRange.Min.Equal(v.StartingPrice) || !v.PriceRange.Max.Equal(v.StartingPrice) {
		t.Fatalf("price range default: %+v", v.PriceRange)
	}
}

func TestFetchVenueDetails_EmptyID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := FetchVenueDetails(context.Background(), newTransport(srv), ""); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSportsCategoriesAndPopularLocations(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/venues/sports-categories":
			_, _ = w.Write([]byte(`{"categories":["Tennis","Badminton"]}`))
		case "/venues/popular-locations":
			_, _ = w.Write([]byte(`{"locations":[{"name":"Indiranagar","count":12}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tr := newTransport(srv)
	cats, err := SportsCategories(context.Background(), tr)
	if err != nil || len(cats) != 2 || cats[0] != "Tennis" {
		t.Fatalf("categories = %v err = %v", cats, err)
	}
	locs, err := PopularLocations(context.Background(), tr)
	if err != nil || len(locs) != 1 || locs[0].Count != 12 {
		t.Fatalf("locations = %v err = %v", locs, err)
	}
}
