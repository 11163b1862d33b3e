// Package api builds requests for each backend resource and normalizes the
// snake_case wire payloads into the SDK's canonical types. Policy (retry,
// auth, classification) lives in the transport; fallback decisions live in
// the root client package.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/quickcourt/client-go/internal/transport"
	"github.com/quickcourt/client-go/internal/types"
)

// FetchVenues searches venues with the given filters.
func FetchVenues(ctx context.Context, t *transport.Transport, f types.VenueFilters) (*types.VenueList, error) {
	q := url.Values{}
	setStr(q, "search", f.Search)
	setStr(q, "location", f.Location)
	setList(q, "sport_types", f.SportTypes)
	if f.PriceMin != nil {
		q.Set("price_min", f.PriceMin.String())
	}
	if f.PriceMax != nil {
		q.Set("price_max", f.PriceMax.String())
	}
	setList(q, "venue_types", f.VenueTypes)
	if f.MinRating > 0 {
		q.Set("min_rating", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}
	if f.MaxDistance > 0 {
		q.Set("max_distance", strconv.FormatFloat(f.MaxDistance, 'f', -1, 64))
	}
	setStr(q, "sort_by", f.SortBy)
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.UserLat != nil && f.UserLng != nil {
		q.Set("user_lat", strconv.FormatFloat(*f.UserLat, 'f', -1, 64))
		q.Set("user_lng", strconv.FormatFloat(*f.UserLng, 'f', -1, 64))
	}

	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodGet,
		Path:      "/venues",
		Query:     q,
		Operation: "fetch_venues",
	})
	if err != nil {
		return nil, err
	}
	var w venueListWire
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	return w.normalize(), nil
}

// FetchVenueDetails retrieves a single venue.
func FetchVenueDetails(ctx context.Context, t *transport.Transport, id string) (*types.Venue, error) {
	if err := types.ValidateIDPresent(id, "venueId"); err != nil {
		return nil, err
	}
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodGet,
		Path:      "/venues/" + url.PathEscape(id),
		Operation: "fetch_venue_details",
	})
	if err != nil {
		return nil, err
	}
	var w venueWire
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	v := w.normalize()
	return &v, nil
}

// SportsCategories lists the sport category strings known to the backend.
func SportsCategories(ctx context.Context, t *transport.Transport) ([]string, error) {
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodGet,
		Path:      "/venues/sports-categories",
		Operation: "sports_categories",
	})
	if err != nil {
		return nil, err
	}
	var w struct {
		Categories []string `json:"categories"`
	}
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	return w.Categories, nil
}

// PopularLocations lists locations ranked by venue count.
func PopularLocations(ctx context.Context, t *transport.Transport) ([]types.LocationCount, error) {
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodGet,
		Path:      "/venues/popular-locations",
		Operation: "popular_locations",
	})
	if err != nil {
		return nil, err
	}
	var w struct {
		Locations []types.LocationCount `json:"locations"`
	}
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	return w.Locations, nil
}

func setStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setList(q url.Values, key string, vs []string) {
	if len(vs) > 0 {
		q.Set(key, strings.Join(vs, ","))
	}
}
