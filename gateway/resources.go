package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"trotter/trip"
)

// ---- auth ----

type SignupRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone,omitempty"`
	City           string `json:"city,omitempty"`
	Country        string `json:"country,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
}

type SignupResponse struct {
	UserID string `json:"user_id"`
}

type LoginResponse struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	var out SignupResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out)
	return out, err
}

func (c *Client) CurrentUser(ctx context.Context) (trip.User, error) {
	var out trip.User
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out)
	return out, err
}

// UpdateProfile sends only the fields present in the map; the backend
// treats the update as partial.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) (trip.User, error) {
	var out trip.User
	err := c.do(ctx, http.MethodPut, "/api/auth/me", nil, fields, &out)
	return out, err
}

// ---- reference data ----

func (c *Client) ListCities(ctx context.Context, filter map[string]string) ([]trip.City, error) {
	var out []trip.City
	err := c.do(ctx, http.MethodGet, "/api/cities", params(filter), nil, &out)
	return out, err
}

func (c *Client) GetCity(ctx context.Context, id string) (trip.City, error) {
	var out trip.City
	err := c.do(ctx, http.MethodGet, "/api/cities/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (c *Client) SearchActivities(ctx context.Context, search, category string) ([]trip.Activity, error) {
	var out []trip.Activity
	q := params(map[string]string{"search": search, "category": category})
	err := c.do(ctx, http.MethodGet, "/api/activities", q, nil, &out)
	return out, err
}

func (c *Client) CityRecommendations(ctx context.Context, cityID, category, budget string, limit int) ([]trip.Activity, error) {
	q := params(map[string]string{"category": category, "budget": budget})
	q.Set("limit", strconv.Itoa(limit))
	var out struct {
		Recommendations []trip.Activity `json:"recommendations"`
	}
	err := c.do(ctx, http.MethodGet, "/api/cities/"+url.PathEscape(cityID)+"/recommendations", q, nil, &out)
	return out.Recommendations, err
}

// EstimateBudget carries everything in the query string, activity ids as a
// repeated parameter, matching the backend's POST signature.
func (c *Client) EstimateBudget(ctx context.Context, cityID, startDate, endDate string, activityIDs []string) (trip.Budget, error) {
	q := url.Values{
		"city_id":    {cityID},
		"start_date": {startDate},
		"end_date":   {endDate},
	}
	for _, id := range activityIDs {
		q.Add("activity_ids", id)
	}
	var out struct {
		EstimatedBudget trip.Budget `json:"estimated_budget"`
	}
	err := c.do(ctx, http.MethodPost, "/api/budget/estimate", q, nil, &out)
	return out.EstimatedBudget, err
}

// ---- trips ----

func (c *Client) ListTrips(ctx context.Context, status string) ([]trip.Trip, error) {
	var out struct {
		Trips []trip.Trip `json:"trips"`
	}
	err := c.do(ctx, http.MethodGet, "/api/trips", params(map[string]string{"status": status}), nil, &out)
	return out.Trips, err
}

func (c *Client) CreateTrip(ctx context.Context, t trip.Trip) (trip.Trip, error) {
	var out trip.Trip
	err := c.do(ctx, http.MethodPost, "/api/trips", nil, t, &out)
	return out, err
}

func (c *Client) GetTrip(ctx context.Context, id string) (trip.Trip, error) {
	var out trip.Trip
	err := c.do(ctx, http.MethodGet, "/api/trips/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (c *Client) UpdateTrip(ctx context.Context, t trip.Trip) (trip.Trip, error) {
	var out trip.Trip
	err := c.do(ctx, http.MethodPut, "/api/trips/"+url.PathEscape(t.ID), nil, t, &out)
	return out, err
}

func (c *Client) DeleteTrip(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/trips/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ListStops(ctx context.Context, tripID string) ([]trip.Stop, error) {
	var out []trip.Stop
	err := c.do(ctx, http.MethodGet, "/api/trips/"+url.PathEscape(tripID)+"/stops", nil, nil, &out)
	return out, err
}

func (c *Client) CreateStop(ctx context.Context, s trip.Stop) (trip.Stop, error) {
	var out trip.Stop
	err := c.do(ctx, http.MethodPost, "/api/trips/"+url.PathEscape(s.TripID)+"/stops", nil, s, &out)
	return out, err
}

func (c *Client) TripSchedule(ctx context.Context, tripID string) (trip.Schedule, error) {
	var out trip.Schedule
	err := c.do(ctx, http.MethodGet, "/api/trips/"+url.PathEscape(tripID)+"/schedule", nil, nil, &out)
	return out, err
}

func (c *Client) TripBudget(ctx context.Context, tripID string) (trip.Budget, error) {
	var out trip.Budget
	err := c.do(ctx, http.MethodGet, "/api/trips/"+url.PathEscape(tripID)+"/budget", nil, nil, &out)
	return out, err
}

func (c *Client) UpdateTripBudget(ctx context.Context, tripID string, b trip.Budget) error {
	return c.do(ctx, http.MethodPut, "/api/trips/"+url.PathEscape(tripID)+"/budget", nil, b, nil)
}

// ---- sharing ----

type shareResponse struct {
	PublicSlug string `json:"public_slug"`
}

func (c *Client) ShareTrip(ctx context.Context, tripID string) (string, error) {
	var out shareResponse
	err := c.do(ctx, http.MethodPost, "/api/trips/"+url.PathEscape(tripID)+"/share", nil, nil, &out)
	return out.PublicSlug, err
}

// SharedTrip is public: the identity header is simply absent when the
// caller's context carries no session.
func (c *Client) SharedTrip(ctx context.Context, slug string) (trip.SharedTrip, error) {
	var out trip.SharedTrip
	err := c.do(ctx, http.MethodGet, "/api/shared/"+url.PathEscape(slug), nil, nil, &out)
	return out, err
}
