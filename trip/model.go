package trip

// Wire types for the GlobeTrotter backend. Field names follow the backend's
// JSON exactly; dates travel as "YYYY-MM-DD" strings and are only parsed at
// the few places that need arithmetic.

type User struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone_number,omitempty"`
	City           string `json:"city,omitempty"`
	Country        string `json:"country,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
}

type Trip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CoverImage  string `json:"cover_image,omitempty"`
	IsPublic    bool   `json:"is_public"`
}

// Stop is one single-city segment of a trip. StopOrder is 1-based and must
// be contiguous when persisted.
type Stop struct {
	ID              string        `json:"id,omitempty"`
	TripID          string        `json:"trip_id"`
	CityID          string        `json:"city_id"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	StopOrder       int           `json:"stop_order"`
	Activities      []ActivityRef `json:"activities,omitempty"`
	EstimatedBudget *Budget       `json:"estimated_budget,omitempty"`
}

type ActivityRef struct {
	ActivityID string  `json:"activity_id"`
	Cost       float64 `json:"cost"`
}

// Budget is computed by the backend; the client only renders it.
type Budget struct {
	TransportCost float64 `json:"transport_cost"`
	StayCost      float64 `json:"stay_cost"`
	FoodCost      float64 `json:"food_cost"`
	ActivityCost  float64 `json:"activity_cost"`
	TotalCost     float64 `json:"total_cost"`
	Days          int     `json:"days"`
}

type City struct {
	ID       string `json:"id"`
	CityName string `json:"city_name"`
	Country  string `json:"country"`
}

type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"act_name"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	AvgCost     float64 `json:"avg_cost"`
	CityID      string  `json:"city_id,omitempty"`
}

// Schedule is the backend's day-by-day plan for a trip.
type Schedule struct {
	TripID string        `json:"trip_id"`
	Days   []ScheduleDay `json:"days"`
}

type ScheduleDay struct {
	DayNum   int            `json:"day_num"`
	Date     string         `json:"date"`
	Location string         `json:"location"`
	Items    []ScheduleItem `json:"items"`
}

type ScheduleItem struct {
	Time  string  `json:"time"`
	Title string  `json:"title"`
	Cost  float64 `json:"cost"`
}

// SharedTrip is the public projection served under /api/shared/{slug}.
type SharedTrip struct {
	Slug  string `json:"public_slug"`
	Trip  Trip   `json:"trip"`
	Stops []Stop `json:"stops,omitempty"`
}
