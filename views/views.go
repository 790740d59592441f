package views

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"trotter/trip"
)

// Server-rendered views. Each page template is parsed together with the
// shared layout; handlers fill a view model and call Render. Template
// execution failures are logged, not surfaced: by then half the page may
// already be on the wire.

// Chrome is what the shared layout needs on every page.
type Chrome struct {
	Title    string
	UserName string // empty when anonymous
	Active   string // nav highlight key: trips, calendar, discover, profile
	Banner   string // dismissible error banner
	Notice   string
}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"inc":   func(i int) int { return i + 1 },
	"slicecats": func() []string {
		return []string{"Culture", "Food", "Adventure", "Walking", "Nature", "Entertainment"}
	},
	"slicetiers": func() []string { return []string{"low", "medium", "high"} },
}

var pages = map[string]*template.Template{}

func register(name, body string) {
	pages[name] = template.Must(template.New(name).Funcs(funcs).Parse(layoutTmpl + body))
}

func init() {
	register("home", homeTmpl)
	register("login", loginTmpl)
	register("signup", signupTmpl)
	register("trips", tripsTmpl)
	register("newtrip", newTripTmpl)
	register("builder", builderTmpl)
	register("recommend", recommendTmpl)
	register("schedule", scheduleTmpl)
	register("calendar", calendarTmpl)
	register("profile", profileTmpl)
	register("activities", activitiesTmpl)
	register("shared", sharedTmpl)
	register("notfound", notFoundTmpl)
	register("error", errorTmpl)
}

func Render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := pages[name]
	if !ok {
		log.Printf("unknown view %q", name)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

// RenderError is the fallback for a primary-content fetch failure: the
// chrome stays intact, the message shows as a banner.
func RenderError(w http.ResponseWriter, chrome Chrome, msg string) {
	chrome.Title = "Something went wrong"
	chrome.Banner = msg
	Render(w, http.StatusBadGateway, "error", ErrorView{Chrome: chrome})
}

// RenderNotFound keeps navigation available instead of a bare error page.
func RenderNotFound(w http.ResponseWriter, chrome Chrome, path string) {
	chrome.Title = "Not found"
	Render(w, http.StatusNotFound, "notfound", NotFoundView{Chrome: chrome, Path: path})
}

// ---- view models ----

type HomeView struct {
	Chrome
}

type AuthView struct {
	Chrome
	Email string
}

type TripCard struct {
	trip.Trip
	Status trip.Status
}

type TripsView struct {
	Chrome
	Ongoing   []TripCard
	Upcoming  []TripCard
	Completed []TripCard
	Empty     bool
}

type NewTripView struct {
	Chrome
	Title     string
	StartDate string
	EndDate   string
}

type StopView struct {
	Index    int
	LocalID  string
	Stop     trip.Stop
	State    string
	CityName string
	Removable bool
}

type BuilderView struct {
	Chrome
	Trip     trip.Trip
	Stops    []StopView
	Cities   []trip.City
	Warnings []string
	Total    float64
}

type ActivityCard struct {
	trip.Activity
	Selected bool
}

type RecommendView struct {
	Chrome
	City       trip.City
	Token      string
	PickURL    string // page path without query, filter form posts back here
	Category   string
	BudgetTier string
	StartDate  string
	EndDate    string
	Days       int
	Activities []ActivityCard
	// ids selected earlier that the current catalog page no longer carries;
	// they still count toward the total but render id-only
	Orphans       []string
	SelectedCount int
	SelectedTotal float64
	Estimate      *trip.Budget
	HasReturn     bool
}

type ScheduleView struct {
	Chrome
	Trip      trip.Trip
	Status    trip.Status
	Days      []trip.ScheduleDay
	Budget    *trip.Budget
	Spent     float64
	Remaining float64
	PerDay    float64
	DayCount  int
	Percent   int
	ShareSlug string
}

type CalendarView struct {
	Chrome
	Month     trip.CalendarMonth
	MonthName string
	PrevQuery string
	NextQuery string
	TripCount int
}

// Weeks chunks the month cells into rows of seven for table rendering,
// padding the last row with blanks.
func (v CalendarView) Weeks() [][]trip.CalendarCell {
	cells := append([]trip.CalendarCell(nil), v.Month.Cells...)
	for len(cells)%7 != 0 {
		cells = append(cells, trip.CalendarCell{})
	}
	weeks := make([][]trip.CalendarCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

type ProfileView struct {
	Chrome
	User trip.User
}

type ActivitiesView struct {
	Chrome
	Search   string
	Category string
	Results  []trip.Activity
}

type SharedView struct {
	Chrome
	Shared trip.SharedTrip
	Days   int
	Spend  float64
}

type NotFoundView struct {
	Chrome
	Path string
}

type ErrorView struct {
	Chrome
}
