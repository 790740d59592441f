package pages

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trotter/trip"
	"trotter/views"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

const coverDir = "./static/coverpic"

// TripsPage lists the user's trips grouped by where they sit relative to
// today.
func (h *Handlers) TripsPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := chrome(r, "My Trips", "trips")
	c.Banner = r.URL.Query().Get("err")
	if r.URL.Query().Get("saved") == "1" {
		c.Notice = "Trip saved."
	}

	trips, err := h.API.ListTrips(r.Context(), "")
	if err != nil {
		views.RenderError(w, c, "Could not load your trips. Try again in a moment.")
		return
	}

	grouped := trip.GroupByStatus(trips, time.Now())
	view := views.TripsView{Chrome: c, Empty: len(trips) == 0}
	for _, t := range grouped.Ongoing {
		view.Ongoing = append(view.Ongoing, views.TripCard{Trip: t, Status: trip.StatusOngoing})
	}
	for _, t := range grouped.Upcoming {
		view.Upcoming = append(view.Upcoming, views.TripCard{Trip: t, Status: trip.StatusUpcoming})
	}
	for _, t := range grouped.Completed {
		view.Completed = append(view.Completed, views.TripCard{Trip: t, Status: trip.StatusCompleted})
	}
	views.Render(w, http.StatusOK, "trips", view)
}

func (h *Handlers) NewTripPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := chrome(r, "New Trip", "trips")
	c.Banner = r.URL.Query().Get("err")
	views.Render(w, http.StatusOK, "newtrip", views.NewTripView{Chrome: c})
}

// CreateTrip validates the form, optionally stores a cover image, creates
// the trip on the backend and drops the user straight into the builder.
func (h *Handlers) CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := chrome(r, "New Trip", "trips")
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		c.Banner = "Invalid form data"
		views.Render(w, http.StatusBadRequest, "newtrip", views.NewTripView{Chrome: c})
		return
	}

	t := trip.Trip{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		StartDate:   r.FormValue("start_date"),
		EndDate:     r.FormValue("end_date"),
		IsPublic:    r.FormValue("is_public") != "",
	}
	if msg := validateTripForm(t); msg != "" {
		c.Banner = msg
		views.Render(w, http.StatusBadRequest, "newtrip", views.NewTripView{
			Chrome: c, Title: t.Title, StartDate: t.StartDate, EndDate: t.EndDate,
		})
		return
	}

	if files := r.MultipartForm.File["cover"]; len(files) > 0 {
		path, err := saveCoverImage(files[0])
		if err != nil {
			// a broken cover should not lose the rest of the form
			log.Printf("cover upload failed: %v", err)
		} else {
			t.CoverImage = path
		}
	}

	created, err := h.API.CreateTrip(r.Context(), t)
	if err != nil {
		http.Redirect(w, r, "/newtrip?err="+url.QueryEscape("Could not create the trip. Try again."), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/trips/"+created.ID+"/itinerary", http.StatusSeeOther)
}

func validateTripForm(t trip.Trip) string {
	switch {
	case t.Title == "":
		return "Give your trip a title"
	case t.StartDate == "" || t.EndDate == "":
		return "Pick both a start and an end date"
	case t.EndDate < t.StartDate:
		return "The end date can't be before the start date"
	}
	return ""
}

// saveCoverImage stores the upload and a 480px-wide thumbnail next to it.
// Everything is re-encoded as JPEG regardless of the source format.
func saveCoverImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", errors.Wrap(err, "decode image")
	}

	id := uuid.New().String()
	fileName := id + ".jpg"
	thumbDir := filepath.Join(coverDir, "thumb")
	if err := ensureDirExists(coverDir); err != nil {
		return "", err
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", err
	}

	if err := imaging.Save(img, filepath.Join(coverDir, fileName)); err != nil {
		return "", errors.Wrap(err, "save cover")
	}
	thumb := imaging.Resize(img, 480, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, fileName)); err != nil {
		return "", errors.Wrap(err, "save thumbnail")
	}
	return "/static/coverpic/" + fileName, nil
}

func ensureDirExists(dir string) error {
	return errors.Wrap(os.MkdirAll(dir, 0o755), "create upload dir")
}

// DeleteTrip removes a trip on the backend.
func (h *Handlers) DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.API.DeleteTrip(r.Context(), ps.ByName("id")); err != nil {
		http.Redirect(w, r, "/trips?err="+url.QueryEscape("Could not delete the trip."), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/trips", http.StatusSeeOther)
}

// ShareTrip asks the backend for a public slug and lands on the trip view
// with the link visible.
func (h *Handlers) ShareTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")
	slug, err := h.API.ShareTrip(r.Context(), tripID)
	if err != nil {
		http.Redirect(w, r, fmt.Sprintf("/trips/%s/view?err=%s", tripID,
			url.QueryEscape("Could not create a share link.")), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/trips/%s/view?shared=%s", tripID, url.QueryEscape(slug)), http.StatusSeeOther)
}
