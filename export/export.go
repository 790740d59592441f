package export

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"time"

	"trotter/gateway"
	"trotter/trip"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

// Handlers produces downloadable artifacts: an itinerary PDF for the owner
// and a QR code pointing at the public share page.
type Handlers struct {
	API *gateway.Client
}

func NewHandlers(api *gateway.Client) *Handlers {
	return &Handlers{API: api}
}

// TripPDF renders the trip's day-by-day schedule and budget into an A4
// document.
func (h *Handlers) TripPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")
	t, err := h.API.GetTrip(r.Context(), tripID)
	if errors.Is(err, gateway.ErrNotFound) {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Could not load trip", http.StatusBadGateway)
		return
	}

	var sched trip.Schedule
	if s, err := h.API.TripSchedule(r.Context(), tripID); err == nil {
		sched = s
	}
	var budget *trip.Budget
	if b, err := h.API.TripBudget(r.Context(), tripID); err == nil {
		budget = &b
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, t.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%s to %s (%d days)", t.StartDate, t.EndDate,
		trip.DaysBetween(t.StartDate, t.EndDate)))
	pdf.Ln(8)
	if t.Description != "" {
		pdf.MultiCell(0, 6, t.Description, "", "L", false)
		pdf.Ln(4)
	}

	if budget != nil {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Budget")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		rows := []struct {
			label string
			value float64
		}{
			{"Transport", budget.TransportCost},
			{"Accommodation", budget.StayCost},
			{"Food", budget.FoodCost},
			{"Activities", budget.ActivityCost},
			{"Total", budget.TotalCost},
		}
		for _, row := range rows {
			pdf.Cell(60, 7, row.label)
			pdf.Cell(0, 7, fmt.Sprintf("$%.2f", row.value))
			pdf.Ln(7)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Daily Itinerary")
	pdf.Ln(9)
	if len(sched.Days) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 7, "No schedule has been built yet.")
		pdf.Ln(7)
	}
	for _, day := range sched.Days {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Day %d - %s (%s)", day.DayNum, day.Date, day.Location))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		for _, item := range day.Items {
			line := fmt.Sprintf("  %s  %s", item.Time, item.Title)
			if item.Cost > 0 {
				line += fmt.Sprintf("  ($%.2f)", item.Cost)
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 6, "Generated by GlobeTrotter on "+time.Now().Format("2006-01-02"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+tripID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// SharedQR answers a PNG QR code for a share link so a printed itinerary
// can carry the live page.
func (h *Handlers) SharedQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	png, err := qrcode.Encode(base+"/shared/"+slug, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
