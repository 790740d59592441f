package trip

import (
	"fmt"
	"time"
)

// CalendarCell is one slot of the month grid. Day 0 marks a leading blank
// cell before the first of the month.
type CalendarCell struct {
	Day   int
	Today bool
	Trips []Trip
}

type CalendarMonth struct {
	Year  int
	Month time.Month
	Cells []CalendarCell
}

// MonthGrid lays out one month Sunday-first and attaches every trip whose
// date range covers each day. Ranges compare as date strings, matching how
// the backend sends them.
func MonthGrid(year int, month time.Month, today time.Time, trips []Trip) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]CalendarCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, CalendarCell{})
	}

	todayStr := today.Format(dateLayout)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		cell := CalendarCell{Day: day, Today: date == todayStr}
		for _, t := range trips {
			if t.StartDate != "" && date >= t.StartDate && date <= t.EndDate {
				cell.Trips = append(cell.Trips, t)
			}
		}
		cells = append(cells, cell)
	}
	return CalendarMonth{Year: year, Month: month, Cells: cells}
}
