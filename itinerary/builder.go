package itinerary

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"trotter/trip"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Builder holds the in-progress stop list for one trip. Nothing here is
// persisted locally: Save pushes the stops to the backend and the builder
// is dropped.
//
// Per-stop lifecycle: Empty -> CityChosen -> DatesSet -> BudgetPending ->
// BudgetReady. Any city or date edit moves the stop back to BudgetPending
// and schedules a debounced recompute.

type StopState string

const (
	StateEmpty         StopState = "empty"
	StateCityChosen    StopState = "city_chosen"
	StateDatesSet      StopState = "dates_set"
	StateBudgetPending StopState = "budget_pending"
	StateBudgetReady   StopState = "budget_ready"
)

var (
	ErrLastStop    = errors.New("a trip needs at least one stop")
	ErrNoCity      = errors.New("pick a city for this stop before choosing activities")
	ErrUnknownStop = errors.New("unknown stop")
)

// ValidationError is client-local: it is rendered to the user and never
// sent to the backend.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// PartialSaveError reports how far a sequential save got. Stops before
// Index are already committed; the user should retry, not resubmit.
type PartialSaveError struct {
	Index int
	Err   error
}

func (e *PartialSaveError) Error() string {
	return fmt.Sprintf("stop %d could not be saved: %v (earlier stops are already saved)", e.Index, e.Err)
}

func (e *PartialSaveError) Unwrap() error { return e.Err }

// BudgetFetcher is the slice of the gateway the builder needs.
type BudgetFetcher interface {
	EstimateBudget(ctx context.Context, cityID, startDate, endDate string, activityIDs []string) (trip.Budget, error)
}

// StopSaver persists one stop; satisfied by gateway.Client.
type StopSaver interface {
	CreateStop(ctx context.Context, s trip.Stop) (trip.Stop, error)
}

// StopDraft is one editable stop. LocalID identifies it within the builder
// until the backend assigns a real id on save.
type StopDraft struct {
	LocalID string
	Stop    trip.Stop
	State   StopState

	seq   uint64 // latest recompute generation; stale responses are dropped
	timer *time.Timer
}

// PendingPick is the hand-off record for the activity-selection sub-flow,
// keyed by a correlation token instead of navigation-carried state.
type PendingPick struct {
	Token     string
	StopID    string
	TripID    string
	CityID    string
	Snapshot  trip.Trip
	StartDate string
	EndDate   string
	ReturnTo  string
	Selected  []trip.ActivityRef
	Created   time.Time
}

type Builder struct {
	mu      sync.Mutex
	trip    trip.Trip
	stops   []*StopDraft
	picks   map[string]*PendingPick
	budgets BudgetFetcher

	debounce time.Duration
	closed   bool
	touched  time.Time
}

const defaultDebounce = 500 * time.Millisecond

func NewBuilder(t trip.Trip, budgets BudgetFetcher) *Builder {
	b := &Builder{
		trip:     t,
		picks:    map[string]*PendingPick{},
		budgets:  budgets,
		debounce: defaultDebounce,
		touched:  time.Now(),
	}
	b.stops = []*StopDraft{newDraft(t.ID, 1)}
	return b
}

func newDraft(tripID string, order int) *StopDraft {
	return &StopDraft{
		LocalID: uuid.New().String(),
		Stop:    trip.Stop{TripID: tripID, StopOrder: order},
		State:   StateEmpty,
	}
}

func (b *Builder) Trip() trip.Trip {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trip
}

// Stops returns a render snapshot in display order.
func (b *Builder) Stops() []StopDraft {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]StopDraft, len(b.stops))
	for i, sd := range b.stops {
		out[i] = *sd
		out[i].timer = nil
	}
	return out
}

// Warnings reports soft date-order problems: a stop starting before the
// previous one ends is suspicious but not an error.
func (b *Builder) Warnings() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var warns []string
	for i := 1; i < len(b.stops); i++ {
		prev, cur := b.stops[i-1].Stop, b.stops[i].Stop
		if prev.EndDate != "" && cur.StartDate != "" && cur.StartDate < prev.EndDate {
			warns = append(warns, fmt.Sprintf("stop %d starts before stop %d ends", i+1, i))
		}
	}
	return warns
}

func (b *Builder) AddStop() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.touched = time.Now()
	sd := newDraft(b.trip.ID, len(b.stops)+1)
	b.stops = append(b.stops, sd)
	return sd.LocalID
}

// RemoveStop refuses to delete the only remaining stop. Remaining order
// numbers are left as-is for display; Save renumbers before persisting.
func (b *Builder) RemoveStop(localID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.touched = time.Now()
	if len(b.stops) == 1 {
		return ErrLastStop
	}
	for i, sd := range b.stops {
		if sd.LocalID == localID {
			if sd.timer != nil {
				sd.timer.Stop()
			}
			b.stops = append(b.stops[:i], b.stops[i+1:]...)
			return nil
		}
	}
	return ErrUnknownStop
}

// UpdateStop applies one field edit. City and date edits invalidate the
// stop's budget and schedule a debounced recompute instead of firing a
// request per keystroke.
func (b *Builder) UpdateStop(localID, field, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.touched = time.Now()
	sd := b.find(localID)
	if sd == nil {
		return ErrUnknownStop
	}
	switch field {
	case "city_id":
		sd.Stop.CityID = value
	case "start_date":
		sd.Stop.StartDate = value
	case "end_date":
		sd.Stop.EndDate = value
	default:
		return &ValidationError{Msg: fmt.Sprintf("unknown stop field %q", field)}
	}
	b.refreshState(sd)
	return nil
}

// refreshState recomputes the stop's state after an edit and, when the stop
// is complete enough to price, schedules a recompute. Caller holds b.mu.
func (b *Builder) refreshState(sd *StopDraft) {
	s := sd.Stop
	switch {
	case s.CityID != "" && s.StartDate != "" && s.EndDate != "" && s.StartDate <= s.EndDate:
		sd.State = StateBudgetPending
		b.scheduleRecompute(sd)
	case s.CityID != "" && (s.StartDate != "" || s.EndDate != ""):
		sd.State = StateDatesSet
	case s.CityID != "":
		sd.State = StateCityChosen
	default:
		sd.State = StateEmpty
	}
}

// scheduleRecompute replaces any pending recompute for the stop. The
// sequence number makes responses last-write-wins: a reply for an older
// generation is discarded even if its request happened to finish later.
// Caller holds b.mu.
func (b *Builder) scheduleRecompute(sd *StopDraft) {
	sd.seq++
	seq := sd.seq
	localID := sd.LocalID
	if sd.timer != nil {
		sd.timer.Stop()
	}
	sd.timer = time.AfterFunc(b.debounce, func() {
		b.recompute(localID, seq)
	})
}

func (b *Builder) recompute(localID string, seq uint64) {
	b.mu.Lock()
	sd := b.find(localID)
	if b.closed || sd == nil || sd.seq != seq {
		b.mu.Unlock()
		return
	}
	cityID := sd.Stop.CityID
	start, end := sd.Stop.StartDate, sd.Stop.EndDate
	ids := make([]string, 0, len(sd.Stop.Activities))
	for _, a := range sd.Stop.Activities {
		ids = append(ids, a.ActivityID)
	}
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	budget, err := b.budgets.EstimateBudget(ctx, cityID, start, end, ids)

	b.mu.Lock()
	defer b.mu.Unlock()
	sd = b.find(localID)
	if b.closed || sd == nil || sd.seq != seq {
		// the user edited again or left the builder; this result is stale
		return
	}
	if err != nil {
		// keep whatever budget was displayed before; never block the UI
		log.Printf("budget refresh failed for stop %s: %v", localID, err)
		if sd.Stop.EstimatedBudget != nil {
			sd.State = StateBudgetReady
		}
		return
	}
	sd.Stop.EstimatedBudget = &budget
	sd.State = StateBudgetReady
}

// OpenActivityPicker starts the activity-selection sub-flow for a stop. The
// returned pick carries everything the sub-flow needs plus the return path,
// keyed by a token so the result can be merged back deterministically.
func (b *Builder) OpenActivityPicker(localID, returnTo string) (PendingPick, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.touched = time.Now()
	sd := b.find(localID)
	if sd == nil {
		return PendingPick{}, ErrUnknownStop
	}
	if sd.Stop.CityID == "" {
		return PendingPick{}, ErrNoCity
	}
	pick := &PendingPick{
		Token:     uuid.New().String(),
		StopID:    localID,
		TripID:    b.trip.ID,
		CityID:    sd.Stop.CityID,
		Snapshot:  b.trip,
		StartDate: sd.Stop.StartDate,
		EndDate:   sd.Stop.EndDate,
		ReturnTo:  returnTo,
		Selected:  append([]trip.ActivityRef(nil), sd.Stop.Activities...),
		Created:   time.Now(),
	}
	b.picks[pick.Token] = pick
	return *pick, nil
}

// Pick looks up a pending pick by token.
func (b *Builder) Pick(token string) (PendingPick, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.picks[token]
	if !ok {
		return PendingPick{}, false
	}
	return *p, true
}

// Merge resolves a pick: the stop's activity set is replaced with the
// selection (set semantics, duplicates collapsed) and the budget is
// invalidated. Returns the sub-flow's return path.
func (b *Builder) Merge(token string, activityIDs []string, costs map[string]float64) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.touched = time.Now()
	pick, ok := b.picks[token]
	if !ok {
		return "", errors.New("no pending activity selection for this token")
	}
	delete(b.picks, token)
	sd := b.find(pick.StopID)
	if sd == nil {
		return pick.ReturnTo, ErrUnknownStop
	}
	seen := map[string]bool{}
	refs := make([]trip.ActivityRef, 0, len(activityIDs))
	for _, id := range activityIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, trip.ActivityRef{ActivityID: id, Cost: costs[id]})
	}
	sd.Stop.Activities = refs
	b.refreshState(sd)
	if sd.State != StateBudgetPending {
		// dates not complete yet; budget recompute waits for them
		sd.State = StateBudgetPending
	}
	return pick.ReturnTo, nil
}

// Save validates every stop, renumbers the order contiguously and persists
// the stops one at a time, in order. Saving is deliberately sequential so
// the backend assigns stop_order without races; the price is that a failure
// partway leaves earlier stops committed, which PartialSaveError reports.
func (b *Builder) Save(ctx context.Context, saver StopSaver) error {
	b.mu.Lock()
	for i, sd := range b.stops {
		switch {
		case sd.Stop.CityID == "":
			b.mu.Unlock()
			return &ValidationError{Msg: fmt.Sprintf("stop %d needs a city before saving", i+1)}
		case sd.Stop.StartDate == "":
			b.mu.Unlock()
			return &ValidationError{Msg: fmt.Sprintf("stop %d needs a start date before saving", i+1)}
		case sd.Stop.EndDate == "":
			b.mu.Unlock()
			return &ValidationError{Msg: fmt.Sprintf("stop %d needs an end date before saving", i+1)}
		}
	}
	payload := make([]trip.Stop, len(b.stops))
	for i, sd := range b.stops {
		s := sd.Stop
		s.TripID = b.trip.ID
		s.StopOrder = i + 1
		payload[i] = s
	}
	b.mu.Unlock()

	for i, s := range payload {
		if _, err := saver.CreateStop(ctx, s); err != nil {
			return &PartialSaveError{Index: i + 1, Err: err}
		}
	}
	return nil
}

// Close cancels pending recompute timers so a late response can never touch
// an abandoned builder.
func (b *Builder) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for _, sd := range b.stops {
		if sd.timer != nil {
			sd.timer.Stop()
		}
	}
}

// find returns the draft for a local id. Caller holds b.mu.
func (b *Builder) find(localID string) *StopDraft {
	for _, sd := range b.stops {
		if sd.LocalID == localID {
			return sd
		}
	}
	return nil
}
