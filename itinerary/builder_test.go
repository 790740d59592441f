package itinerary

import (
	"context"
	"sync"
	"testing"
	"time"

	"trotter/trip"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBudgets struct {
	mu    sync.Mutex
	calls int
	total float64
	err   error
}

func (f *fakeBudgets) EstimateBudget(ctx context.Context, cityID, start, end string, ids []string) (trip.Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return trip.Budget{}, f.err
	}
	return trip.Budget{TotalCost: f.total}, nil
}

func (f *fakeBudgets) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testTrip() trip.Trip {
	return trip.Trip{ID: "t1", Title: "Bali", StartDate: "2026-02-05", EndDate: "2026-02-10"}
}

// quietBuilder returns a builder whose debounce timers never fire, so tests
// drive recompute by hand.
func quietBuilder(f *fakeBudgets) *Builder {
	b := NewBuilder(testTrip(), f)
	b.debounce = time.Hour
	return b
}

func TestNewBuilderStartsWithOneStop(t *testing.T) {
	b := quietBuilder(&fakeBudgets{})
	stops := b.Stops()
	require.Len(t, stops, 1)
	assert.Equal(t, StateEmpty, stops[0].State)
	assert.Equal(t, 1, stops[0].Stop.StopOrder)
}

func TestRemoveLastStopRejected(t *testing.T) {
	b := quietBuilder(&fakeBudgets{})
	id := b.Stops()[0].LocalID

	err := b.RemoveStop(id)
	assert.ErrorIs(t, err, ErrLastStop)
	assert.Len(t, b.Stops(), 1, "the stop list must be unchanged")

	// with two stops removal works and the other keeps its order
	b.AddStop()
	require.NoError(t, b.RemoveStop(id))
	assert.Len(t, b.Stops(), 1)
}

func TestUpdateStopStateTransitions(t *testing.T) {
	b := quietBuilder(&fakeBudgets{})
	id := b.Stops()[0].LocalID

	require.NoError(t, b.UpdateStop(id, "city_id", "paris"))
	assert.Equal(t, StateCityChosen, b.Stops()[0].State)

	require.NoError(t, b.UpdateStop(id, "start_date", "2026-02-05"))
	assert.Equal(t, StateDatesSet, b.Stops()[0].State)

	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-07"))
	assert.Equal(t, StateBudgetPending, b.Stops()[0].State)

	err := b.UpdateStop(id, "color", "blue")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestStaleBudgetResponseDiscarded(t *testing.T) {
	f := &fakeBudgets{}
	b := quietBuilder(f)
	id := b.Stops()[0].LocalID

	require.NoError(t, b.UpdateStop(id, "city_id", "paris"))
	require.NoError(t, b.UpdateStop(id, "start_date", "2026-02-05"))
	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-07")) // generation 1
	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-09")) // generation 2

	latest := b.stops[0].seq

	// the newer edit's response arrives first...
	f.total = 900
	b.recompute(id, latest)
	require.NotNil(t, b.Stops()[0].Stop.EstimatedBudget)
	assert.Equal(t, 900.0, b.Stops()[0].Stop.EstimatedBudget.TotalCost)

	// ...then the stale one resolves and must not overwrite it
	f.total = 111
	b.recompute(id, latest-1)
	assert.Equal(t, 900.0, b.Stops()[0].Stop.EstimatedBudget.TotalCost)
	assert.Equal(t, StateBudgetReady, b.Stops()[0].State)
}

func TestFailedRecomputeKeepsPriorBudget(t *testing.T) {
	f := &fakeBudgets{total: 500}
	b := quietBuilder(f)
	id := b.Stops()[0].LocalID

	require.NoError(t, b.UpdateStop(id, "city_id", "paris"))
	require.NoError(t, b.UpdateStop(id, "start_date", "2026-02-05"))
	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-07"))
	b.recompute(id, b.stops[0].seq)
	require.Equal(t, 500.0, b.Stops()[0].Stop.EstimatedBudget.TotalCost)

	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-08"))
	f.err = errors.New("backend down")
	b.recompute(id, b.stops[0].seq)

	got := b.Stops()[0]
	require.NotNil(t, got.Stop.EstimatedBudget)
	assert.Equal(t, 500.0, got.Stop.EstimatedBudget.TotalCost)
	assert.Equal(t, StateBudgetReady, got.State)
}

func TestDebounceCollapsesRapidEdits(t *testing.T) {
	f := &fakeBudgets{total: 5}
	b := NewBuilder(testTrip(), f)
	b.debounce = 5 * time.Millisecond
	id := b.Stops()[0].LocalID

	require.NoError(t, b.UpdateStop(id, "city_id", "paris"))
	require.NoError(t, b.UpdateStop(id, "start_date", "2026-02-05"))
	// three rapid date edits: only the last one should hit the backend
	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-06"))
	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-07"))
	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-08"))

	assert.Eventually(t, func() bool {
		return b.Stops()[0].State == StateBudgetReady
	}, time.Second, 2*time.Millisecond)
	assert.Equal(t, 1, f.callCount())
}

func TestCloseDropsLateResponses(t *testing.T) {
	f := &fakeBudgets{total: 700}
	b := quietBuilder(f)
	id := b.Stops()[0].LocalID

	require.NoError(t, b.UpdateStop(id, "city_id", "paris"))
	require.NoError(t, b.UpdateStop(id, "start_date", "2026-02-05"))
	require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-07"))
	seq := b.stops[0].seq

	b.Close()
	b.recompute(id, seq)
	assert.Nil(t, b.Stops()[0].Stop.EstimatedBudget)
}

func TestOpenActivityPickerRequiresCity(t *testing.T) {
	b := quietBuilder(&fakeBudgets{})
	id := b.Stops()[0].LocalID

	_, err := b.OpenActivityPicker(id, "/trips/t1/itinerary")
	assert.ErrorIs(t, err, ErrNoCity)

	require.NoError(t, b.UpdateStop(id, "city_id", "paris"))
	pick, err := b.OpenActivityPicker(id, "/trips/t1/itinerary")
	require.NoError(t, err)
	assert.Equal(t, "paris", pick.CityID)
	assert.Equal(t, "t1", pick.TripID)
	assert.Equal(t, "Bali", pick.Snapshot.Title)

	got, ok := b.Pick(pick.Token)
	require.True(t, ok)
	assert.Equal(t, id, got.StopID)
}

func TestMergeReplacesSelectionAsSet(t *testing.T) {
	b := quietBuilder(&fakeBudgets{})
	id := b.Stops()[0].LocalID
	require.NoError(t, b.UpdateStop(id, "city_id", "paris"))
	pick, err := b.OpenActivityPicker(id, "/back")
	require.NoError(t, err)

	returnTo, err := b.Merge(pick.Token, []string{"a1", "a2", "a1"}, map[string]float64{"a1": 45, "a2": 85})
	require.NoError(t, err)
	assert.Equal(t, "/back", returnTo)

	got := b.Stops()[0]
	require.Len(t, got.Stop.Activities, 2)
	assert.Equal(t, 45.0, got.Stop.Activities[0].Cost)
	assert.Equal(t, StateBudgetPending, got.State)

	// the pick is consumed
	_, err = b.Merge(pick.Token, nil, nil)
	assert.Error(t, err)
}

type fakeSaver struct {
	saved  []trip.Stop
	failAt int // stop_order that fails; 0 = never
}

func (f *fakeSaver) CreateStop(ctx context.Context, s trip.Stop) (trip.Stop, error) {
	if f.failAt != 0 && s.StopOrder == f.failAt {
		return trip.Stop{}, errors.New("boom")
	}
	f.saved = append(f.saved, s)
	return s, nil
}

func filledBuilder(t *testing.T, n int) *Builder {
	t.Helper()
	b := quietBuilder(&fakeBudgets{})
	ids := []string{b.Stops()[0].LocalID}
	for i := 1; i < n; i++ {
		ids = append(ids, b.AddStop())
	}
	for i, id := range ids {
		require.NoError(t, b.UpdateStop(id, "city_id", "city"+string(rune('a'+i))))
		require.NoError(t, b.UpdateStop(id, "start_date", "2026-02-05"))
		require.NoError(t, b.UpdateStop(id, "end_date", "2026-02-07"))
	}
	return b
}

func TestSaveValidatesBeforePersisting(t *testing.T) {
	b := filledBuilder(t, 2)
	second := b.Stops()[1].LocalID
	require.NoError(t, b.UpdateStop(second, "city_id", ""))

	saver := &fakeSaver{}
	err := b.Save(context.Background(), saver)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "stop 2")
	assert.Contains(t, verr.Msg, "city")
	assert.Empty(t, saver.saved, "validation failures must not touch the backend")
}

func TestSaveStopsAtFirstFailure(t *testing.T) {
	b := filledBuilder(t, 3)
	saver := &fakeSaver{failAt: 2}

	err := b.Save(context.Background(), saver)
	var perr *PartialSaveError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Index)
	assert.Contains(t, err.Error(), "stop 2")

	// stop 1 is committed, stop 3 was never attempted
	require.Len(t, saver.saved, 1)
	assert.Equal(t, 1, saver.saved[0].StopOrder)
}

func TestSaveRenumbersContiguously(t *testing.T) {
	b := filledBuilder(t, 3)
	require.NoError(t, b.RemoveStop(b.Stops()[1].LocalID))

	saver := &fakeSaver{}
	require.NoError(t, b.Save(context.Background(), saver))
	require.Len(t, saver.saved, 2)
	assert.Equal(t, 1, saver.saved[0].StopOrder)
	assert.Equal(t, 2, saver.saved[1].StopOrder)
}

func TestWarningsFlagOverlappingDates(t *testing.T) {
	b := quietBuilder(&fakeBudgets{})
	first := b.Stops()[0].LocalID
	second := b.AddStop()

	require.NoError(t, b.UpdateStop(first, "city_id", "paris"))
	require.NoError(t, b.UpdateStop(first, "start_date", "2026-02-05"))
	require.NoError(t, b.UpdateStop(first, "end_date", "2026-02-08"))
	require.NoError(t, b.UpdateStop(second, "city_id", "rome"))
	require.NoError(t, b.UpdateStop(second, "start_date", "2026-02-07"))
	require.NoError(t, b.UpdateStop(second, "end_date", "2026-02-10"))

	warns := b.Warnings()
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "stop 2 starts before stop 1 ends")
}

func TestStoreReusesAndDropsBuilders(t *testing.T) {
	s := NewStore(&fakeBudgets{})
	b1 := s.Get("u1", testTrip())
	b2 := s.Get("u1", testTrip())
	assert.Same(t, b1, b2)

	other := s.Get("u2", testTrip())
	assert.NotSame(t, b1, other)

	id := b1.Stops()[0].LocalID
	require.NoError(t, b1.UpdateStop(id, "city_id", "paris"))
	pick, err := b1.OpenActivityPicker(id, "/back")
	require.NoError(t, err)

	found, got, ok := s.LookupPick(pick.Token)
	require.True(t, ok)
	assert.Same(t, b1, found)
	assert.Equal(t, id, got.StopID)

	s.Drop("u1", "t1")
	_, ok = s.Find("u1", "t1")
	assert.False(t, ok)
	_, _, ok = s.LookupPick(pick.Token)
	assert.False(t, ok)
}
