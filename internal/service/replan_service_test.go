package service

import (
	"context"
	"testing"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/config"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/testutil"
	"gorm.io/gorm"
)

// Rate 25 units per worker-quarter keeps the arithmetic readable: 100 units
// remaining = 4 worker-quarters.
func newTestReplanner() *ReplanService {
	return NewReplanService(config.PlanningConfig{
		RatePerWorkerQuarter: 25,
		MaxWorkersPerSlot:    10,
	})
}

func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 9, 7, hour, minute, 0, 0, time.Local)
}

func seedSlot(t *testing.T, repos *repository.Repositories, lineID, orderID string, ts time.Time, workers int) {
	t.Helper()
	if _, _, err := repos.Planning.Upsert(context.Background(), lineID, orderID, ts, workers); err != nil {
		t.Fatalf("Failed to seed slot: %v", err)
	}
}

func cellWorkers(t *testing.T, repos *repository.Repositories, lineID, orderID string, ts time.Time) int {
	t.Helper()
	slot, err := repos.Planning.GetCell(context.Background(), lineID, orderID, ts)
	if err != nil {
		t.Fatalf("Failed to read cell %v: %v", ts, err)
	}
	return slot.Workers
}

func saveOrder(t *testing.T, db *gorm.DB, order *entity.Order) {
	t.Helper()
	if err := db.Save(order).Error; err != nil {
		t.Fatalf("Failed to save order: %v", err)
	}
}

func TestReplanShrinkTrimsLatestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	replanner := newTestReplanner()

	line := testutil.SeedLine(t, db, "L1", "Line 1")
	order := testutil.SeedOrder(t, db, 1001, 100, mondayAt(0, 0))

	// Four planned quarters at one worker each.
	for _, ts := range []time.Time{mondayAt(8, 0), mondayAt(8, 15), mondayAt(8, 30), mondayAt(8, 45)} {
		seedSlot(t, repos, line.ID, order.ID, ts, 1)
	}

	// 50 produced leaves 50 remaining = 2 worker-quarters. Two of the four
	// must go, latest first.
	order.WorkedQuantity = 50
	saveOrder(t, db, order)

	result, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(7, 0))
	if err != nil {
		t.Fatalf("AdjustForWorkedQuantity failed: %v", err)
	}
	if result.QuartersRemoved != 2 || result.QuartersAdded != 0 {
		t.Fatalf("result = %+v, want 2 removed, 0 added", result)
	}

	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 0)); got != 1 {
		t.Errorf("08:00 = %d, want 1 (earliest slots survive)", got)
	}
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 15)); got != 1 {
		t.Errorf("08:15 = %d, want 1", got)
	}
	// Trimmed slots stay on record at zero, superseding the old value.
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 30)); got != 0 {
		t.Errorf("08:30 = %d, want 0", got)
	}
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 45)); got != 0 {
		t.Errorf("08:45 = %d, want 0", got)
	}
}

func TestReplanNeverTouchesPastSlots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	replanner := newTestReplanner()

	line := testutil.SeedLine(t, db, "L1", "Line 1")
	order := testutil.SeedOrder(t, db, 1002, 100, mondayAt(0, 0))

	seedSlot(t, repos, line.ID, order.ID, mondayAt(8, 0), 3) // already worked
	seedSlot(t, repos, line.ID, order.ID, mondayAt(14, 0), 3)

	// Everything produced: required drops to zero, but only the future slot
	// may be trimmed.
	order.WorkedQuantity = 100
	saveOrder(t, db, order)

	result, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(12, 0))
	if err != nil {
		t.Fatalf("AdjustForWorkedQuantity failed: %v", err)
	}
	if result.QuartersRemoved != 3 {
		t.Fatalf("removed = %d, want 3 (future slot only)", result.QuartersRemoved)
	}
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 0)); got != 3 {
		t.Errorf("past slot = %d, want 3 untouched", got)
	}
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(14, 0)); got != 0 {
		t.Errorf("future slot = %d, want 0", got)
	}
}

func TestReplanGrowFillsEarliestEligibleQuarters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	replanner := newTestReplanner()

	line := testutil.SeedLine(t, db, "L1", "Line 1")
	order := testutil.SeedOrder(t, db, 1003, 50, mondayAt(0, 0))

	// 50 remaining = 2 worker-quarters, no slots planned yet. Full-day
	// orders open at 08:00, so from a 07:00 viewpoint the first eligible
	// quarter is 08:00 and it has room for both.
	result, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(7, 0))
	if err != nil {
		t.Fatalf("AdjustForWorkedQuantity failed: %v", err)
	}
	if result.QuartersAdded != 2 || result.QuartersRemoved != 0 {
		t.Fatalf("result = %+v, want 2 added, 0 removed", result)
	}
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 0)); got != 2 {
		t.Errorf("08:00 = %d, want 2 (front-loaded)", got)
	}
	if _, err := repos.Planning.GetCell(context.Background(), line.ID, order.ID, mondayAt(7, 15)); err == nil {
		t.Error("no slot may be created before the 08:00 shift start")
	}
}

func TestReplanGrowRespectsLineCapacity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	replanner := newTestReplanner()

	line := testutil.SeedLine(t, db, "L1", "Line 1")
	order := testutil.SeedOrder(t, db, 1004, 50, mondayAt(0, 0))
	other := testutil.SeedOrder(t, db, 1005, 500, mondayAt(0, 0))

	// Another order already holds 9 of the 10 seats at 08:00.
	seedSlot(t, repos, line.ID, other.ID, mondayAt(8, 0), 9)

	result, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(7, 0))
	if err != nil {
		t.Fatalf("AdjustForWorkedQuantity failed: %v", err)
	}
	if result.QuartersAdded != 2 {
		t.Fatalf("added = %d, want 2", result.QuartersAdded)
	}
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 0)); got != 1 {
		t.Errorf("08:00 = %d, want 1 (only one seat left)", got)
	}
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 15)); got != 1 {
		t.Errorf("08:15 = %d, want 1 (spillover to the next quarter)", got)
	}
}

func TestReplanCapacityIgnoresRemovedOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	replanner := newTestReplanner()

	line := testutil.SeedLine(t, db, "L1", "Line 1")
	order := testutil.SeedOrder(t, db, 1009, 50, mondayAt(0, 0))
	ghost := testutil.SeedOrder(t, db, 1010, 500, mondayAt(0, 0))
	ghost.Removed = true
	saveOrder(t, db, ghost)

	// The removed order's old slots fill the 08:00 cell on paper, but dead
	// slots are not occupancy.
	seedSlot(t, repos, line.ID, ghost.ID, mondayAt(8, 0), 10)

	result, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(7, 0))
	if err != nil {
		t.Fatalf("AdjustForWorkedQuantity failed: %v", err)
	}
	if result.QuartersAdded != 2 {
		t.Fatalf("added = %d, want 2", result.QuartersAdded)
	}
	if got := cellWorkers(t, repos, line.ID, order.ID, mondayAt(8, 0)); got != 2 {
		t.Errorf("08:00 = %d, want 2 (the removed order's slots free the cell)", got)
	}
}

func TestReplanGrowStopsAtDeliveryDeadline(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	replanner := newTestReplanner()

	testutil.SeedLine(t, db, "L1", "Line 1")
	// Delivery was yesterday: there is no future horizon to plan into.
	order := testutil.SeedOrder(t, db, 1006, 50, mondayAt(0, 0).AddDate(0, 0, -1))

	result, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(7, 0))
	if err != nil {
		t.Fatalf("AdjustForWorkedQuantity failed: %v", err)
	}
	if result.QuartersAdded != 0 || result.QuartersRemoved != 0 {
		t.Fatalf("result = %+v, want no changes past the deadline", result)
	}
}

func TestReplanIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	replanner := newTestReplanner()

	testutil.SeedLine(t, db, "L1", "Line 1")
	order := testutil.SeedOrder(t, db, 1007, 100, mondayAt(0, 0))

	first, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(7, 0))
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if first.QuartersAdded != 4 {
		t.Fatalf("first run added = %d, want 4", first.QuartersAdded)
	}

	second, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(7, 0))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if second.QuartersAdded != 0 || second.QuartersRemoved != 0 {
		t.Fatalf("second run = %+v, want a no-op", second)
	}
}

func TestReplanPrefersLinesTheOrderOccupies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	replanner := newTestReplanner()

	lineA := testutil.SeedLine(t, db, "LA", "Line A")
	lineB := testutil.SeedLine(t, db, "LB", "Line B")
	order := testutil.SeedOrder(t, db, 1008, 75, mondayAt(0, 0))

	// The order already runs on line B later in the day.
	seedSlot(t, repos, lineB.ID, order.ID, mondayAt(15, 0), 1)

	// 75 remaining = 3 quarters, one already planned: two to add.
	result, err := replanner.AdjustForWorkedQuantity(context.Background(), repos, order, mondayAt(7, 0))
	if err != nil {
		t.Fatalf("AdjustForWorkedQuantity failed: %v", err)
	}
	if result.QuartersAdded != 2 {
		t.Fatalf("added = %d, want 2", result.QuartersAdded)
	}
	if got := cellWorkers(t, repos, lineB.ID, order.ID, mondayAt(8, 0)); got != 2 {
		t.Errorf("occupied line 08:00 = %d, want 2", got)
	}
	if _, err := repos.Planning.GetCell(context.Background(), lineA.ID, order.ID, mondayAt(8, 0)); err == nil {
		t.Error("growth must target the line the order already occupies")
	}
}
