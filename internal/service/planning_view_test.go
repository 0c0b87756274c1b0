package service

import (
	"testing"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
)

func slotAt(orderID, lineID string, ts time.Time, workers int) entity.PlanningSlot {
	return entity.PlanningSlot{
		OrderID:  orderID,
		LineID:   lineID,
		SlotTime: ts,
		Workers:  workers,
	}
}

func TestGroupSlots(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	tuesday := monday.AddDate(0, 0, 1)

	slots := []entity.PlanningSlot{
		slotAt("order-a", "line-1", monday.Add(8*time.Hour), 2),
		slotAt("order-a", "line-1", monday.Add(8*time.Hour+15*time.Minute), 2),
		slotAt("order-a", "line-1", monday.Add(9*time.Hour), 0), // zero write stays visible
		slotAt("order-a", "line-2", monday.Add(8*time.Hour), 1),
		slotAt("order-a", "line-1", tuesday.Add(8*time.Hour), 3),
	}

	rows := groupSlots(slots)
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3 (order,line,day) groups", len(rows))
	}

	// Sorted by date, then line, then order.
	first := rows[0]
	if first.Date != "2026-09-07" || first.LineUUID != "line-1" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.Hours["0800"] != 2 || first.Hours["0815"] != 2 {
		t.Errorf("hours map = %v, want 0800/0815 at 2", first.Hours)
	}
	if v, ok := first.Hours["0900"]; !ok || v != 0 {
		t.Errorf("zero-worker quarter must appear in the map, got %v", first.Hours)
	}
	if rows[1].LineUUID != "line-2" {
		t.Errorf("second row line = %s, want line-2", rows[1].LineUUID)
	}
	if rows[2].Date != "2026-09-08" {
		t.Errorf("third row date = %s, want 2026-09-08", rows[2].Date)
	}
}

func TestHourView(t *testing.T) {
	hours := map[string]int{
		"0800": 2, "0815": 2, "0830": 2, "0845": 2,
		"0900": 3, "0915": 1, "0930": 3, "0945": 3,
		"1000": 4, // partial hour
	}

	view := HourView(hours)

	if cell := view["0800"]; cell.Mixed || cell.Workers != 2 {
		t.Errorf("uniform hour = %+v, want workers 2, not mixed", cell)
	}
	if cell := view["0900"]; !cell.Mixed || cell.Workers != 1 {
		t.Errorf("uneven hour = %+v, want min 1 and mixed", cell)
	}
	if cell := view["1000"]; cell.Mixed || cell.Workers != 4 {
		t.Errorf("single-quarter hour = %+v, want workers 4, not mixed", cell)
	}
	if _, ok := view["1100"]; ok {
		t.Error("hours with no quarters must not appear in the view")
	}
}

func TestHourKey(t *testing.T) {
	ts := time.Date(2026, 9, 7, 6, 5, 0, 0, time.Local)
	if got := hourKey(ts); got != "0605" {
		t.Errorf("hourKey = %q, want zero-padded 0605", got)
	}
}
