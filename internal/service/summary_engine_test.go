package service

import (
	"testing"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func openContract(qualification string, start time.Time) entity.ContractRecord {
	return entity.ContractRecord{
		ID:            "c-" + qualification + start.Format("20060102"),
		EmployeeID:    "e-" + qualification,
		Qualification: qualification,
		StartDate:     start,
	}
}

func TestCountActiveContracts(t *testing.T) {
	jan := day(2026, 1, 1)
	ended := day(2026, 3, 31)

	leaver := openContract(entity.QualificationWorker, jan)
	leaver.EndDate = &ended

	contracts := []entity.ContractRecord{
		openContract(entity.QualificationWorker, jan),
		openContract(entity.QualificationWorker, jan),
		openContract(entity.QualificationSupervisor, jan),
		openContract(entity.QualificationWarehouse, jan),
		leaver,
		openContract(entity.QualificationWorker, day(2026, 10, 1)), // not started yet
	}

	head := CountActiveContracts(contracts, day(2026, 2, 2))
	if head.Total != 5 || head.Supervisors != 1 || head.Warehouse != 1 {
		t.Fatalf("February headcount = %+v, want total 5, supervisors 1, warehouse 1", head)
	}

	// After the fixed-term contract ends the total drops.
	head = CountActiveContracts(contracts, day(2026, 4, 1))
	if head.Total != 4 {
		t.Fatalf("April total = %d, want 4", head.Total)
	}
}

func TestComputeQuarterDefaults(t *testing.T) {
	ts := time.Date(2026, 9, 7, 8, 0, 0, 0, time.Local)
	head := DayHeadcount{Total: 10, Supervisors: 2, Warehouse: 1}

	q := ComputeQuarter(ts, head, nil, 4)

	if q.Absences != 0 {
		t.Errorf("default absences = %d, want 0", q.Absences)
	}
	// to_assign = contracted - absences - supervisors - warehouse
	if q.ToAssign != 7 {
		t.Errorf("to_assign = %d, want 7", q.ToAssign)
	}
	// available = to_assign - committed
	if q.Available != 3 {
		t.Errorf("available = %d, want 3", q.Available)
	}
	if q.AbsencesCustom || q.SupervisorsCustom || q.WarehouseCustom {
		t.Error("no override rows, nothing may be marked customized")
	}
}

func TestComputeQuarterOverrides(t *testing.T) {
	ts := time.Date(2026, 9, 7, 8, 0, 0, 0, time.Local)
	head := DayHeadcount{Total: 10, Supervisors: 2, Warehouse: 1}

	overrides := map[string]entity.SummaryOverride{
		entity.SummaryKindAbsences:    {Kind: entity.SummaryKindAbsences, Value: 3},
		entity.SummaryKindSupervisors: {Kind: entity.SummaryKindSupervisors, Value: 2}, // equals the default
	}

	q := ComputeQuarter(ts, head, overrides, 0)

	if q.Absences != 3 {
		t.Errorf("absences = %d, want 3 from override", q.Absences)
	}
	if !q.AbsencesCustom {
		t.Error("absences override must be marked customized")
	}
	// Presence of the row decides, not the value.
	if !q.SupervisorsCustom {
		t.Error("override equal to the default is still customized")
	}
	if q.WarehouseCustom {
		t.Error("warehouse has no override row")
	}
	if q.ToAssign != 10-3-2-1 {
		t.Errorf("to_assign = %d, want 4", q.ToAssign)
	}
}

func TestComputeQuarterAvailableMayGoNegative(t *testing.T) {
	ts := time.Date(2026, 9, 7, 8, 0, 0, 0, time.Local)
	head := DayHeadcount{Total: 3}

	q := ComputeQuarter(ts, head, nil, 5)
	if q.Available != -2 {
		t.Errorf("available = %d, want -2 (overcommitment is reported, not clamped)", q.Available)
	}
}

func TestDayQuarters(t *testing.T) {
	monday := day(2026, 9, 7)
	quarters := DayQuarters(monday)
	if len(quarters) != 64 {
		t.Fatalf("weekday quarter count = %d, want 64 (06:00-22:00)", len(quarters))
	}
	first, last := quarters[0], quarters[len(quarters)-1]
	if first.Hour() != 6 || first.Minute() != 0 {
		t.Errorf("first quarter = %v, want 06:00", first)
	}
	if last.Hour() != 21 || last.Minute() != 45 {
		t.Errorf("last quarter = %v, want 21:45", last)
	}

	if DayQuarters(day(2026, 9, 5)) != nil {
		t.Error("Saturday must have no summary quarters")
	}
	if DayQuarters(day(2026, 9, 6)) != nil {
		t.Error("Sunday must have no summary quarters")
	}
}
