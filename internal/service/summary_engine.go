package service

import (
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
)

// DayHeadcount is the contracted staffing of one calendar day, by
// qualification. Total counts every active contract regardless of role.
type DayHeadcount struct {
	Total       int
	Supervisors int
	Warehouse   int
}

// CountActiveContracts derives the contracted headcount for a day from the
// raw contract list. Recomputed on demand, never cached.
func CountActiveContracts(contracts []entity.ContractRecord, day time.Time) DayHeadcount {
	var head DayHeadcount
	for i := range contracts {
		c := &contracts[i]
		if !c.ActiveOn(day) {
			continue
		}
		head.Total++
		switch c.Qualification {
		case entity.QualificationSupervisor:
			head.Supervisors++
		case entity.QualificationWarehouse:
			head.Warehouse++
		}
	}
	return head
}

// QuarterSummary is the staffing picture of one weekday quarter-hour.
// Available may be negative: that is a reporting signal for the board, not
// a constraint violation.
type QuarterSummary struct {
	SlotTime    time.Time
	Contracted  int
	Absences    int
	Supervisors int
	Warehouse   int
	Committed   int
	ToAssign    int
	Available   int

	// Customized marks figures backed by an override row, including
	// overrides whose value equals the computed default.
	AbsencesCustom    bool
	SupervisorsCustom bool
	WarehouseCustom   bool
}

// ComputeQuarter combines contracted defaults, manual overrides and the
// committed slot total into the summary figures for one quarter.
func ComputeQuarter(ts time.Time, head DayHeadcount, overrides map[string]entity.SummaryOverride, committed int) QuarterSummary {
	q := QuarterSummary{
		SlotTime:    ts,
		Contracted:  head.Total,
		Absences:    0,
		Supervisors: head.Supervisors,
		Warehouse:   head.Warehouse,
		Committed:   committed,
	}

	if ov, ok := overrides[entity.SummaryKindAbsences]; ok {
		q.Absences = ov.Value
		q.AbsencesCustom = true
	}
	if ov, ok := overrides[entity.SummaryKindSupervisors]; ok {
		q.Supervisors = ov.Value
		q.SupervisorsCustom = true
	}
	if ov, ok := overrides[entity.SummaryKindWarehouse]; ok {
		q.Warehouse = ov.Value
		q.WarehouseCustom = true
	}

	q.ToAssign = q.Contracted - q.Absences - q.Supervisors - q.Warehouse
	q.Available = q.ToAssign - q.Committed
	return q
}

// Board working span: quarters from 06:00 up to (excluding) 22:00, the
// union of every shift window.
const (
	boardStartHour = 6
	boardEndHour   = 22
)

// DayQuarters lists the board quarters of one day. Weekends have no summary
// rows at all: the board renders them as dashes and never lets them be
// edited.
func DayQuarters(day time.Time) []time.Time {
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return nil
	}
	quarters := make([]time.Time, 0, (boardEndHour-boardStartHour)*4)
	y, m, d := day.Date()
	for h := boardStartHour; h < boardEndHour; h++ {
		for min := 0; min < 60; min += 15 {
			quarters = append(quarters, time.Date(y, m, d, h, min, 0, 0, day.Location()))
		}
	}
	return quarters
}
