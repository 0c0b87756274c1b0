package entity

import (
	"testing"
	"time"
)

// 2026-09-07 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2026, 9, 7, hour, minute, 0, 0, time.Local)
}

func TestFullDayWindow(t *testing.T) {
	order := &Order{ShiftMode: ShiftModeFullDay}

	cases := []struct {
		hour int
		want bool
	}{
		{7, false},
		{8, true},
		{12, true},
		{15, true},
		{16, false}, // upper bound exclusive
		{20, false},
	}
	for _, tc := range cases {
		if got := order.SlotEligible(monday(tc.hour, 0)); got != tc.want {
			t.Errorf("full-day hour %d: got %v, want %v", tc.hour, got, tc.want)
		}
	}

	// The last eligible quarter of the day.
	if !order.SlotEligible(monday(15, 45)) {
		t.Error("15:45 must be eligible for a full-day order")
	}
}

func TestTwoShiftWindows(t *testing.T) {
	order := &Order{ShiftMode: ShiftModeTwoShift, MorningShift: true}

	if order.SlotEligible(monday(5, 45)) {
		t.Error("05:45 before the morning shift must be ineligible")
	}
	if !order.SlotEligible(monday(6, 0)) {
		t.Error("06:00 must be eligible with the morning shift active")
	}
	if !order.SlotEligible(monday(13, 45)) {
		t.Error("13:45 must be eligible with the morning shift active")
	}
	if order.SlotEligible(monday(14, 0)) {
		t.Error("14:00 must be ineligible without the afternoon shift")
	}

	order.AfternoonShift = true
	if !order.SlotEligible(monday(14, 0)) {
		t.Error("14:00 must be eligible with the afternoon shift active")
	}
	if !order.SlotEligible(monday(21, 45)) {
		t.Error("21:45 must be eligible with the afternoon shift active")
	}
	if order.SlotEligible(monday(22, 0)) {
		t.Error("22:00 must be ineligible, upper bound exclusive")
	}

	order.MorningShift = false
	if order.SlotEligible(monday(10, 0)) {
		t.Error("morning hours must be ineligible with only the afternoon shift")
	}
}

func TestWeekendRules(t *testing.T) {
	saturday := time.Date(2026, 9, 5, 10, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 9, 6, 10, 0, 0, 0, time.Local)

	order := &Order{ShiftMode: ShiftModeTwoShift, MorningShift: true, AfternoonShift: true}

	if order.SlotEligible(saturday) {
		t.Error("Saturday must be ineligible without the Saturday-work flag")
	}
	if order.SlotEligible(sunday) {
		t.Error("Sunday must always be ineligible")
	}

	order.SaturdayWork = true
	if !order.SlotEligible(saturday) {
		t.Error("Saturday must be eligible with the Saturday-work flag")
	}
	if order.SlotEligible(sunday) {
		t.Error("Sunday must stay ineligible even with the Saturday-work flag")
	}
}

func TestNextQuarter(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{monday(9, 0), monday(9, 15)},
		{monday(9, 7), monday(9, 15)},
		{monday(9, 59), monday(10, 0)},
	}
	for _, tc := range cases {
		if got := NextQuarter(tc.in); !got.Equal(tc.want) {
			t.Errorf("NextQuarter(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestContractActiveOn(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.Local)
	contract := &ContractRecord{StartDate: start, EndDate: &end}

	if contract.ActiveOn(time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)) {
		t.Error("contract must be inactive before its start")
	}
	if !contract.ActiveOn(start) {
		t.Error("contract must be active on its start day")
	}
	if !contract.ActiveOn(end) {
		t.Error("contract must be active on its end day")
	}
	if contract.ActiveOn(time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("contract must be inactive after its end")
	}

	openEnded := &ContractRecord{StartDate: start}
	if !openEnded.ActiveOn(time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("open-ended contract must stay active")
	}
}
