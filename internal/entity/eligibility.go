package entity

import "time"

// SlotQuarter is the planning grid resolution.
const SlotQuarter = 15 * time.Minute

// SlotEligible reports whether the quarter starting at ts may carry workers
// for this order. Sundays are always closed; Saturdays only open with the
// Saturday-work flag; full-day orders run 08:00-16:00, two-shift orders
// 06:00-14:00 and/or 14:00-22:00 depending on the active shifts. Upper
// bounds are exclusive.
func (o *Order) SlotEligible(ts time.Time) bool {
	switch ts.Weekday() {
	case time.Sunday:
		return false
	case time.Saturday:
		if !o.SaturdayWork {
			return false
		}
	}

	h := ts.Hour()
	switch o.ShiftMode {
	case ShiftModeFullDay:
		return h >= 8 && h < 16
	case ShiftModeTwoShift:
		if o.MorningShift && h >= 6 && h < 14 {
			return true
		}
		if o.AfternoonShift && h >= 14 && h < 22 {
			return true
		}
	}
	return false
}

// NextQuarter returns the first quarter boundary strictly after ts.
func NextQuarter(ts time.Time) time.Time {
	aligned := ts.Truncate(SlotQuarter)
	return aligned.Add(SlotQuarter)
}

// EndOfDay returns the last instant of the calendar day of ts useful as an
// inclusive planning horizon.
func EndOfDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, ts.Location())
}
