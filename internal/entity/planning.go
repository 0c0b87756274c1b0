package entity

import "time"

// PlanningSlot assigns a worker count to one (line, order, quarter-hour)
// cell. A count of zero is equivalent to the absence of a record; a zero
// write supersedes the previous value instead of deleting the row.
type PlanningSlot struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	LineID    string    `json:"line_id" gorm:"type:uuid;not null;uniqueIndex:idx_slot_cell,priority:1"`
	OrderID   string    `json:"order_id" gorm:"type:uuid;not null;uniqueIndex:idx_slot_cell,priority:2;index"`
	SlotTime  time.Time `json:"slot_time" gorm:"not null;uniqueIndex:idx_slot_cell,priority:3;index"`
	Workers   int       `json:"workers" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PlanningSlot) TableName() string {
	return "planning_slots"
}

// Summary kinds carrying manual overrides.
const (
	SummaryKindAbsences    = "absences"
	SummaryKindSupervisors = "supervisors"
	SummaryKindWarehouse   = "warehouse"
)

// Derived summary kinds, computed only, never overridden. The contracted
// headcount itself travels as per-day contract rows, not as a summary row.
const (
	SummaryKindToAssign  = "to_assign"
	SummaryKindCommitted = "committed"
	SummaryKindAvailable = "available"
)

// OverridableSummaryKind reports whether kind accepts manual values.
func OverridableSummaryKind(kind string) bool {
	switch kind {
	case SummaryKindAbsences, SummaryKindSupervisors, SummaryKindWarehouse:
		return true
	}
	return false
}

// SummaryOverride is a manual correction to one derived daily staffing
// figure at one quarter-hour. The row's presence marks the cell as
// customized even when the value equals the computed default.
type SummaryOverride struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Kind      string    `json:"kind" gorm:"size:20;not null;uniqueIndex:idx_override_cell,priority:1"`
	SlotTime  time.Time `json:"slot_time" gorm:"not null;uniqueIndex:idx_override_cell,priority:2;index"`
	Value     int       `json:"value" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SummaryOverride) TableName() string {
	return "summary_overrides"
}
