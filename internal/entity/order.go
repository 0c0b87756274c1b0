package entity

import (
	"time"
)

// Order statuses. Forward path only, one step at a time; SUSPENDED is a
// manual override reachable from every non-terminal state.
const (
	OrderStatusPlanned    = "PLANNED"
	OrderStatusStaging    = "STAGING"
	OrderStatusReleased   = "RELEASED"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusFulfilled  = "FULFILLED"
	OrderStatusSettled    = "SETTLED"
	OrderStatusSuspended  = "SUSPENDED"
)

// Shift configuration modes.
const (
	ShiftModeFullDay  = 0 // single 08:00-16:00 shift
	ShiftModeTwoShift = 1 // 06:00-14:00 and/or 14:00-22:00
)

// Readiness semaphore values (labels / packaging / product approvals).
const (
	SemaphoreNotStarted = 0
	SemaphoreInProgress = 1
	SemaphoreComplete   = 2
)

// Order is a manufacturing order against an article.
type Order struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid"`
	ProductionNumber int        `json:"production_number" gorm:"not null;uniqueIndex"`
	ArticleID        string     `json:"article_id" gorm:"type:uuid;not null;index"`
	Quantity         float64    `json:"quantity" gorm:"type:decimal(12,4);not null"`
	WorkedQuantity   float64    `json:"worked_quantity" gorm:"type:decimal(12,4);not null;default:0"`
	Status           string     `json:"status" gorm:"size:20;not null;default:PLANNED"`
	SemLabels        int        `json:"sem_labels" gorm:"not null;default:0"`
	SemPackaging     int        `json:"sem_packaging" gorm:"not null;default:0"`
	SemProduct       int        `json:"sem_product" gorm:"not null;default:0"`
	DeliveryDate     time.Time  `json:"delivery_date" gorm:"type:date;not null"`
	ShiftMode        int        `json:"shift_mode" gorm:"not null;default:0"`
	MorningShift     bool       `json:"morning_shift" gorm:"not null;default:false"`
	AfternoonShift   bool       `json:"afternoon_shift" gorm:"not null;default:false"`
	SaturdayWork     bool       `json:"saturday_work" gorm:"not null;default:false"`
	SuspensionReason string     `json:"suspension_reason" gorm:"type:text"`
	SelfCheck        bool       `json:"self_check" gorm:"not null;default:false"`
	Notes            string     `json:"notes" gorm:"type:text"`
	Removed          bool       `json:"-" gorm:"not null;default:false;index"`
	CreatedBy        string     `json:"created_by" gorm:"size:64"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Outputs []ProductionOutput `json:"outputs,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// RemainingQuantity is the demand still to be produced. Never negative:
// excess output is a trigger for replanning, not an error.
func (o *Order) RemainingQuantity() float64 {
	remaining := o.Quantity - o.WorkedQuantity
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AllSemaphoresComplete reports whether labels, packaging and product
// approvals are all complete.
func (o *Order) AllSemaphoresComplete() bool {
	return o.SemLabels == SemaphoreComplete &&
		o.SemPackaging == SemaphoreComplete &&
		o.SemProduct == SemaphoreComplete
}

// ReadyForRelease authorizes (but does not perform) the STAGING->RELEASED
// transition.
func (o *Order) ReadyForRelease() bool {
	return o.Status == OrderStatusStaging && o.AllSemaphoresComplete()
}

// BeforeProduction reports whether the status precedes IN_PROGRESS on the
// forward path. Output growth auto-advances only these states.
func BeforeProduction(status string) bool {
	switch status {
	case OrderStatusPlanned, OrderStatusStaging, OrderStatusReleased:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the seven order statuses.
func ValidStatus(s string) bool {
	switch s {
	case OrderStatusPlanned, OrderStatusStaging, OrderStatusReleased,
		OrderStatusInProgress, OrderStatusFulfilled, OrderStatusSettled,
		OrderStatusSuspended:
		return true
	}
	return false
}

// ValidSemaphore reports whether v is a tri-state semaphore value.
func ValidSemaphore(v int) bool {
	return v == SemaphoreNotStarted || v == SemaphoreInProgress || v == SemaphoreComplete
}
