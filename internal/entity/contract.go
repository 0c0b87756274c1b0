package entity

import "time"

// Employee qualifications relevant to daily staffing.
const (
	QualificationWorker     = "worker"
	QualificationSupervisor = "supervisor"
	QualificationWarehouse  = "warehouse"
)

// ContractRecord is an employee's employment contract interval. Read-only
// input to the capacity summary: a contract counts on a day when its
// interval contains that day.
type ContractRecord struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid"`
	EmployeeID    string     `json:"employee_id" gorm:"type:uuid;not null;index"`
	Qualification string     `json:"qualification" gorm:"size:20;not null;index"`
	StartDate     time.Time  `json:"start_date" gorm:"type:date;not null"`
	EndDate       *time.Time `json:"end_date" gorm:"type:date"`
	Removed       bool       `json:"-" gorm:"not null;default:false;index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (ContractRecord) TableName() string {
	return "employee_contracts"
}

// ActiveOn reports whether the contract covers the given day. The reference
// instant is noon so that DST shifts cannot push the check across midnight.
func (c *ContractRecord) ActiveOn(day time.Time) bool {
	ref := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, day.Location())
	if ref.Before(c.StartDate) {
		return false
	}
	if c.EndDate != nil && ref.After(EndOfDay(*c.EndDate)) {
		return false
	}
	return true
}
