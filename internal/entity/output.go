package entity

import "time"

// ProductionOutput is one recorded batch of good output against an order.
// The order's worked quantity is the sum of non-removed output records;
// creating or soft-removing a record recomputes it and triggers replanning.
type ProductionOutput struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	OrderID    string    `json:"order_id" gorm:"type:uuid;not null;index"`
	Quantity   float64   `json:"quantity" gorm:"type:decimal(12,4);not null"`
	Notes      string    `json:"notes" gorm:"type:text"`
	ReportedBy string    `json:"reported_by" gorm:"size:64"`
	ReportedAt time.Time `json:"reported_at"`
	Removed    bool      `json:"-" gorm:"not null;default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ProductionOutput) TableName() string {
	return "production_outputs"
}
