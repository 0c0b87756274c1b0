package entity

import "time"

// ProductionLine is a physical work line. Read-only for planning purposes.
type ProductionLine struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Code      string    `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:128;not null"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	Removed   bool      `json:"-" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductionLine) TableName() string {
	return "production_lines"
}
