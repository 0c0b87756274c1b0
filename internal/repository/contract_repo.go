package repository

import (
	"context"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"gorm.io/gorm"
)

// ContractRepository is the read-only view over employee contracts owned by
// the personnel module.
type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// ListOverlapping returns non-removed contracts whose interval intersects
// [from, to]. Per-day activity is decided in memory via ActiveOn so the
// summary stays a pure function of (date, contract list).
func (r *ContractRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]entity.ContractRecord, error) {
	var contracts []entity.ContractRecord
	err := r.db.WithContext(ctx).
		Where("removed = false AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", to, from).
		Find(&contracts).Error
	return contracts, err
}
