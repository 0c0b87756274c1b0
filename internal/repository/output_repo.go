package repository

import (
	"context"
	"errors"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"gorm.io/gorm"
)

type OutputRepository struct {
	db *gorm.DB
}

func NewOutputRepository(db *gorm.DB) *OutputRepository {
	return &OutputRepository{db: db}
}

func (r *OutputRepository) Create(ctx context.Context, o *entity.ProductionOutput) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OutputRepository) FindByID(ctx context.Context, id string) (*entity.ProductionOutput, error) {
	var o entity.ProductionOutput
	err := r.db.WithContext(ctx).
		Where("id = ? AND removed = false", id).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OutputRepository) ListByOrder(ctx context.Context, orderID string) ([]entity.ProductionOutput, error) {
	var outputs []entity.ProductionOutput
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND removed = false", orderID).
		Order("reported_at ASC").
		Find(&outputs).Error
	return outputs, err
}

// SoftRemove flags the record; output history is never physically deleted.
func (r *OutputRepository) SoftRemove(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entity.ProductionOutput{}).
		Where("id = ?", id).
		Update("removed", true).Error
}

// SumLiveByOrder recomputes the order's worked quantity from the surviving
// output records.
func (r *OutputRepository) SumLiveByOrder(ctx context.Context, orderID string) (float64, error) {
	var result struct{ Total float64 }
	err := r.db.WithContext(ctx).Model(&entity.ProductionOutput{}).
		Select("COALESCE(SUM(quantity), 0) as total").
		Where("order_id = ? AND removed = false", orderID).
		Scan(&result).Error
	return result.Total, err
}
