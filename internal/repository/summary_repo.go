package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SummaryOverrideRepository struct {
	db *gorm.DB
}

func NewSummaryOverrideRepository(db *gorm.DB) *SummaryOverrideRepository {
	return &SummaryOverrideRepository{db: db}
}

func (r *SummaryOverrideRepository) GetRange(ctx context.Context, from, to time.Time) ([]entity.SummaryOverride, error) {
	var overrides []entity.SummaryOverride
	err := r.db.WithContext(ctx).
		Where("slot_time >= ? AND slot_time < ?", from, to).
		Order("slot_time ASC").
		Find(&overrides).Error
	return overrides, err
}

func (r *SummaryOverrideRepository) Get(ctx context.Context, kind string, ts time.Time) (*entity.SummaryOverride, error) {
	var override entity.SummaryOverride
	err := r.db.WithContext(ctx).
		Where("kind = ? AND slot_time = ?", kind, ts).
		First(&override).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &override, nil
}

// Upsert writes a manual value for one summary cell. The row stays even at
// value 0: presence is what marks the cell customized.
func (r *SummaryOverrideRepository) Upsert(ctx context.Context, kind string, ts time.Time, value int) (*entity.SummaryOverride, error) {
	override, err := r.Get(ctx, kind, ts)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if override != nil {
		if override.Value == value {
			return override, nil
		}
		override.Value = value
		if err := r.db.WithContext(ctx).Save(override).Error; err != nil {
			return nil, err
		}
		return override, nil
	}

	override = &entity.SummaryOverride{
		ID:       uuid.New().String(),
		Kind:     kind,
		SlotTime: ts,
		Value:    value,
	}
	if err := r.db.WithContext(ctx).Create(override).Error; err != nil {
		return nil, err
	}
	return override, nil
}

// Delete drops the override so the cell falls back to its computed default.
func (r *SummaryOverrideRepository) Delete(ctx context.Context, kind string, ts time.Time) error {
	return r.db.WithContext(ctx).
		Where("kind = ? AND slot_time = ?", kind, ts).
		Delete(&entity.SummaryOverride{}).Error
}
