package repository

import (
	"context"
	"errors"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"gorm.io/gorm"
)

type LineRepository struct {
	db *gorm.DB
}

func NewLineRepository(db *gorm.DB) *LineRepository {
	return &LineRepository{db: db}
}

func (r *LineRepository) ListActive(ctx context.Context) ([]entity.ProductionLine, error) {
	var lines []entity.ProductionLine
	err := r.db.WithContext(ctx).
		Where("removed = false AND active = true").
		Order("code ASC").
		Find(&lines).Error
	return lines, err
}

func (r *LineRepository) FindByID(ctx context.Context, id string) (*entity.ProductionLine, error) {
	var line entity.ProductionLine
	err := r.db.WithContext(ctx).
		Where("id = ? AND removed = false", id).
		First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}
