package repository

import (
	"context"
	"errors"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
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

// FindByIDForUpdate locks the order row for the enclosing transaction.
// Status transitions and replanning read-validate-write under this lock so
// two simultaneous changes to one order serialize.
func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
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

func (r *OrderRepository) Update(ctx context.Context, o *entity.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

type OrderListParams struct {
	Status string
	Page   int
	Size   int
}

func (r *OrderRepository) List(ctx context.Context, params OrderListParams) ([]entity.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Order{}).Where("removed = false")
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var orders []entity.Order
	err := query.Order("production_number DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&orders).Error
	return orders, total, err
}

// ListByIDs loads the (non-removed) orders referenced by the planning grid.
func (r *OrderRepository) ListByIDs(ctx context.Context, ids []string) ([]entity.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("id IN ? AND removed = false", ids).
		Find(&orders).Error
	return orders, err
}
