package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanningRepository struct {
	db *gorm.DB
}

func NewPlanningRepository(db *gorm.DB) *PlanningRepository {
	return &PlanningRepository{db: db}
}

// liveOrderJoin restricts a slot query to orders that are not soft-removed.
// Slots of a removed order stay on record but must never render or count.
const liveOrderJoin = "JOIN orders ON orders.id = planning_slots.order_id AND orders.removed = false"

// GetRange returns all slots in [from, to) belonging to live orders,
// optionally restricted to a set of lines. An empty result is a valid empty
// grid, not an error.
func (r *PlanningRepository) GetRange(ctx context.Context, lineIDs []string, from, to time.Time) ([]entity.PlanningSlot, error) {
	query := r.db.WithContext(ctx).Model(&entity.PlanningSlot{}).
		Select("planning_slots.*").
		Joins(liveOrderJoin).
		Where("planning_slots.slot_time >= ? AND planning_slots.slot_time < ?", from, to)
	if len(lineIDs) > 0 {
		query = query.Where("planning_slots.line_id IN ?", lineIDs)
	}
	var slots []entity.PlanningSlot
	err := query.Order("planning_slots.slot_time ASC").Find(&slots).Error
	return slots, err
}

func (r *PlanningRepository) GetCell(ctx context.Context, lineID, orderID string, ts time.Time) (*entity.PlanningSlot, error) {
	var slot entity.PlanningSlot
	err := r.db.WithContext(ctx).
		Where("line_id = ? AND order_id = ? AND slot_time = ?", lineID, orderID, ts).
		First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// Upsert writes a worker count to one cell and returns the slot together
// with the previous value. Writing the current value again is a no-op.
func (r *PlanningRepository) Upsert(ctx context.Context, lineID, orderID string, ts time.Time, workers int) (*entity.PlanningSlot, int, error) {
	slot, err := r.GetCell(ctx, lineID, orderID, ts)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, 0, err
	}

	if slot != nil {
		previous := slot.Workers
		if previous == workers {
			return slot, previous, nil
		}
		slot.Workers = workers
		if err := r.db.WithContext(ctx).Save(slot).Error; err != nil {
			return nil, 0, err
		}
		return slot, previous, nil
	}

	slot = &entity.PlanningSlot{
		ID:       uuid.New().String(),
		LineID:   lineID,
		OrderID:  orderID,
		SlotTime: ts,
		Workers:  workers,
	}
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		return nil, 0, err
	}
	return slot, 0, nil
}

// SumWorkersByQuarter totals committed workers per quarter across all lines
// and live orders, keyed by unix time of the quarter.
func (r *PlanningRepository) SumWorkersByQuarter(ctx context.Context, from, to time.Time) (map[int64]int, error) {
	var rows []struct {
		SlotTime time.Time
		Total    int
	}
	err := r.db.WithContext(ctx).Model(&entity.PlanningSlot{}).
		Select("planning_slots.slot_time, COALESCE(SUM(planning_slots.workers), 0) as total").
		Joins(liveOrderJoin).
		Where("planning_slots.slot_time >= ? AND planning_slots.slot_time < ?", from, to).
		Group("planning_slots.slot_time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[int64]int, len(rows))
	for _, row := range rows {
		totals[row.SlotTime.Unix()] = row.Total
	}
	return totals, nil
}

// FutureSlotsForOrder returns the order's slots strictly after the given
// instant. latestFirst selects the trim order for replanning.
func (r *PlanningRepository) FutureSlotsForOrder(ctx context.Context, orderID string, after time.Time, latestFirst bool) ([]entity.PlanningSlot, error) {
	direction := "slot_time ASC"
	if latestFirst {
		direction = "slot_time DESC"
	}
	var slots []entity.PlanningSlot
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND slot_time > ?", orderID, after).
		Order(direction).
		Find(&slots).Error
	return slots, err
}

// LinesForOrder lists the line IDs the order already occupies, preferred
// targets when replanning has to add capacity.
func (r *PlanningRepository) LinesForOrder(ctx context.Context, orderID string) ([]string, error) {
	var lineIDs []string
	err := r.db.WithContext(ctx).Model(&entity.PlanningSlot{}).
		Distinct("line_id").
		Where("order_id = ? AND workers > 0", orderID).
		Pluck("line_id", &lineIDs).Error
	return lineIDs, err
}

// SumWorkersForCell totals workers already assigned to a (line, quarter)
// across every live order, the per-slot capacity check for replanning.
func (r *PlanningRepository) SumWorkersForCell(ctx context.Context, lineID string, ts time.Time) (int, error) {
	var result struct{ Total int }
	err := r.db.WithContext(ctx).Model(&entity.PlanningSlot{}).
		Select("COALESCE(SUM(planning_slots.workers), 0) as total").
		Joins(liveOrderJoin).
		Where("planning_slots.line_id = ? AND planning_slots.slot_time = ?", lineID, ts).
		Scan(&result).Error
	return result.Total, err
}
