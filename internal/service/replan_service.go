package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/config"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
)

// ReplanResult reports how many worker-quarters the replanner touched, for
// caller-side notification. A zero result means the schedule is unchanged;
// that is a valid outcome, never an error.
type ReplanResult struct {
	QuartersAdded   int `json:"quarters_added"`
	QuartersRemoved int `json:"quarters_removed"`
}

// ReplanService keeps the future portion of the planning grid consistent
// with an order's remaining demand. It runs inline with the triggering
// write, inside the caller's transaction.
type ReplanService struct {
	cfg config.PlanningConfig
}

func NewReplanService(cfg config.PlanningConfig) *ReplanService {
	return &ReplanService{cfg: cfg}
}

// requiredQuarters translates remaining demand into worker-quarters via the
// configured throughput rate. The legacy rate was never observable, so the
// figure is a deployment setting (planning.rate_per_worker_quarter).
func (s *ReplanService) requiredQuarters(remaining float64) int {
	rate := s.cfg.RatePerWorkerQuarter
	if rate <= 0 {
		rate = 25
	}
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining / rate))
}

// AdjustForWorkedQuantity reconciles the order's future slots against its
// remaining demand. Past slots are historical record and are never touched.
// Shrinking trims the latest future slots first; growing fills the earliest
// eligible future quarters before the delivery deadline, so the visible
// schedule stays front-loaded. Repos must be scoped to the caller's
// transaction.
func (s *ReplanService) AdjustForWorkedQuantity(ctx context.Context, repos *repository.Repositories, order *entity.Order, now time.Time) (*ReplanResult, error) {
	result := &ReplanResult{}

	required := s.requiredQuarters(order.RemainingQuantity())

	future, err := repos.Planning.FutureSlotsForOrder(ctx, order.ID, now, true)
	if err != nil {
		return nil, fmt.Errorf("load future slots: %w", err)
	}
	current := 0
	for i := range future {
		current += future[i].Workers
	}

	switch {
	case current > required:
		if err := s.shrink(ctx, repos, future, current-required, result); err != nil {
			return nil, err
		}
	case current < required:
		if err := s.grow(ctx, repos, order, now, required-current, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// shrink removes excess worker-quarters, latest slots first. future is
// already ordered latest-first.
func (s *ReplanService) shrink(ctx context.Context, repos *repository.Repositories, future []entity.PlanningSlot, excess int, result *ReplanResult) error {
	for i := range future {
		if excess == 0 {
			return nil
		}
		slot := &future[i]
		if slot.Workers == 0 {
			continue
		}
		take := slot.Workers
		if take > excess {
			take = excess
		}
		// A zero write supersedes the slot rather than deleting it.
		if _, _, err := repos.Planning.Upsert(ctx, slot.LineID, slot.OrderID, slot.SlotTime, slot.Workers-take); err != nil {
			return fmt.Errorf("trim slot: %w", err)
		}
		result.QuartersRemoved += take
		excess -= take
	}
	return nil
}

// grow restores worker-quarters on the earliest eligible future quarters up
// to the delivery deadline, within per-slot line capacity. Lines the order
// already occupies are preferred targets.
func (s *ReplanService) grow(ctx context.Context, repos *repository.Repositories, order *entity.Order, now time.Time, deficit int, result *ReplanResult) error {
	deadline := entity.EndOfDay(order.DeliveryDate)
	if !deadline.After(now) {
		return nil
	}

	lineIDs, err := repos.Planning.LinesForOrder(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("load order lines: %w", err)
	}
	if len(lineIDs) == 0 {
		lines, err := repos.Line.ListActive(ctx)
		if err != nil {
			return fmt.Errorf("load active lines: %w", err)
		}
		for i := range lines {
			lineIDs = append(lineIDs, lines[i].ID)
		}
	}
	if len(lineIDs) == 0 {
		return nil
	}

	maxPerSlot := s.cfg.MaxWorkersPerSlot
	if maxPerSlot <= 0 {
		maxPerSlot = 10
	}

	for ts := entity.NextQuarter(now); !ts.After(deadline) && deficit > 0; ts = ts.Add(entity.SlotQuarter) {
		if !order.SlotEligible(ts) {
			continue
		}
		for _, lineID := range lineIDs {
			if deficit == 0 {
				break
			}
			occupied, err := repos.Planning.SumWorkersForCell(ctx, lineID, ts)
			if err != nil {
				return fmt.Errorf("check line capacity: %w", err)
			}
			capacity := maxPerSlot - occupied
			if capacity <= 0 {
				continue
			}
			add := deficit
			if add > capacity {
				add = capacity
			}
			previous, err := s.cellValue(ctx, repos, lineID, order.ID, ts)
			if err != nil {
				return err
			}
			if _, _, err := repos.Planning.Upsert(ctx, lineID, order.ID, ts, previous+add); err != nil {
				return fmt.Errorf("restore slot: %w", err)
			}
			result.QuartersAdded += add
			deficit -= add
		}
	}
	return nil
}

func (s *ReplanService) cellValue(ctx context.Context, repos *repository.Repositories, lineID, orderID string, ts time.Time) (int, error) {
	slot, err := repos.Planning.GetCell(ctx, lineID, orderID, ts)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("read slot: %w", err)
	}
	return slot.Workers, nil
}
