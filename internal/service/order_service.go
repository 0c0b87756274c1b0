package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService governs the order lifecycle and the production-output
// records whose sum is the order's worked quantity. Every mutation locks
// the order row and runs the dependent replanning in the same transaction:
// if replanning fails the triggering update rolls back with it.
type OrderService struct {
	db     *gorm.DB
	repos  *repository.Repositories
	replan *ReplanService
}

func NewOrderService(db *gorm.DB, repos *repository.Repositories, replan *ReplanService) *OrderService {
	return &OrderService{db: db, repos: repos, replan: replan}
}

// Get loads one order with its surviving output records.
func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.repos.Order.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	outputs, err := s.repos.Output.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("load output records: %w", err)
	}
	order.Outputs = outputs
	return order, nil
}

func (s *OrderService) List(ctx context.Context, params repository.OrderListParams) ([]entity.Order, int64, error) {
	return s.repos.Order.List(ctx, params)
}

// ChangeStatus applies a user-driven status transition.
func (s *OrderService) ChangeStatus(ctx context.Context, id, status, reason string) (*entity.Order, error) {
	var order *entity.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)
		var err error
		order, err = repos.Order.FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if err := order.TransitionTo(status, reason); err != nil {
			return err
		}
		return repos.Order.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

type SemaphoreResult struct {
	Order      *entity.Order `json:"order"`
	AllGreen   bool          `json:"all_green"`
	Releasable bool          `json:"releasable"`
}

// SaveSemaphore persists the three readiness indicators and reports whether
// the order may now move from STAGING to RELEASED. It authorizes the
// transition; performing it stays a separate, explicit action.
func (s *OrderService) SaveSemaphore(ctx context.Context, id string, labels, packaging, product int) (*SemaphoreResult, error) {
	for _, v := range []int{labels, packaging, product} {
		if !entity.ValidSemaphore(v) {
			return nil, fmt.Errorf("%w: semaphore value %d", entity.ErrValidation, v)
		}
	}

	result := &SemaphoreResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)
		order, err := repos.Order.FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		order.SemLabels = labels
		order.SemPackaging = packaging
		order.SemProduct = product
		if err := repos.Order.Update(ctx, order); err != nil {
			return err
		}
		result.Order = order
		result.AllGreen = order.AllSemaphoresComplete()
		result.Releasable = order.ReadyForRelease()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type UpdateOrderParams struct {
	Quantity       *float64
	WorkedQuantity *float64
	Status         *string
	StatusReason   string
	DeliveryDate   *time.Time
	ShiftMode      *int
	MorningShift   *bool
	AfternoonShift *bool
	SaturdayWork   *bool
	SelfCheck      *bool
	Notes          *string
}

// Update applies a partial edit. When the worked quantity grows, no
// explicit status is supplied and the order has not started production, the
// status auto-advances to IN_PROGRESS. Any worked-quantity change replans
// the order's future slots inline.
func (s *OrderService) Update(ctx context.Context, id string, p UpdateOrderParams) (*entity.Order, *ReplanResult, error) {
	if p.Quantity != nil && *p.Quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: quantity must be positive", entity.ErrValidation)
	}
	if p.WorkedQuantity != nil && *p.WorkedQuantity < 0 {
		return nil, nil, fmt.Errorf("%w: worked quantity must not be negative", entity.ErrValidation)
	}
	if p.ShiftMode != nil && *p.ShiftMode != entity.ShiftModeFullDay && *p.ShiftMode != entity.ShiftModeTwoShift {
		return nil, nil, fmt.Errorf("%w: unknown shift mode %d", entity.ErrValidation, *p.ShiftMode)
	}

	var (
		order  *entity.Order
		replan *ReplanResult
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)
		var err error
		order, err = repos.Order.FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}

		oldWorked := order.WorkedQuantity

		if p.Quantity != nil {
			order.Quantity = *p.Quantity
		}
		if p.WorkedQuantity != nil {
			order.WorkedQuantity = *p.WorkedQuantity
		}
		if p.DeliveryDate != nil {
			order.DeliveryDate = *p.DeliveryDate
		}
		if p.ShiftMode != nil {
			order.ShiftMode = *p.ShiftMode
		}
		if p.MorningShift != nil {
			order.MorningShift = *p.MorningShift
		}
		if p.AfternoonShift != nil {
			order.AfternoonShift = *p.AfternoonShift
		}
		if p.SaturdayWork != nil {
			order.SaturdayWork = *p.SaturdayWork
		}
		if p.SelfCheck != nil {
			order.SelfCheck = *p.SelfCheck
		}
		if p.Notes != nil {
			order.Notes = *p.Notes
		}

		if p.Status != nil {
			if *p.Status != order.Status {
				if err := order.TransitionTo(*p.Status, p.StatusReason); err != nil {
					return err
				}
			}
		} else if order.WorkedQuantity > oldWorked {
			autoAdvance(order)
		}

		if err := repos.Order.Update(ctx, order); err != nil {
			return err
		}

		if order.WorkedQuantity != oldWorked {
			replan, err = s.replan.AdjustForWorkedQuantity(ctx, repos, order, time.Now())
			if err != nil {
				return fmt.Errorf("replan: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, replan, nil
}

// AddOutput records a batch of good output, recomputes the worked quantity
// from the surviving records and replans.
func (s *OrderService) AddOutput(ctx context.Context, orderID string, quantity float64, notes, userID string) (*entity.ProductionOutput, *ReplanResult, error) {
	if quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: output quantity must be positive", entity.ErrValidation)
	}

	var (
		output *entity.ProductionOutput
		replan *ReplanResult
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)
		order, err := repos.Order.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}

		output = &entity.ProductionOutput{
			ID:         uuid.New().String(),
			OrderID:    order.ID,
			Quantity:   quantity,
			Notes:      notes,
			ReportedBy: userID,
			ReportedAt: time.Now(),
		}
		if err := repos.Output.Create(ctx, output); err != nil {
			return fmt.Errorf("create output record: %w", err)
		}

		return s.applyWorkedQuantity(ctx, repos, order, &replan)
	})
	if err != nil {
		return nil, nil, err
	}
	return output, replan, nil
}

// RemoveOutput soft-removes an output record; the worked quantity shrinks
// back to the sum of the surviving records and the plan is restored up to
// the delivery deadline where eligible capacity allows.
func (s *OrderService) RemoveOutput(ctx context.Context, outputID string) (*ReplanResult, error) {
	var replan *ReplanResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)
		output, err := repos.Output.FindByID(ctx, outputID)
		if err != nil {
			return fmt.Errorf("load output record: %w", err)
		}
		order, err := repos.Order.FindByIDForUpdate(ctx, output.OrderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if err := repos.Output.SoftRemove(ctx, output.ID); err != nil {
			return fmt.Errorf("remove output record: %w", err)
		}

		return s.applyWorkedQuantity(ctx, repos, order, &replan)
	})
	if err != nil {
		return nil, err
	}
	return replan, nil
}

// applyWorkedQuantity recomputes the order's worked quantity from the live
// output records, applies the auto-advance rule on growth and replans when
// the figure changed.
func (s *OrderService) applyWorkedQuantity(ctx context.Context, repos *repository.Repositories, order *entity.Order, replan **ReplanResult) error {
	worked, err := repos.Output.SumLiveByOrder(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("sum output records: %w", err)
	}

	oldWorked := order.WorkedQuantity
	order.WorkedQuantity = worked
	if worked > oldWorked {
		autoAdvance(order)
	}
	if err := repos.Order.Update(ctx, order); err != nil {
		return err
	}

	if worked != oldWorked {
		result, err := s.replan.AdjustForWorkedQuantity(ctx, repos, order, time.Now())
		if err != nil {
			return fmt.Errorf("replan: %w", err)
		}
		*replan = result
	}
	return nil
}

// autoAdvance moves an order that has not started production to
// IN_PROGRESS when output growth proves work has begun. Idempotent: growth
// while already IN_PROGRESS (or further) has no effect. Forcing the state
// resets the self-check flag, like any other entry into IN_PROGRESS.
func autoAdvance(order *entity.Order) {
	if !entity.BeforeProduction(order.Status) {
		return
	}
	order.Status = entity.OrderStatusInProgress
	order.SelfCheck = false
}
