package service

import (
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/config"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services is the domain layer handed to the HTTP handlers.
type Services struct {
	Line     *LineService
	Planning *PlanningService
	Summary  *SummaryService
	Order    *OrderService
	Replan   *ReplanService
}

func NewServices(db *gorm.DB, repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	lineSvc := NewLineService(repos.Line, rdb)
	replanSvc := NewReplanService(cfg.Planning)

	return &Services{
		Line:     lineSvc,
		Planning: NewPlanningService(db, repos, lineSvc),
		Summary:  NewSummaryService(db),
		Order:    NewOrderService(db, repos, replanSvc),
		Replan:   replanSvc,
	}
}
