package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
	"gorm.io/gorm"
)

// SummaryService owns the manual corrections to the derived staffing rows
// (absences, supervisors on duty, warehouse staff).
type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

type SetOverrideParams struct {
	Kind   string
	Date   time.Time
	Hour   int
	Minute int
	Value  int
	Reset  bool
	Zoom   string
}

type SetOverrideResult struct {
	SummaryID string `json:"summary_id"`
}

// SetOverride writes or clears a manual summary value. Reset removes the
// override row so the cell falls back to the computed default; a written 0
// stays and marks the cell customized. Zoom "hour" fans to the four
// quarters of the hour.
func (s *SummaryService) SetOverride(ctx context.Context, p SetOverrideParams) (*SetOverrideResult, error) {
	if !entity.OverridableSummaryKind(p.Kind) {
		return nil, fmt.Errorf("%w: summary kind %q accepts no override", entity.ErrValidation, p.Kind)
	}
	switch p.Date.Weekday() {
	case time.Saturday, time.Sunday:
		return nil, fmt.Errorf("%w: weekend summary cells are not editable", entity.ErrValidation)
	}
	// Only cells the board renders may carry an override.
	if p.Hour < boardStartHour || p.Hour >= boardEndHour {
		return nil, fmt.Errorf("%w: hour %d outside the board span", entity.ErrValidation, p.Hour)
	}
	if p.Zoom != ZoomHour {
		if p.Minute < 0 || p.Minute > 45 || p.Minute%15 != 0 {
			return nil, fmt.Errorf("%w: minute %d is not a quarter boundary", entity.ErrValidation, p.Minute)
		}
	}
	if !p.Reset && p.Value < 0 {
		return nil, fmt.Errorf("%w: negative summary value", entity.ErrValidation)
	}

	var timestamps []time.Time
	y, m, d := p.Date.Date()
	if p.Zoom == ZoomHour {
		for min := 0; min < 60; min += 15 {
			timestamps = append(timestamps, time.Date(y, m, d, p.Hour, min, 0, 0, p.Date.Location()))
		}
	} else {
		timestamps = append(timestamps, time.Date(y, m, d, p.Hour, p.Minute, 0, 0, p.Date.Location()))
	}

	result := &SetOverrideResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)
		for i, ts := range timestamps {
			if p.Reset {
				if err := repos.Summary.Delete(ctx, p.Kind, ts); err != nil {
					return fmt.Errorf("reset override: %w", err)
				}
				continue
			}
			override, err := repos.Summary.Upsert(ctx, p.Kind, ts, p.Value)
			if err != nil {
				return fmt.Errorf("write override: %w", err)
			}
			if i == 0 {
				result.SummaryID = override.ID
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
