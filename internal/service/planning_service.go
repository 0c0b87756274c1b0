package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Zoom levels accepted by the board write endpoints.
const (
	ZoomQuarter = "quarter"
	ZoomHour    = "hour"
)

// PlanningService owns the scheduling grid: single-cell writes and the
// read model consumed by the planning board.
type PlanningService struct {
	db    *gorm.DB
	repos *repository.Repositories
	lines *LineService
}

func NewPlanningService(db *gorm.DB, repos *repository.Repositories, lines *LineService) *PlanningService {
	return &PlanningService{db: db, repos: repos, lines: lines}
}

type SaveSlotParams struct {
	LineID  string
	OrderID string
	Date    time.Time
	Hour    int
	Minute  int
	Workers int
	Zoom    string
}

type SaveSlotResult struct {
	PlanningID string `json:"planning_id"`
}

// SetSlot writes a worker count to one quarter cell, or to all four
// quarters of the hour when zoom is "hour". The whole write is one
// transaction: either every targeted quarter passes the eligibility gate or
// nothing is written.
func (s *PlanningService) SetSlot(ctx context.Context, p SaveSlotParams) (*SaveSlotResult, error) {
	if p.Workers < 0 {
		return nil, fmt.Errorf("%w: negative worker count", entity.ErrInvalidSlot)
	}
	if p.Hour < 0 || p.Hour > 23 {
		return nil, fmt.Errorf("%w: hour %d out of range", entity.ErrValidation, p.Hour)
	}
	if p.Zoom != ZoomHour {
		if p.Minute < 0 || p.Minute > 45 || p.Minute%15 != 0 {
			return nil, fmt.Errorf("%w: minute %d is not a quarter boundary", entity.ErrValidation, p.Minute)
		}
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

	result := &SaveSlotResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)

		order, err := repos.Order.FindByID(ctx, p.OrderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if _, err := repos.Line.FindByID(ctx, p.LineID); err != nil {
			return fmt.Errorf("load line: %w", err)
		}

		// Reject before writing anything: no partial cell writes.
		for _, ts := range timestamps {
			if !order.SlotEligible(ts) {
				return fmt.Errorf("%w: %s", entity.ErrInvalidSlot, ts.Format("2006-01-02 15:04"))
			}
		}

		for i, ts := range timestamps {
			slot, _, err := repos.Planning.Upsert(ctx, p.LineID, p.OrderID, ts, p.Workers)
			if err != nil {
				return fmt.Errorf("write slot: %w", err)
			}
			if i == 0 {
				result.PlanningID = slot.ID
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PlanningRow is the wire shape of one (order, line, day) grid row: a map
// of zero-padded "HHMM" keys to worker counts.
type PlanningRow struct {
	OrderUUID string         `json:"order_uuid"`
	LineUUID  string         `json:"lasworkline_uuid"`
	Date      string         `json:"date"`
	Hours     map[string]int `json:"hours"`
}

type SummaryRow struct {
	Date        string          `json:"date"`
	SummaryType string          `json:"summary_type"`
	Hours       map[string]int  `json:"hours"`
	Custom      map[string]bool `json:"custom,omitempty"`
}

type ContractRow struct {
	Date        string `json:"date"`
	Total       int    `json:"total"`
	Supervisors int    `json:"supervisors"`
	Warehouse   int    `json:"warehouse"`
}

type BoardData struct {
	Lines     []entity.ProductionLine `json:"lines"`
	Orders    []entity.Order          `json:"orders"`
	Planning  []PlanningRow           `json:"planning"`
	Contracts []ContractRow           `json:"contracts"`
	Summary   []SummaryRow            `json:"summary"`
}

// GetBoard assembles the planning board for [start, end] (dates inclusive):
// the line list, the grid rows, the contracted headcount per day and the
// six summary rows per weekday. An empty period yields empty collections,
// never an error.
func (s *PlanningService) GetBoard(ctx context.Context, start, end time.Time) (*BoardData, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", entity.ErrValidation)
	}
	to := end.AddDate(0, 0, 1)

	lines, err := s.lines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lines: %w", err)
	}

	slots, err := s.repos.Planning.GetRange(ctx, nil, start, to)
	if err != nil {
		return nil, fmt.Errorf("load slots: %w", err)
	}

	committed, err := s.repos.Planning.SumWorkersByQuarter(ctx, start, to)
	if err != nil {
		return nil, fmt.Errorf("total committed workers: %w", err)
	}

	overrides, err := s.repos.Summary.GetRange(ctx, start, to)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}
	overrideIndex := make(map[int64]map[string]entity.SummaryOverride)
	for _, ov := range overrides {
		key := ov.SlotTime.Unix()
		if overrideIndex[key] == nil {
			overrideIndex[key] = make(map[string]entity.SummaryOverride)
		}
		overrideIndex[key][ov.Kind] = ov
	}

	contracts, err := s.repos.Contract.ListOverlapping(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load contracts: %w", err)
	}

	board := &BoardData{
		Lines:     lines,
		Orders:    []entity.Order{},
		Planning:  []PlanningRow{},
		Contracts: []ContractRow{},
		Summary:   []SummaryRow{},
	}

	board.Planning = groupSlots(slots)

	// The orders behind the visible rows ride along so the board can render
	// them without a second round trip.
	seen := map[string]bool{}
	var orderIDs []string
	for i := range slots {
		if !seen[slots[i].OrderID] {
			seen[slots[i].OrderID] = true
			orderIDs = append(orderIDs, slots[i].OrderID)
		}
	}
	if len(orderIDs) > 0 {
		orders, err := s.repos.Order.ListByIDs(ctx, orderIDs)
		if err != nil {
			return nil, fmt.Errorf("load planned orders: %w", err)
		}
		board.Orders = orders
	}

	for day := start; day.Before(to); day = day.AddDate(0, 0, 1) {
		quarters := DayQuarters(day)
		if len(quarters) == 0 {
			continue
		}
		head := CountActiveContracts(contracts, day)
		date := day.Format(dateLayout)
		board.Contracts = append(board.Contracts, ContractRow{
			Date:        date,
			Total:       head.Total,
			Supervisors: head.Supervisors,
			Warehouse:   head.Warehouse,
		})

		rows := map[string]*SummaryRow{}
		for _, kind := range []string{
			entity.SummaryKindCommitted,
			entity.SummaryKindToAssign,
			entity.SummaryKindAbsences,
			entity.SummaryKindAvailable,
			entity.SummaryKindSupervisors,
			entity.SummaryKindWarehouse,
		} {
			row := &SummaryRow{Date: date, SummaryType: kind, Hours: map[string]int{}}
			if entity.OverridableSummaryKind(kind) {
				row.Custom = map[string]bool{}
			}
			rows[kind] = row
		}

		for _, ts := range quarters {
			q := ComputeQuarter(ts, head, overrideIndex[ts.Unix()], committed[ts.Unix()])
			key := hourKey(ts)
			rows[entity.SummaryKindCommitted].Hours[key] = q.Committed
			rows[entity.SummaryKindToAssign].Hours[key] = q.ToAssign
			rows[entity.SummaryKindAbsences].Hours[key] = q.Absences
			rows[entity.SummaryKindAvailable].Hours[key] = q.Available
			rows[entity.SummaryKindSupervisors].Hours[key] = q.Supervisors
			rows[entity.SummaryKindWarehouse].Hours[key] = q.Warehouse
			rows[entity.SummaryKindAbsences].Custom[key] = q.AbsencesCustom
			rows[entity.SummaryKindSupervisors].Custom[key] = q.SupervisorsCustom
			rows[entity.SummaryKindWarehouse].Custom[key] = q.WarehouseCustom
		}

		for _, kind := range []string{
			entity.SummaryKindCommitted,
			entity.SummaryKindToAssign,
			entity.SummaryKindAbsences,
			entity.SummaryKindAvailable,
			entity.SummaryKindSupervisors,
			entity.SummaryKindWarehouse,
		} {
			board.Summary = append(board.Summary, *rows[kind])
		}
	}

	return board, nil
}

func hourKey(ts time.Time) string {
	return fmt.Sprintf("%02d%02d", ts.Hour(), ts.Minute())
}

// groupSlots folds the sparse slot records into per (order, line, day) rows
// with "HHMM" keys. Zero-worker slots are kept: a zero write supersedes the
// previous value and the board must see it.
func groupSlots(slots []entity.PlanningSlot) []PlanningRow {
	index := map[string]*PlanningRow{}
	for i := range slots {
		slot := &slots[i]
		date := slot.SlotTime.Format(dateLayout)
		key := slot.OrderID + "|" + slot.LineID + "|" + date
		row, ok := index[key]
		if !ok {
			row = &PlanningRow{
				OrderUUID: slot.OrderID,
				LineUUID:  slot.LineID,
				Date:      date,
				Hours:     map[string]int{},
			}
			index[key] = row
		}
		row.Hours[hourKey(slot.SlotTime)] = slot.Workers
	}

	rows := make([]PlanningRow, 0, len(index))
	for _, row := range index {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		if rows[i].LineUUID != rows[j].LineUUID {
			return rows[i].LineUUID < rows[j].LineUUID
		}
		return rows[i].OrderUUID < rows[j].OrderUUID
	})
	return rows
}

// HourCell is the hour-zoom projection of four quarters. Workers carries
// the uniform value; when the quarters disagree the cell is Mixed, which
// can only result from prior quarter-level edits or from replanning.
type HourCell struct {
	Workers int  `json:"workers"`
	Mixed   bool `json:"mixed"`
}

// HourView derives the hour-zoom cells from a quarter-keyed hours map.
// Mixed is min != max across the four quarters; it is a projection, never
// stored state.
func HourView(hours map[string]int) map[string]HourCell {
	type span struct {
		min, max int
		seen     bool
	}
	spans := map[string]*span{}
	for key, workers := range hours {
		if len(key) != 4 {
			continue
		}
		hk := key[:2] + "00"
		sp, ok := spans[hk]
		if !ok {
			sp = &span{}
			spans[hk] = sp
		}
		if !sp.seen || workers < sp.min {
			sp.min = workers
		}
		if !sp.seen || workers > sp.max {
			sp.max = workers
		}
		sp.seen = true
	}

	view := make(map[string]HourCell, len(spans))
	for hk, sp := range spans {
		view[hk] = HourCell{Workers: sp.min, Mixed: sp.min != sp.max}
	}
	return view
}
