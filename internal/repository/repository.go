package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories is the data-access layer handed to the services. Constructing
// it with a transaction handle scopes every repository to that transaction.
type Repositories struct {
	Line     *LineRepository
	Order    *OrderRepository
	Output   *OutputRepository
	Planning *PlanningRepository
	Summary  *SummaryOverrideRepository
	Contract *ContractRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Line:     NewLineRepository(db),
		Order:    NewOrderRepository(db),
		Output:   NewOutputRepository(db),
		Planning: NewPlanningRepository(db),
		Summary:  NewSummaryOverrideRepository(db),
		Contract: NewContractRepository(db),
	}
}
