package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetAllocation is the amount planned for one subcategory in one month of a profile.
type BudgetAllocation struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	ProfileID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_budget_allocations_period" json:"profile_id"`
	SubcategoryID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_budget_allocations_period" json:"subcategory_id"`
	Year            int             `gorm:"not null;uniqueIndex:uq_budget_allocations_period" json:"year"`
	Month           int             `gorm:"not null;uniqueIndex:uq_budget_allocations_period" json:"month"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"allocated_amount"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

func (a *BudgetAllocation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return a.Validate()
}

func (a *BudgetAllocation) Validate() error {
	if a.OwnerID == uuid.Nil || a.ProfileID == uuid.Nil {
		return ErrMissingOwner
	}
	if a.SubcategoryID == uuid.Nil {
		return ErrMissingCategory
	}
	if a.Year < 1 || a.Month < 1 || a.Month > 12 {
		return ErrInvalidPeriod
	}
	if a.AllocatedAmount.IsNegative() || !a.AllocatedAmount.Equal(a.AllocatedAmount.Round(2)) {
		return ErrInvalidAmount
	}
	return nil
}

// PeriodBounds returns the half-open date range [first day, first day of next month).
func (a *BudgetAllocation) PeriodBounds() (Date, Date) {
	return PeriodBounds(a.Year, time.Month(a.Month))
}

func PeriodBounds(year int, month time.Month) (Date, Date) {
	from := FirstOfMonth(year, month)
	return from, from.AddMonthsClamped(1)
}

func (a *BudgetAllocation) TableName() string {
	return "budget_allocations"
}

// SubcategorySpend is one row of the grouped spend aggregation for a period.
type SubcategorySpend struct {
	SubcategoryID    uuid.UUID       `json:"subcategory_id"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// BudgetStatus is the derived allocated/spent/remaining view of an allocation.
type BudgetStatus struct {
	AllocationID  uuid.UUID       `json:"allocation_id"`
	ProfileID     uuid.UUID       `json:"profile_id"`
	SubcategoryID uuid.UUID       `json:"subcategory_id"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	Allocated     decimal.Decimal `json:"allocated"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	Percentage    decimal.Decimal `json:"percentage"`
}
