package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefinitionState is the derived scheduling state of a recurring definition.
type DefinitionState string

const (
	DefinitionActiveScheduled DefinitionState = "active-scheduled"
	DefinitionActiveExhausted DefinitionState = "active-exhausted"
	DefinitionInactive        DefinitionState = "inactive"
)

// RecurringDefinition is the template for a recurring income or expense.
type RecurringDefinition struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Flow          Flow            `gorm:"type:varchar(16);not null" json:"flow"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null" json:"category_id"`
	SubcategoryID *uuid.UUID      `gorm:"type:uuid" json:"subcategory_id,omitempty"`
	Description   string          `gorm:"type:text" json:"description"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Frequency     Frequency       `gorm:"type:varchar(20);not null" json:"frequency"`
	Interval      int             `gorm:"column:repeat_interval;not null" json:"interval"`
	StartDate     Date            `gorm:"not null" json:"start_date"`
	EndDate       *Date           `json:"end_date,omitempty"`
	Occurrences   *int            `json:"occurrences,omitempty"`
	IsActive      bool            `gorm:"not null" json:"is_active"`
	NextDueDate   *Date           `json:"next_due_date"`
	Lifecycle     Lifecycle       `gorm:"embedded" json:"lifecycle"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (d *RecurringDefinition) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Lifecycle.State == "" {
		d.Lifecycle = ActiveLifecycle()
	}
	if d.Interval == 0 {
		d.Interval = 1
	}
	return d.Validate()
}

// Validate checks the definition's own invariants.
func (d *RecurringDefinition) Validate() error {
	if d.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}
	if !d.Flow.IsValid() {
		return ErrInvalidFlow
	}
	if d.CategoryID == uuid.Nil {
		return ErrMissingCategory
	}
	if !IsValidMoney(d.Amount) {
		return ErrInvalidAmount
	}
	if !d.Frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if d.Interval < 1 {
		return ErrNonPositiveInterval
	}
	if d.StartDate.IsZero() {
		return ErrInvalidDate
	}
	if d.EndDate != nil && d.Occurrences != nil {
		return ErrConflictingEndCondition
	}
	if d.Occurrences != nil && *d.Occurrences < 1 {
		return ErrNonPositiveOccurrences
	}
	if d.EndDate != nil && d.EndDate.Before(d.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// State derives the lifecycle-manager state from isActive and nextDueDate.
func (d *RecurringDefinition) State() DefinitionState {
	switch {
	case !d.IsActive:
		return DefinitionInactive
	case d.NextDueDate == nil:
		return DefinitionActiveExhausted
	default:
		return DefinitionActiveScheduled
	}
}

// MarkExhausted moves the definition to its terminal state.
func (d *RecurringDefinition) MarkExhausted() {
	d.NextDueDate = nil
	d.IsActive = false
}

// IsDateBounded reports whether the schedule ends at a date.
func (d *RecurringDefinition) IsDateBounded() bool {
	return d.EndDate != nil
}

// Seed returns the fields every materialized instance copies from the definition.
func (d *RecurringDefinition) Seed() InstanceSeed {
	return InstanceSeed{
		OwnerID:       d.OwnerID,
		Flow:          d.Flow,
		CategoryID:    d.CategoryID,
		SubcategoryID: d.SubcategoryID,
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
		Origin:        RecurringOrigin(d.ID),
	}
}

func (d *RecurringDefinition) TableName() string {
	return "recurring_definitions"
}
