package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionInstance is one dated transaction, either entered by hand or
// materialized from a recurring definition or installment plan.
type TransactionInstance struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Flow          Flow            `gorm:"type:varchar(16);not null" json:"flow"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null" json:"category_id"`
	SubcategoryID *uuid.UUID      `gorm:"type:uuid;index" json:"subcategory_id,omitempty"`
	Description   string          `gorm:"type:text" json:"description"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date          Date            `gorm:"not null;index" json:"date"`
	Origin        Origin          `gorm:"embedded" json:"origin"`
	IsProcessed   bool            `gorm:"not null" json:"is_processed"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	Lifecycle     Lifecycle       `gorm:"embedded" json:"lifecycle"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// InstanceSeed carries the parent fields copied onto each materialized
// instance at creation time.
type InstanceSeed struct {
	OwnerID       uuid.UUID
	Flow          Flow
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Description   string
	PaymentMethod string
	Origin        Origin
}

// NewInstance builds an unprocessed instance for one occurrence.
func (s InstanceSeed) NewInstance(date Date, amount decimal.Decimal) *TransactionInstance {
	return &TransactionInstance{
		OwnerID:       s.OwnerID,
		Flow:          s.Flow,
		CategoryID:    s.CategoryID,
		SubcategoryID: s.SubcategoryID,
		Description:   s.Description,
		PaymentMethod: s.PaymentMethod,
		Amount:        amount,
		Date:          date,
		Origin:        s.Origin,
		Lifecycle:     ActiveLifecycle(),
	}
}

// NewSingleInstance builds a one-off transaction; money has already moved so it starts processed.
func NewSingleInstance(owner uuid.UUID, flow Flow, category uuid.UUID, subcategory *uuid.UUID, amount decimal.Decimal, date Date) *TransactionInstance {
	now := time.Now().UTC()
	return &TransactionInstance{
		OwnerID:       owner,
		Flow:          flow,
		CategoryID:    category,
		SubcategoryID: subcategory,
		Amount:        amount,
		Date:          date,
		Origin:        SingleOrigin(),
		IsProcessed:   true,
		ProcessedAt:   &now,
		Lifecycle:     ActiveLifecycle(),
	}
}

func (t *TransactionInstance) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Lifecycle.State == "" {
		t.Lifecycle = ActiveLifecycle()
	}
	return t.Validate()
}

func (t *TransactionInstance) Validate() error {
	if t.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}
	if !t.Flow.IsValid() {
		return ErrInvalidFlow
	}
	if t.CategoryID == uuid.Nil {
		return ErrMissingCategory
	}
	if !IsValidMoney(t.Amount) {
		return ErrInvalidAmount
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return t.Origin.Validate()
}

// MarkProcessed flips the instance to processed. It reports false when it already was.
func (t *TransactionInstance) MarkProcessed(at time.Time) bool {
	if t.IsProcessed {
		return false
	}
	ts := at.UTC()
	t.IsProcessed = true
	t.ProcessedAt = &ts
	return true
}

// CountsTowardsBudget reports whether the instance is spent money in subcategory during year/month.
func (t *TransactionInstance) CountsTowardsBudget(subcategory uuid.UUID, year int, month time.Month) bool {
	return t.IsProcessed &&
		t.Lifecycle.IsActive() &&
		t.Flow == FlowExpense &&
		t.SubcategoryID != nil && *t.SubcategoryID == subcategory &&
		t.Date.Year() == year && t.Date.Month() == month
}

func (t *TransactionInstance) TableName() string {
	return "transaction_instances"
}

// IsValidMoney accepts positive amounts with at most two fraction digits.
func IsValidMoney(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}
