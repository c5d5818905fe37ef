package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MinInstallments = 2

// InstallmentPlan splits a total amount into monthly installments.
type InstallmentPlan struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Flow                 Flow            `gorm:"type:varchar(16);not null" json:"flow"`
	CategoryID           uuid.UUID       `gorm:"type:uuid;not null" json:"category_id"`
	SubcategoryID        *uuid.UUID      `gorm:"type:uuid" json:"subcategory_id,omitempty"`
	Description          string          `gorm:"type:text" json:"description"`
	PaymentMethod        string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	NumberOfInstallments int             `gorm:"not null" json:"number_of_installments"`
	InstallmentAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"installment_amount"`
	FirstPaymentDate     Date            `gorm:"not null" json:"first_payment_date"`
	IsCompleted          bool            `gorm:"not null" json:"is_completed"`
	Lifecycle            Lifecycle       `gorm:"embedded" json:"lifecycle"`
	CreatedAt            time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"not null" json:"updated_at"`
}

func (p *InstallmentPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Lifecycle.State == "" {
		p.Lifecycle = ActiveLifecycle()
	}
	if p.Flow == "" {
		p.Flow = FlowExpense
	}
	if p.InstallmentAmount.IsZero() && p.NumberOfInstallments > 0 {
		p.InstallmentAmount = RegularInstallment(p.TotalAmount, p.NumberOfInstallments)
	}
	return p.Validate()
}

func (p *InstallmentPlan) Validate() error {
	if p.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}
	if !p.Flow.IsValid() {
		return ErrInvalidFlow
	}
	if p.CategoryID == uuid.Nil {
		return ErrMissingCategory
	}
	if !IsValidMoney(p.TotalAmount) {
		return ErrInvalidAmount
	}
	if p.NumberOfInstallments < MinInstallments {
		return ErrInvalidInstallmentCount
	}
	if p.FirstPaymentDate.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// RegularInstallment is total/n rounded to cents; the closing installment absorbs the remainder.
func RegularInstallment(total decimal.Decimal, n int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

func (p *InstallmentPlan) Seed() InstanceSeed {
	return InstanceSeed{
		OwnerID:       p.OwnerID,
		Flow:          p.Flow,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		Description:   p.Description,
		PaymentMethod: p.PaymentMethod,
		Origin:        InstallmentOrigin(p.ID),
	}
}

func (p *InstallmentPlan) TableName() string {
	return "installment_plans"
}
