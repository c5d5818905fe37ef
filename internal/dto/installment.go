package dto

import "family-ledger/internal/models"

// CreateInstallmentPlanRequest represents the request payload for a new installment plan.
// Flow defaults to expense.
type CreateInstallmentPlanRequest struct {
	Flow                 string  `json:"flow" validate:"omitempty,flow"`
	CategoryID           string  `json:"category_id" validate:"required,uuid"`
	SubcategoryID        *string `json:"subcategory_id" validate:"omitempty,uuid"`
	Description          string  `json:"description" validate:"max=255"`
	PaymentMethod        string  `json:"payment_method" validate:"max=50"`
	TotalAmount          string  `json:"total_amount" validate:"required,positive_money"`
	NumberOfInstallments int     `json:"number_of_installments" validate:"required"`
	FirstPaymentDate     string  `json:"first_payment_date" validate:"required,calendar_date"`
}

// UpdateInstallmentPlanRequest changes the mutable fields of a plan. The
// totals may be repeated but not changed.
type UpdateInstallmentPlanRequest struct {
	Description          *string `json:"description" validate:"omitempty,max=255"`
	PaymentMethod        *string `json:"payment_method" validate:"omitempty,max=50"`
	CategoryID           *string `json:"category_id" validate:"omitempty,uuid"`
	SubcategoryID        *string `json:"subcategory_id" validate:"omitempty,uuid"`
	IsCompleted          *bool   `json:"is_completed"`
	TotalAmount          *string `json:"total_amount" validate:"omitempty,positive_money"`
	NumberOfInstallments *int    `json:"number_of_installments"`
	Propagate            bool    `json:"propagate"`
}

// InstallmentPlanListResponse represents the plans of the authenticated user
type InstallmentPlanListResponse struct {
	Plans []models.InstallmentPlan `json:"plans"`
	Total int                      `json:"total"`
}
