package dto

import "family-ledger/internal/models"

// UpsertAllocationRequest sets the planned amount for one subcategory and month
type UpsertAllocationRequest struct {
	ProfileID       string `json:"profile_id" validate:"required,uuid"`
	SubcategoryID   string `json:"subcategory_id" validate:"required,uuid"`
	Year            int    `json:"year" validate:"required,gte=1"`
	Month           int    `json:"month" validate:"required,gte=1,lte=12"`
	AllocatedAmount string `json:"allocated_amount" validate:"required,money"`
}

// PeriodStatusResponse lists the status of every allocation of a profile in one month
type PeriodStatusResponse struct {
	ProfileID string                `json:"profile_id"`
	Year      int                   `json:"year"`
	Month     int                   `json:"month"`
	Statuses  []models.BudgetStatus `json:"statuses"`
}
