package dto

import "family-ledger/internal/models"

// Recurring Definition Request DTOs

// CreateDefinitionRequest represents the request payload for creating a recurring definition
type CreateDefinitionRequest struct {
	Flow          string  `json:"flow" validate:"required,flow"`
	CategoryID    string  `json:"category_id" validate:"required,uuid"`
	SubcategoryID *string `json:"subcategory_id" validate:"omitempty,uuid"`
	Description   string  `json:"description" validate:"max=255"`
	PaymentMethod string  `json:"payment_method" validate:"max=50"`
	Amount        string  `json:"amount" validate:"required,positive_money"`
	Frequency     string  `json:"frequency" validate:"required,frequency"`
	Interval      int     `json:"interval"`
	StartDate     string  `json:"start_date" validate:"required,calendar_date"`
	EndDate       *string `json:"end_date" validate:"omitempty,calendar_date"`
	Occurrences   *int    `json:"occurrences"`
}

// UpdateDefinitionRequest is a partial update; omitted fields keep their value.
// clear_end_date and clear_occurrences remove the matching end condition.
type UpdateDefinitionRequest struct {
	CategoryID       *string `json:"category_id" validate:"omitempty,uuid"`
	SubcategoryID    *string `json:"subcategory_id" validate:"omitempty,uuid"`
	Description      *string `json:"description" validate:"omitempty,max=255"`
	PaymentMethod    *string `json:"payment_method" validate:"omitempty,max=50"`
	Amount           *string `json:"amount" validate:"omitempty,positive_money"`
	Frequency        *string `json:"frequency" validate:"omitempty,frequency"`
	Interval         *int    `json:"interval"`
	StartDate        *string `json:"start_date" validate:"omitempty,calendar_date"`
	EndDate          *string `json:"end_date" validate:"omitempty,calendar_date"`
	ClearEndDate     bool    `json:"clear_end_date"`
	Occurrences      *int    `json:"occurrences"`
	ClearOccurrences bool    `json:"clear_occurrences"`
	IsActive         *bool   `json:"is_active"`
	Propagate        bool    `json:"propagate"`
}

// Recurring Definition Response DTOs

// DefinitionResponse is a definition together with its derived scheduling state
type DefinitionResponse struct {
	*models.RecurringDefinition
	State models.DefinitionState `json:"state"`
}

func NewDefinitionResponse(def *models.RecurringDefinition) DefinitionResponse {
	return DefinitionResponse{RecurringDefinition: def, State: def.State()}
}

// DefinitionListResponse represents the definitions of the authenticated user
type DefinitionListResponse struct {
	Definitions []DefinitionResponse `json:"definitions"`
	Total       int                  `json:"total"`
}

func NewDefinitionListResponse(defs []models.RecurringDefinition) DefinitionListResponse {
	out := make([]DefinitionResponse, len(defs))
	for i := range defs {
		out[i] = NewDefinitionResponse(&defs[i])
	}
	return DefinitionListResponse{Definitions: out, Total: len(out)}
}
