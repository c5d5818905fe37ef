package dto

import "family-ledger/internal/models"

// Transaction Request DTOs

// CreateTransactionRequest represents a one-off transaction entered by hand
type CreateTransactionRequest struct {
	Flow          string  `json:"flow" validate:"required,flow"`
	CategoryID    string  `json:"category_id" validate:"required,uuid"`
	SubcategoryID *string `json:"subcategory_id" validate:"omitempty,uuid"`
	Description   string  `json:"description" validate:"max=255"`
	PaymentMethod string  `json:"payment_method" validate:"max=50"`
	Amount        string  `json:"amount" validate:"required,positive_money"`
	Date          string  `json:"date" validate:"required,calendar_date"`
}

// UpdateTransactionRequest edits one transaction instance
type UpdateTransactionRequest struct {
	Amount        *string `json:"amount" validate:"omitempty,positive_money"`
	Date          *string `json:"date" validate:"omitempty,calendar_date"`
	Description   *string `json:"description" validate:"omitempty,max=255"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=50"`
	CategoryID    *string `json:"category_id" validate:"omitempty,uuid"`
	SubcategoryID *string `json:"subcategory_id" validate:"omitempty,uuid"`
}

// Transaction Response DTOs

// TransactionListResponse represents a paginated list of transaction instances
type TransactionListResponse struct {
	Transactions []models.TransactionInstance `json:"transactions"`
	Pagination   PaginationMeta               `json:"pagination"`
}

// PaginationMeta represents offset pagination metadata
type PaginationMeta struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
