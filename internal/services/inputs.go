package services

import (
	"strings"

	"family-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefinitionInput carries the fields of a new recurring definition.
type DefinitionInput struct {
	Flow          models.Flow
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Description   string
	PaymentMethod string
	Amount        decimal.Decimal
	Frequency     models.Frequency
	Interval      int
	StartDate     models.Date
	EndDate       *models.Date
	Occurrences   *int
}

// DefinitionUpdate is a partial update. Nil fields are left unchanged; the
// Clear flags remove an end condition.
type DefinitionUpdate struct {
	CategoryID       *uuid.UUID
	SubcategoryID    *uuid.UUID
	Description      *string
	PaymentMethod    *string
	Amount           *decimal.Decimal
	Frequency        *models.Frequency
	Interval         *int
	StartDate        *models.Date
	EndDate          *models.Date
	ClearEndDate     bool
	Occurrences      *int
	ClearOccurrences bool
	IsActive         *bool
	// Propagate copies description, payment method and category onto the
	// unprocessed instances.
	Propagate bool
}

// DeleteScope selects between one occurrence and the whole series.
type DeleteScope string

const (
	DeleteScopeAll        DeleteScope = "all"
	DeleteScopeOccurrence DeleteScope = "occurrence"
)

// ParseDeleteScope reads a scope query value, using fallback when it is empty.
func ParseDeleteScope(raw string, fallback DeleteScope) (DeleteScope, error) {
	switch DeleteScope(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return fallback, nil
	case DeleteScopeAll:
		return DeleteScopeAll, nil
	case DeleteScopeOccurrence:
		return DeleteScopeOccurrence, nil
	default:
		return "", ErrInvalidDeleteScope
	}
}

type DeleteOptions struct {
	Scope DeleteScope
	// InstanceID names the occurrence to remove when Scope is DeleteScopeOccurrence.
	InstanceID *uuid.UUID
}

type SingleInstanceInput struct {
	Flow          models.Flow
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Description   string
	PaymentMethod string
	Amount        decimal.Decimal
	Date          models.Date
}

type InstanceUpdate struct {
	Amount        *decimal.Decimal
	Date          *models.Date
	Description   *string
	PaymentMethod *string
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
}

func (u InstanceUpdate) changesAmountOrDate() bool {
	return u.Amount != nil || u.Date != nil
}

type PlanInput struct {
	Flow                 models.Flow
	CategoryID           uuid.UUID
	SubcategoryID        *uuid.UUID
	Description          string
	PaymentMethod        string
	TotalAmount          decimal.Decimal
	NumberOfInstallments int
	FirstPaymentDate     models.Date
}

// PlanUpdate changes the mutable fields of a plan. TotalAmount and
// NumberOfInstallments are accepted only when they repeat the stored values.
type PlanUpdate struct {
	Description          *string
	PaymentMethod        *string
	CategoryID           *uuid.UUID
	SubcategoryID        *uuid.UUID
	IsCompleted          *bool
	TotalAmount          *decimal.Decimal
	NumberOfInstallments *int
	Propagate            bool
}

type AllocationInput struct {
	ProfileID       uuid.UUID
	SubcategoryID   uuid.UUID
	Year            int
	Month           int
	AllocatedAmount decimal.Decimal
}
