package services

import (
	"errors"

	apperrors "family-ledger/internal/errors"
	"family-ledger/internal/repositories"
)

var (
	ErrNotFoundOrForbidden = apperrors.NewNotFoundOrForbidden("resource not found")
	ErrDuplicateInstance   = apperrors.NewConsistencyViolation(apperrors.ConsistencyDuplicateInstance,
		"an instance already exists for this occurrence date")
	ErrImmutablePlanField = apperrors.NewConsistencyViolation(apperrors.ConsistencyImmutablePlanField,
		"installment plan totals, installment amounts and dates cannot change once instances exist")
	ErrInstallmentOccurrenceDelete = apperrors.NewConsistencyViolation(apperrors.ConsistencyInstallmentOccurrence,
		"a single installment cannot be deleted; delete the whole plan instead")
	ErrNotArchived = apperrors.NewConsistencyViolation(apperrors.ConsistencyNotArchived,
		"only archived records can be restored")
	ErrDuplicateAllocationSlot = apperrors.NewConsistencyViolation(apperrors.ConsistencyDuplicateAllocationSlot,
		"a budget allocation already exists for this subcategory and period")
	ErrInvalidDeleteScope = apperrors.NewValidation(apperrors.ValidationOutOfRange,
		"scope must be all or occurrence")
	ErrInstanceNotInDefinition = apperrors.NewValidation(apperrors.ValidationGeneral,
		"instance does not belong to this definition")
	ErrMissingInstanceID = apperrors.NewValidation(apperrors.ValidationRequiredField,
		"instance_id is required when deleting a single occurrence")
)

// translateRepoError maps storage sentinels onto the domain taxonomy. A
// missing and a foreign record produce the same error.
func translateRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrDefinitionNotFound),
		errors.Is(err, repositories.ErrPlanNotFound),
		errors.Is(err, repositories.ErrInstanceNotFound),
		errors.Is(err, repositories.ErrAllocationNotFound):
		return ErrNotFoundOrForbidden
	case errors.Is(err, repositories.ErrDuplicateInstance):
		return ErrDuplicateInstance
	case errors.Is(err, repositories.ErrDuplicateSlot):
		return ErrDuplicateAllocationSlot
	default:
		return err
	}
}
