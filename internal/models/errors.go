package models

import apperrors "family-ledger/internal/errors"

var (
	ErrInvalidFrequency = apperrors.NewValidation(apperrors.ValidationInvalidFrequency,
		"frequency must be one of daily, weekly, monthly, bi-monthly, quarterly, semi-annually, annually")
	ErrConflictingEndCondition = apperrors.NewValidation(apperrors.ValidationConflictingEndCondition,
		"end date and occurrences are mutually exclusive")
	ErrNonPositiveInterval = apperrors.NewValidation(apperrors.ValidationNonPositiveInterval,
		"interval must be a positive integer")
	ErrNonPositiveOccurrences = apperrors.NewValidation(apperrors.ValidationNonPositiveOccurrences,
		"occurrences must be a positive integer")
	ErrNonPositiveHardCap = apperrors.NewValidation(apperrors.ValidationOutOfRange,
		"hard cap must be a positive integer")
	ErrInvalidInstallmentCount = apperrors.NewValidation(apperrors.ValidationInvalidInstallments,
		"number of installments must be at least 2 and within the expansion cap")
	ErrInvalidAmount = apperrors.NewValidation(apperrors.ValidationInvalidAmount,
		"amount must be positive with at most two fraction digits")
	ErrInvalidDate = apperrors.NewValidation(apperrors.ValidationInvalidDate,
		"invalid calendar date")
	ErrEndBeforeStart = apperrors.NewValidation(apperrors.ValidationInvalidDate,
		"end date is before start date")
	ErrInvalidOrigin = apperrors.NewValidation(apperrors.ValidationInvalidOrigin,
		"transaction origin is inconsistent")
	ErrInvalidFlow = apperrors.NewValidation(apperrors.ValidationInvalidFormat,
		"flow must be expense or income")
	ErrMissingOwner = apperrors.NewValidation(apperrors.ValidationRequiredField,
		"owner is required")
	ErrMissingCategory = apperrors.NewValidation(apperrors.ValidationRequiredField,
		"category is required")
	ErrInvalidPeriod = apperrors.NewValidation(apperrors.ValidationOutOfRange,
		"budget period must have a year and a month between 1 and 12")
)
