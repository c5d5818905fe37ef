package handlers

import (
	"net/http"
	"time"

	"family-ledger/internal/dto"
	"family-ledger/internal/errors"
	"family-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget allocation and status requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertAllocation sets the allocated amount for a subcategory and month
// @Summary Create or replace a budget allocation
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertAllocationRequest true "Allocation"
// @Success 200 {object} models.BudgetAllocation
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid period or amount"
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Slot belongs to another user"
// @Router /budget-allocations [put]
func (h *BudgetHandler) UpsertAllocation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpsertAllocationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	input, err := toAllocationInput(req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	allocation, err := h.budgetService.UpsertAllocation(c.Request().Context(), userID, input)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, allocation)
}

// GetBudgetStatus returns allocated, spent, remaining and percentage for one allocation
// @Summary Get budget status
// @Description Percentage is spent/allocated*100; with nothing allocated it is 100 when anything was spent and 0 otherwise.
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 200 {object} models.BudgetStatus
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /budget-allocations/{id}/status [get]
func (h *BudgetHandler) GetBudgetStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid allocation ID"))
	}

	status, err := h.budgetService.GetBudgetStatus(c.Request().Context(), userID, id)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, status)
}

// GetPeriodStatus returns the status of every allocation of a profile in one month
// @Summary Get budget status for a period
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param profile_id query string true "Budget profile ID (UUID)"
// @Param year query int false "Year (defaults to the current year)"
// @Param month query int false "Month 1-12 (defaults to the current month)"
// @Success 200 {object} dto.PeriodStatusResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid period"
// @Router /budgets/status [get]
func (h *BudgetHandler) GetPeriodStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profileID, err := uuid.Parse(c.QueryParam("profile_id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("profile_id must be a valid UUID"))
	}

	now := time.Now().UTC()
	year := getIntParam(c, "year", now.Year())
	month := getIntParam(c, "month", int(now.Month()))

	statuses, err := h.budgetService.GetPeriodStatus(c.Request().Context(), userID, profileID, year, month)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PeriodStatusResponse{
		ProfileID: profileID.String(),
		Year:      year,
		Month:     month,
		Statuses:  statuses,
	})
}

func toAllocationInput(req dto.UpsertAllocationRequest) (services.AllocationInput, error) {
	profileID, err := parseUUID(req.ProfileID)
	if err != nil {
		return services.AllocationInput{}, err
	}
	subcategoryID, err := parseUUID(req.SubcategoryID)
	if err != nil {
		return services.AllocationInput{}, err
	}
	amount, err := parseMoney(req.AllocatedAmount)
	if err != nil {
		return services.AllocationInput{}, err
	}

	return services.AllocationInput{
		ProfileID:       profileID,
		SubcategoryID:   subcategoryID,
		Year:            req.Year,
		Month:           req.Month,
		AllocatedAmount: amount,
	}, nil
}
