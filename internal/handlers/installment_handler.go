package handlers

import (
	"net/http"
	"strings"

	"family-ledger/internal/dto"
	"family-ledger/internal/errors"
	"family-ledger/internal/models"
	"family-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InstallmentHandler handles installment plan requests
type InstallmentHandler struct {
	installmentService services.InstallmentServiceInterface
}

// NewInstallmentHandler creates a new installment plan handler
func NewInstallmentHandler(installmentService services.InstallmentServiceInterface) *InstallmentHandler {
	return &InstallmentHandler{installmentService: installmentService}
}

// CreatePlan creates a plan and all of its installments
// @Summary Create an installment plan
// @Description The total is split into monthly installments rounded to cents; the last one absorbs the remainder.
// @Tags Installments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInstallmentPlanRequest true "Plan details"
// @Success 201 {object} models.InstallmentPlan
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_010/011 - Invalid total or installment count"
// @Router /installment-plans [post]
func (h *InstallmentHandler) CreatePlan(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateInstallmentPlanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	input, err := toPlanInput(req)
	if err != nil {
		return SendDomainError(c, err)
	}

	plan, err := h.installmentService.CreatePlan(c.Request().Context(), userID, input)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, plan)
}

// GetPlan returns one plan
// @Summary Get an installment plan
// @Tags Installments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} models.InstallmentPlan
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /installment-plans/{id} [get]
func (h *InstallmentHandler) GetPlan(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid plan ID"))
	}

	plan, err := h.installmentService.GetPlan(c.Request().Context(), userID, id)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, plan)
}

// ListPlans lists the plans of the authenticated user
// @Summary List installment plans
// @Tags Installments
// @Security BearerAuth
// @Produce json
// @Param include_completed query bool false "Include completed plans"
// @Success 200 {object} dto.InstallmentPlanListResponse
// @Router /installment-plans [get]
func (h *InstallmentHandler) ListPlans(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	includeCompleted, err := getBoolParam(c, "include_completed")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	plans, err := h.installmentService.ListPlans(c.Request().Context(), userID, includeCompleted != nil && *includeCompleted)
	if err != nil {
		return SendDomainError(c, err)
	}
	if plans == nil {
		plans = []models.InstallmentPlan{}
	}

	return c.JSON(http.StatusOK, dto.InstallmentPlanListResponse{Plans: plans, Total: len(plans)})
}

// UpdatePlan changes the mutable fields of a plan
// @Summary Update an installment plan
// @Tags Installments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param request body dto.UpdateInstallmentPlanRequest true "Fields to change"
// @Success 200 {object} models.InstallmentPlan
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Failure 409 {object} errors.ErrorResponse "CONSISTENCY_002 - Totals cannot change"
// @Router /installment-plans/{id} [patch]
func (h *InstallmentHandler) UpdatePlan(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid plan ID"))
	}

	var req dto.UpdateInstallmentPlanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	update, err := toPlanUpdate(req)
	if err != nil {
		return SendDomainError(c, err)
	}

	plan, err := h.installmentService.UpdatePlan(c.Request().Context(), userID, id, update)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, plan)
}

// DeletePlan archives the plan and its unpaid installments
// @Summary Delete an installment plan
// @Tags Installments
// @Security BearerAuth
// @Param id path string true "Plan ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /installment-plans/{id} [delete]
func (h *InstallmentHandler) DeletePlan(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid plan ID"))
	}

	if err := h.installmentService.DeletePlan(c.Request().Context(), userID, id); err != nil {
		return SendDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RestorePlan reverses the last delete of a plan
// @Summary Restore an archived installment plan
// @Tags Installments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} models.InstallmentPlan
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Failure 409 {object} errors.ErrorResponse "CONSISTENCY_004 - Not archived"
// @Router /installment-plans/{id}/restore [post]
func (h *InstallmentHandler) RestorePlan(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid plan ID"))
	}

	plan, err := h.installmentService.RestorePlan(c.Request().Context(), userID, id)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, plan)
}

func toPlanInput(req dto.CreateInstallmentPlanRequest) (services.PlanInput, error) {
	categoryID, err := parseUUID(req.CategoryID)
	if err != nil {
		return services.PlanInput{}, models.ErrMissingCategory
	}
	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		return services.PlanInput{}, models.ErrMissingCategory
	}
	total, err := parseMoney(req.TotalAmount)
	if err != nil {
		return services.PlanInput{}, err
	}
	firstPayment, err := models.ParseDate(req.FirstPaymentDate)
	if err != nil {
		return services.PlanInput{}, err
	}

	return services.PlanInput{
		Flow:                 models.Flow(strings.ToLower(req.Flow)),
		CategoryID:           categoryID,
		SubcategoryID:        subcategoryID,
		Description:          req.Description,
		PaymentMethod:        req.PaymentMethod,
		TotalAmount:          total,
		NumberOfInstallments: req.NumberOfInstallments,
		FirstPaymentDate:     firstPayment,
	}, nil
}

func toPlanUpdate(req dto.UpdateInstallmentPlanRequest) (services.PlanUpdate, error) {
	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return services.PlanUpdate{}, models.ErrMissingCategory
	}
	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		return services.PlanUpdate{}, models.ErrMissingCategory
	}
	total, err := parseOptionalMoney(req.TotalAmount)
	if err != nil {
		return services.PlanUpdate{}, err
	}

	return services.PlanUpdate{
		Description:          req.Description,
		PaymentMethod:        req.PaymentMethod,
		CategoryID:           categoryID,
		SubcategoryID:        subcategoryID,
		IsCompleted:          req.IsCompleted,
		TotalAmount:          total,
		NumberOfInstallments: req.NumberOfInstallments,
		Propagate:            req.Propagate,
	}, nil
}
