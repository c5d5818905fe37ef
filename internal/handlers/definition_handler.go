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

// DefinitionHandler handles recurring definition requests
type DefinitionHandler struct {
	definitionService services.DefinitionServiceInterface
}

// NewDefinitionHandler creates a new recurring definition handler
func NewDefinitionHandler(definitionService services.DefinitionServiceInterface) *DefinitionHandler {
	return &DefinitionHandler{definitionService: definitionService}
}

// CreateDefinition creates a recurring definition and materializes its schedule
// @Summary Create a recurring definition
// @Description Create a recurring income or expense. end_date and occurrences are mutually exclusive; without either the schedule is expanded up to the configured cap.
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDefinitionRequest true "Definition details"
// @Success 201 {object} dto.DefinitionResponse "Definition created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid schedule or amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /recurring-definitions [post]
func (h *DefinitionHandler) CreateDefinition(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateDefinitionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	input, err := toDefinitionInput(req)
	if err != nil {
		return SendDomainError(c, err)
	}

	def, err := h.definitionService.CreateDefinition(c.Request().Context(), userID, input)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewDefinitionResponse(def))
}

// GetDefinition returns one definition
// @Summary Get a recurring definition
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param id path string true "Definition ID (UUID)"
// @Success 200 {object} dto.DefinitionResponse
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /recurring-definitions/{id} [get]
func (h *DefinitionHandler) GetDefinition(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid definition ID"))
	}

	def, err := h.definitionService.GetDefinition(c.Request().Context(), userID, id)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDefinitionResponse(def))
}

// ListDefinitions lists the definitions of the authenticated user
// @Summary List recurring definitions
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param flow query string false "Filter by flow" Enums(expense, income)
// @Param active query bool false "Only definitions that are still active"
// @Success 200 {object} dto.DefinitionListResponse
// @Router /recurring-definitions [get]
func (h *DefinitionHandler) ListDefinitions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	flow := models.Flow(strings.ToLower(c.QueryParam("flow")))
	if flow != "" && !flow.IsValid() {
		return SendDomainError(c, models.ErrInvalidFlow)
	}

	activeOnly, err := getBoolParam(c, "active")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	defs, err := h.definitionService.ListDefinitions(c.Request().Context(), userID, flow, activeOnly != nil && *activeOnly)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDefinitionListResponse(defs))
}

// ListDefinitionInstances lists the materialized instances of a definition
// @Summary List instances of a recurring definition
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param id path string true "Definition ID (UUID)"
// @Param processed query bool false "Filter by processed flag"
// @Success 200 {array} models.TransactionInstance
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /recurring-definitions/{id}/instances [get]
func (h *DefinitionHandler) ListDefinitionInstances(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid definition ID"))
	}

	processed, err := getBoolParam(c, "processed")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	instances, err := h.definitionService.ListDefinitionInstances(c.Request().Context(), userID, id, processed)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, instances)
}

// UpdateDefinition applies a partial update
// @Summary Update a recurring definition
// @Description Schedule changes re-materialize the unprocessed instances; is_active=false pauses the definition.
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Definition ID (UUID)"
// @Param request body dto.UpdateDefinitionRequest true "Fields to change"
// @Success 200 {object} dto.DefinitionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid schedule or amount"
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /recurring-definitions/{id} [patch]
func (h *DefinitionHandler) UpdateDefinition(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid definition ID"))
	}

	var req dto.UpdateDefinitionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	update, err := toDefinitionUpdate(req)
	if err != nil {
		return SendDomainError(c, err)
	}

	def, err := h.definitionService.UpdateDefinition(c.Request().Context(), userID, id, update)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDefinitionResponse(def))
}

// DeleteDefinition archives the whole series or a single occurrence
// @Summary Delete a recurring definition
// @Tags Recurring
// @Security BearerAuth
// @Param id path string true "Definition ID (UUID)"
// @Param scope query string false "all (default) or occurrence" Enums(all, occurrence)
// @Param instance_id query string false "Instance to remove when scope=occurrence"
// @Success 204 "Deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid scope or missing instance"
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /recurring-definitions/{id} [delete]
func (h *DefinitionHandler) DeleteDefinition(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid definition ID"))
	}

	scope, err := services.ParseDeleteScope(c.QueryParam("scope"), services.DeleteScopeAll)
	if err != nil {
		return SendDomainError(c, err)
	}

	instanceID, err := getUUIDParam(c, "instance_id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	opts := services.DeleteOptions{Scope: scope, InstanceID: instanceID}
	if err := h.definitionService.DeleteDefinition(c.Request().Context(), userID, id, opts); err != nil {
		return SendDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RestoreDefinition reverses the last delete of the series
// @Summary Restore an archived recurring definition
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param id path string true "Definition ID (UUID)"
// @Success 200 {object} dto.DefinitionResponse
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Failure 409 {object} errors.ErrorResponse "CONSISTENCY_004 - Not archived"
// @Router /recurring-definitions/{id}/restore [post]
func (h *DefinitionHandler) RestoreDefinition(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid definition ID"))
	}

	def, err := h.definitionService.RestoreDefinition(c.Request().Context(), userID, id)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDefinitionResponse(def))
}

func toDefinitionInput(req dto.CreateDefinitionRequest) (services.DefinitionInput, error) {
	categoryID, err := parseUUID(req.CategoryID)
	if err != nil {
		return services.DefinitionInput{}, models.ErrMissingCategory
	}
	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		return services.DefinitionInput{}, models.ErrMissingCategory
	}
	amount, err := parseMoney(req.Amount)
	if err != nil {
		return services.DefinitionInput{}, err
	}
	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return services.DefinitionInput{}, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return services.DefinitionInput{}, err
	}

	return services.DefinitionInput{
		Flow:          models.Flow(strings.ToLower(req.Flow)),
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Amount:        amount,
		Frequency:     models.Frequency(strings.ToLower(req.Frequency)),
		Interval:      req.Interval,
		StartDate:     startDate,
		EndDate:       endDate,
		Occurrences:   req.Occurrences,
	}, nil
}

func toDefinitionUpdate(req dto.UpdateDefinitionRequest) (services.DefinitionUpdate, error) {
	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return services.DefinitionUpdate{}, models.ErrMissingCategory
	}
	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		return services.DefinitionUpdate{}, models.ErrMissingCategory
	}
	amount, err := parseOptionalMoney(req.Amount)
	if err != nil {
		return services.DefinitionUpdate{}, err
	}
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return services.DefinitionUpdate{}, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return services.DefinitionUpdate{}, err
	}

	return services.DefinitionUpdate{
		CategoryID:       categoryID,
		SubcategoryID:    subcategoryID,
		Description:      req.Description,
		PaymentMethod:    req.PaymentMethod,
		Amount:           amount,
		Frequency:        parseOptionalFrequency(req.Frequency),
		Interval:         req.Interval,
		StartDate:        startDate,
		EndDate:          endDate,
		ClearEndDate:     req.ClearEndDate,
		Occurrences:      req.Occurrences,
		ClearOccurrences: req.ClearOccurrences,
		IsActive:         req.IsActive,
		Propagate:        req.Propagate,
	}, nil
}
