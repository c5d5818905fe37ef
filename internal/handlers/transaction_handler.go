package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"family-ledger/internal/dto"
	"family-ledger/internal/errors"
	"family-ledger/internal/models"
	"family-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction instance requests
type TransactionHandler struct {
	instanceService services.InstanceServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(instanceService services.InstanceServiceInterface) *TransactionHandler {
	return &TransactionHandler{instanceService: instanceService}
}

// CreateTransaction records a one-off transaction
// @Summary Create a single transaction
// @Description One-off transactions are stored as already processed.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.TransactionInstance
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid amount or date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	input, err := toSingleInstanceInput(req)
	if err != nil {
		return SendDomainError(c, err)
	}

	instance, err := h.instanceService.CreateSingle(c.Request().Context(), userID, input)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, instance)
}

// GetTransaction returns one transaction instance
// @Summary Get a transaction
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.TransactionInstance
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	instance, err := h.instanceService.GetInstance(c.Request().Context(), userID, id)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, instance)
}

// ListTransactions lists transaction instances with filtering and offset pagination
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param flow query string false "Filter by flow" Enums(expense, income)
// @Param kind query string false "Filter by origin kind" Enums(single, recurring_instance, installment_instance)
// @Param parent_id query string false "Definition or plan ID"
// @Param subcategory_id query string false "Subcategory ID"
// @Param processed query bool false "Filter by processed flag"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param limit query int false "Page size (max 100)" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid filter"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filter, err := parseInstanceFilter(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	filter.OwnerID = userID

	instances, total, err := h.instanceService.ListInstances(c.Request().Context(), filter)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: instances,
		Pagination: dto.PaginationMeta{
			Offset: filter.Offset,
			Limit:  filter.Limit,
			Total:  total,
		},
	})
}

// UpdateTransaction edits one instance
// @Summary Update a transaction
// @Description Editing a recurring instance reconciles its definition. Installment amounts and dates are fixed by the plan.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} models.TransactionInstance
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Failure 409 {object} errors.ErrorResponse "CONSISTENCY_001/002 - Duplicate date or immutable installment field"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	update, err := toInstanceUpdate(req)
	if err != nil {
		return SendDomainError(c, err)
	}

	instance, err := h.instanceService.UpdateInstance(c.Request().Context(), userID, id, update)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, instance)
}

// ProcessTransaction marks an instance as processed
// @Summary Mark a transaction processed
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.TransactionInstance
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Router /transactions/{id}/process [post]
func (h *TransactionHandler) ProcessTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	instance, err := h.instanceService.MarkInstanceProcessed(c.Request().Context(), userID, id)
	if err != nil {
		return SendDomainError(c, err)
	}

	return c.JSON(http.StatusOK, instance)
}

// DeleteTransaction archives one occurrence or the whole series it belongs to
// @Summary Delete a transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID (UUID)"
// @Param scope query string false "occurrence (default) or all" Enums(occurrence, all)
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Not found"
// @Failure 409 {object} errors.ErrorResponse "CONSISTENCY_003 - Single installment delete"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	scope, err := services.ParseDeleteScope(c.QueryParam("scope"), services.DeleteScopeOccurrence)
	if err != nil {
		return SendDomainError(c, err)
	}

	if err := h.instanceService.DeleteInstance(c.Request().Context(), userID, id, scope); err != nil {
		return SendDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseInstanceFilter parses the list query parameters. OwnerID is left for the caller.
func parseInstanceFilter(c echo.Context) (models.InstanceFilter, error) {
	filter := models.InstanceFilter{
		Limit:  getIntParam(c, "limit", defaultPageLimit),
		Offset: getIntParam(c, "offset", 0),
	}
	if filter.Limit < 1 || filter.Limit > maxPageLimit {
		filter.Limit = defaultPageLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if flow := strings.ToLower(c.QueryParam("flow")); flow != "" {
		filter.Flow = models.Flow(flow)
		if !filter.Flow.IsValid() {
			return filter, fmt.Errorf("flow must be expense or income")
		}
	}

	if kind := strings.ToLower(c.QueryParam("kind")); kind != "" {
		switch models.InstanceKind(kind) {
		case models.KindSingle, models.KindRecurring, models.KindInstallment:
			filter.Kind = models.InstanceKind(kind)
		default:
			return filter, fmt.Errorf("kind must be single, recurring_instance or installment_instance")
		}
	}

	var err error
	if filter.ParentID, err = getUUIDParam(c, "parent_id"); err != nil {
		return filter, err
	}
	if filter.SubcategoryID, err = getUUIDParam(c, "subcategory_id"); err != nil {
		return filter, err
	}
	if filter.Processed, err = getBoolParam(c, "processed"); err != nil {
		return filter, err
	}
	if filter.From, err = getDateParam(c, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = getDateParam(c, "to"); err != nil {
		return filter, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, fmt.Errorf("to must not be before from")
	}

	return filter, nil
}

func toSingleInstanceInput(req dto.CreateTransactionRequest) (services.SingleInstanceInput, error) {
	categoryID, err := parseUUID(req.CategoryID)
	if err != nil {
		return services.SingleInstanceInput{}, models.ErrMissingCategory
	}
	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		return services.SingleInstanceInput{}, models.ErrMissingCategory
	}
	amount, err := parseMoney(req.Amount)
	if err != nil {
		return services.SingleInstanceInput{}, err
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return services.SingleInstanceInput{}, err
	}

	return services.SingleInstanceInput{
		Flow:          models.Flow(strings.ToLower(req.Flow)),
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Amount:        amount,
		Date:          date,
	}, nil
}

func toInstanceUpdate(req dto.UpdateTransactionRequest) (services.InstanceUpdate, error) {
	amount, err := parseOptionalMoney(req.Amount)
	if err != nil {
		return services.InstanceUpdate{}, err
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return services.InstanceUpdate{}, err
	}
	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return services.InstanceUpdate{}, models.ErrMissingCategory
	}
	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		return services.InstanceUpdate{}, models.ErrMissingCategory
	}

	return services.InstanceUpdate{
		Amount:        amount,
		Date:          date,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	}, nil
}
