package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"family-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the owner id set by the auth middleware
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

// getBoolParam parses an optional boolean query parameter
func getBoolParam(c echo.Context, name string) (*bool, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(param)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", name)
	}
	return &value, nil
}

// getUUIDParam parses an optional uuid query parameter
func getUUIDParam(c echo.Context, name string) (*uuid.UUID, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}

	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return &id, nil
}

// getDateParam parses an optional YYYY-MM-DD query parameter
func getDateParam(c echo.Context, name string) (*models.Date, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}

	date, err := models.ParseDate(param)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", name)
	}
	return &date, nil
}

// The helpers below convert request fields that already passed struct
// validation, so parse errors only surface for hand-built requests.

func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := parseUUID(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, models.ErrInvalidAmount
	}
	return amount, nil
}

func parseOptionalMoney(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	amount, err := parseMoney(*s)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func parseOptionalDate(s *string) (*models.Date, error) {
	if s == nil {
		return nil, nil
	}
	date, err := models.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func parseOptionalFrequency(s *string) *models.Frequency {
	if s == nil {
		return nil
	}
	f := models.Frequency(strings.ToLower(*s))
	return &f
}
