package handlers

import (
	"net/http"

	"family-ledger/internal/dto"
	"family-ledger/internal/errors"
	"family-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints. It issues access tokens in
// place of the identity provider.
type DevHandler struct {
	tokenService services.TokenServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(tokenService services.TokenServiceInterface) *DevHandler {
	return &DevHandler{tokenService: tokenService}
}

// IssueToken signs an access token for the requested user id
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Body:
//   - user_id: optional UUID; a new id is generated when omitted
//
// Success Response: 200 OK with dto.TokenResponse
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	userID := uuid.New()
	if req.UserID != "" {
		parsed, err := parseUUID(req.UserID)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
		}
		userID = parsed
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      userID.String(),
	})
}
