package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"family-ledger/internal/dto"
	"family-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevHandler_IssueToken(t *testing.T) {
	t.Run("issues a token for the requested user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokenService := service_mocks.NewMockTokenServiceInterface(ctrl)
		userID := uuid.New()
		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		tokenService.EXPECT().GenerateAccessToken(userID).Return("signed.jwt.token", expiresAt, nil)

		e := newTestEcho()
		c, rec := newContext(e, http.MethodPost, "/api/v1/dev/token", dto.DevTokenRequest{UserID: userID.String()}, nil)

		require.NoError(t, NewDevHandler(tokenService).IssueToken(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, userID.String(), resp.UserID)
		assert.True(t, expiresAt.Equal(resp.ExpiresAt))
	})

	t.Run("generates a user id when none is given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokenService := service_mocks.NewMockTokenServiceInterface(ctrl)
		tokenService.EXPECT().GenerateAccessToken(gomock.Any()).Return("t", time.Now(), nil)

		e := newTestEcho()
		c, rec := newContext(e, http.MethodPost, "/api/v1/dev/token", `{}`, nil)

		require.NoError(t, NewDevHandler(tokenService).IssueToken(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		_, err := uuid.Parse(resp.UserID)
		assert.NoError(t, err)
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		e := newTestEcho()
		c, rec := newContext(e, http.MethodPost, "/api/v1/dev/token", dto.DevTokenRequest{UserID: "admin"}, nil)

		require.NoError(t, NewDevHandler(service_mocks.NewMockTokenServiceInterface(ctrl)).IssueToken(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("signing failure is a system error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokenService := service_mocks.NewMockTokenServiceInterface(ctrl)
		tokenService.EXPECT().GenerateAccessToken(gomock.Any()).Return("", time.Time{}, fmt.Errorf("no private key"))

		e := newTestEcho()
		c, rec := newContext(e, http.MethodPost, "/api/v1/dev/token", `{}`, nil)

		require.NoError(t, NewDevHandler(tokenService).IssueToken(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "SYSTEM_001", decodeError(t, rec).Error.Code)
	})
}
