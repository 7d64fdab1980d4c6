package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/benford-auth/internal/service"
)

func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "nil_err_is_programming_error", err: nil, wantStatus: http.StatusBadRequest, wantCode: "internal"},
		{name: "malformed_request", err: ErrMalformedRequest, wantStatus: http.StatusBadRequest, wantCode: "malformed_request"},
		{name: "no_credentials", err: ErrNoCredentials, wantStatus: http.StatusUnauthorized, wantCode: "no_credentials"},
		{name: "authentication_failure", err: ErrAuthenticationFailed, wantStatus: http.StatusUnauthorized, wantCode: "authentication_failure"},
		{name: "invalid_token", err: service.ErrInvalidToken, wantStatus: http.StatusUnauthorized, wantCode: "invalid_token"},
		{name: "expired_token", err: service.ErrTokenExpired, wantStatus: http.StatusUnauthorized, wantCode: "expired_token"},
		{name: "invalid_username", err: service.ErrInvalidUsername, wantStatus: http.StatusUnauthorized, wantCode: "invalid_username"},
		{name: "invalid_password", err: service.ErrInvalidPassword, wantStatus: http.StatusUnauthorized, wantCode: "invalid_password"},
		{name: "persistence_failure_is_400_not_500", err: service.ErrPersistenceFailure, wantStatus: http.StatusBadRequest, wantCode: "persistence_failure"},
		{name: "canceled", err: context.Canceled, wantStatus: StatusClientClosedRequest, wantCode: "canceled"},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout, wantCode: "deadline_exceeded"},
		{name: "unknown_is_400", err: errors.New("db down"), wantStatus: http.StatusBadRequest, wantCode: "internal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Обёрнутые ошибки доменного слоя распознаются через errors.Is.
func TestToHTTP_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service.auth.CheckToken: %w", service.ErrTokenExpired)
	status, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "expired_token", resp.Error.Code)
}

func TestWriteError_BodyAndRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/auth", nil)
	req.Header.Set("X-Request-Id", "rid-42")
	rec := httptest.NewRecorder()

	WriteError(rec, req, service.ErrInvalidToken)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "invalid_token", resp.Error.Code)
	require.Equal(t, "invalid token", resp.Error.Message)
	require.Equal(t, "rid-42", resp.Error.RequestID)
}

// Все ошибочные статусы маппинга лежат строго в 4XX/5XX (плюс 499).
func TestMapError_AlwaysErrorRange(t *testing.T) {
	t.Parallel()

	errs := []error{
		nil,
		ErrMalformedRequest,
		ErrNoCredentials,
		ErrAuthenticationFailed,
		service.ErrInvalidToken,
		service.ErrTokenExpired,
		service.ErrInvalidUsername,
		service.ErrInvalidPassword,
		service.ErrPersistenceFailure,
		context.Canceled,
		context.DeadlineExceeded,
		errors.New("anything"),
	}

	for _, err := range errs {
		status, _ := ToHTTP(err)
		require.GreaterOrEqual(t, status, 400)
		require.Less(t, status, 600)
	}
}
