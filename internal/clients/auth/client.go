// auth — HTTP-клиент auth-сервиса для jobs-сервиса.
//
// Jobs-сервис не валидирует токены сам: он пересылает токен вызывающего
// в POST /auth и доверяет статусу ответа. Ретраев нет — за повтор отвечает
// вызывающий.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apierrors "github.com/pribylovaa/benford-auth/internal/errors"
	"github.com/pribylovaa/benford-auth/internal/http/middleware"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New создаёт клиент auth-сервиса.
// timeout ограничивает каждый исходящий запрос; <=0 — без собственного
// таймаута (остаётся только дедлайн контекста запроса).
func New(baseURL string, timeout time.Duration) *Client {
	c := &http.Client{}
	if timeout > 0 {
		c.Timeout = timeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    c,
	}
}

// checkRequest — тело запроса проверки токена (форма A из контракта /auth).
type checkRequest struct {
	Token string `json:"token"`
}

// CheckToken спрашивает auth-сервис, действителен ли токен.
// Возвращает nil только при 200; любой другой статус — ErrAuthenticationFailed.
func (c *Client) CheckToken(ctx context.Context, token string) error {
	const op = "clients.auth.CheckToken"

	body, err := json.Marshal(checkRequest{Token: token})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Сквозная трассировка: пробрасываем request id входящего запроса.
	if rid := middleware.RequestIDFrom(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, apierrors.ErrAuthenticationFailed)
	}

	return nil
}
