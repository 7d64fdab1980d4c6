// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку доменного слоя (service) или ошибку контекста,
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Контракт статусов (исторический, от исходного сервиса):
//   - invalid/expired token, invalid username/password -> 401; снаружи статус
//     одинаков, но code/message сохраняют различимую причину;
//   - битое тело запроса -> 400;
//   - сбой персистентности при выпуске токена -> 400. Семантически это
//     внутренняя ошибка сервера, но контракт отдаёт её как 400-класс;
//     сохраняем как задокументированную несовместимость, не «чиним» молча;
//   - прочие (неожиданные) ошибки -> 400 по той же причине.
//
// Инвариант ответов: успехи строго 2XX, ошибки строго 4XX/5XX.
// Попытка записать ошибку с не-ошибочным статусом — программная ошибка (panic).
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pribylovaa/benford-auth/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

var (
	// ErrMalformedRequest — тело запроса отсутствует, не парсится или не содержит
	// ни token, ни пары username/password. Ошибка границы, не доменного слоя.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrNoCredentials — в запросе нет заголовка Authentication (jobs-сервис).
	ErrNoCredentials = errors.New("no security credentials")

	// ErrAuthenticationFailed — auth-сервис не подтвердил токен
	// (любой не-200 ответ его /auth считается отказом).
	ErrAuthenticationFailed = errors.New("authentication failure")
)

// APIError — единый формат ошибки для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// err == nil — это программная ошибка вызова: возвращаем 400/internal,
// чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := mapError(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Ошибочные ответы строго 4XX/5XX (инвариант утилитарного слоя).
	if status < 400 || status >= 600 {
		panic(fmt.Sprintf("errors: non-error status %d used for error response", status))
	}

	// Прокидываем request_id, чтобы клиент мог репортить проблемы с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// mapError — базовый маппинг доменных ошибок -> HTTP/код/сообщение.
func mapError(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusBadRequest, "internal", "internal error"
	case errors.Is(err, ErrMalformedRequest):
		return http.StatusBadRequest, "malformed_request", "missing credentials in body"
	case errors.Is(err, ErrNoCredentials):
		return http.StatusUnauthorized, "no_credentials", "no security credentials"
	case errors.Is(err, ErrAuthenticationFailed):
		return http.StatusUnauthorized, "authentication_failure", "authentication failure"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token", "invalid token"
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, "expired_token", "expired token"
	case errors.Is(err, service.ErrInvalidUsername):
		return http.StatusUnauthorized, "invalid_username", "invalid username"
	case errors.Is(err, service.ErrInvalidPassword):
		return http.StatusUnauthorized, "invalid_password", "invalid password"
	case errors.Is(err, service.ErrPersistenceFailure):
		return http.StatusBadRequest, "persistence_failure", "internal error: insert failed to modify database"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusBadRequest, "internal", "internal error"
	}
}
