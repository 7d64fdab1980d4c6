package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pribylovaa/benford-auth/internal/service"
)

// TokenChecker проверяет токен вызывающего. Для jobs-сервиса это
// HTTP-клиент auth-сервиса (internal/clients/auth); собственной логики
// валидации на стороне jobs нет — любой не-200 ответ означает «не авторизован».
type TokenChecker interface {
	CheckToken(ctx context.Context, token string) error
}

// Handlers агрегирует зависимости HTTP-слоя.
// Auth заполняется только в jobs-сервисе.
type Handlers struct {
	Service *service.Service
	Auth    TokenChecker
}

func New(svc *service.Service) *Handlers {
	return &Handlers{Service: svc}
}

// NewWithAuth — вариант для jobs-сервиса с клиентом проверки токена.
func NewWithAuth(svc *service.Service, auth TokenChecker) *Handlers {
	return &Handlers{Service: svc, Auth: auth}
}

// writeJSON — единый успешный ответ JSON с нужным Content-Type.
// Успешные ответы строго 2XX (инвариант утилитарного слоя);
// ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	if status < 200 || status >= 300 {
		panic(fmt.Sprintf("handlers: non-success status %d used for success response", status))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
