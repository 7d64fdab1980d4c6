package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/benford-auth/internal/errors"
)

// ListJobs обрабатывает GET /jobs.
//
// Доступ гейтится чужим auth-сервисом: токен из заголовка Authentication
// пересылается ему по сети, и любой не-200 ответ означает отказ.
// Маппинг ошибок:
//   - нет заголовка Authentication -> 401 no_credentials;
//   - auth-сервис не подтвердил токен -> 401 authentication_failure;
//   - прочие -> 400 (исторический контракт).
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authentication")
	if token == "" {
		apierrors.WriteError(w, r, apierrors.ErrNoCredentials)
		return
	}

	if err := h.Auth.CheckToken(r.Context(), token); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	jobs, err := h.Service.ListJobs(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}
