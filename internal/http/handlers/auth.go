package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/benford-auth/internal/errors"
)

// authRequest — тело POST /auth. Ровно две допустимые формы:
//
//	{ "token": "..." }
//	{ "username": "...", "password": "...", "duration": <минуты, опционально> }
//
// Форма определяется один раз здесь, на границе; глубже по коду проверок
// присутствия полей нет.
type authRequest struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Password string `json:"password"`
	Duration *int64 `json:"duration"`
}

// kind возвращает ветку обработки запроса.
const (
	reqMalformed = iota
	reqTokenCheck
	reqLogin
)

func (in *authRequest) kind() int {
	switch {
	case in.Token != "":
		return reqTokenCheck
	case in.Username != "" && in.Password != "":
		return reqLogin
	default:
		return reqMalformed
	}
}

// validTokenResponse — ответ на успешную проверку токена.
type validTokenResponse struct {
	Message string `json:"message"`
}

// tokenIssuedResponse — ответ на успешный логин.
type tokenIssuedResponse struct {
	Token string `json:"token"`
}

// Authenticate обрабатывает POST /auth: проверку токена или логин.
// Маппинг ошибок:
//   - битое/неполное тело -> 400 malformed_request;
//   - ErrInvalidToken/ErrTokenExpired/ErrInvalidUsername/ErrInvalidPassword -> 401;
//   - ErrPersistenceFailure и прочие -> 400 (исторический контракт).
func (h *Handlers) Authenticate(w http.ResponseWriter, r *http.Request) {
	var in authRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrMalformedRequest)
		return
	}

	switch in.kind() {
	case reqTokenCheck:
		if err := h.Service.CheckToken(r.Context(), in.Token); err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, validTokenResponse{Message: "valid token"})

	case reqLogin:
		token, err := h.Service.Login(r.Context(), in.Username, in.Password, in.Duration)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, tokenIssuedResponse{Token: token})

	default:
		apierrors.WriteError(w, r, apierrors.ErrMalformedRequest)
	}
}
