package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/benford-auth/internal/models"
	"github.com/pribylovaa/benford-auth/internal/pkg/log"
	"github.com/pribylovaa/benford-auth/internal/pkg/redact"
	"github.com/pribylovaa/benford-auth/internal/storage"
)

// CheckToken проверяет предъявленный токен.
//
// Поведение:
//   - токен не найден -> ErrInvalidToken;
//   - токен найден, но now >= expiration_utc -> ErrTokenExpired;
//   - иначе nil.
//
// Операция read-only: повторная проверка того же токена ничего не мутирует.
func (s *Service) CheckToken(ctx context.Context, token string) error {
	const op = "service.auth.CheckToken"

	lg := log.From(ctx)

	stored, err := s.storage.TokenByValue(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Info("token_not_found", slog.String("op", op), slog.String("token", redact.Token()))

			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !stored.Valid(time.Now().UTC()) {
		lg.Info("token_expired",
			slog.String("op", op),
			slog.Int64("userid", stored.UserID),
			slog.Time("expiration_utc", stored.ExpiresAt),
		)

		return fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	return nil
}

// Login аутентифицирует пользователя по паре логин/пароль и при успехе
// выпускает новый токен, сохраняя его в БД.
//
// durationMinutes — запрошенная клиентом длительность токена в минутах
// (nil — не передана). Значения вне [min, max] молча игнорируются и действует
// длительность по умолчанию; ошибкой это не считается.
func (s *Service) Login(ctx context.Context, username, password string, durationMinutes *int64) (string, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)

	ttl := s.resolveTTL(durationMinutes)

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Info("unknown_username", slog.String("op", op), slog.String("username", redact.Username(username)))

			return "", fmt.Errorf("%s: %w", op, ErrInvalidUsername)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Info("password_mismatch", slog.String("op", op), slog.Int64("userid", user.UserID))

		return "", fmt.Errorf("%s: %w", op, ErrInvalidPassword)
	}

	token := &models.Token{
		Value:     uuid.NewString(),
		UserID:    user.UserID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}

	rows, err := s.storage.SaveToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	// Ровно одна строка; 0 или больше одной — внутренний сбой персистентности.
	if rows != 1 {
		lg.Error("token_insert_rows_mismatch",
			slog.String("op", op),
			slog.Int64("rows", rows),
			slog.Int64("userid", user.UserID),
		)

		return "", fmt.Errorf("%s: %w", op, ErrPersistenceFailure)
	}

	lg.Info("token_issued",
		slog.Int64("userid", user.UserID),
		slog.Time("expiration_utc", token.ExpiresAt),
	)

	return token.Value, nil
}

// resolveTTL выбирает длительность токена.
// Запрошенное значение принимается только внутри [MinTokenTTL, MaxTokenTTL];
// всё остальное (включая nil) даёт DefaultTokenTTL. Прижатия к границе нет.
func (s *Service) resolveTTL(durationMinutes *int64) time.Duration {
	if durationMinutes == nil {
		return s.cfg.DefaultTokenTTL
	}

	requested := time.Duration(*durationMinutes) * time.Minute
	if requested >= s.cfg.MinTokenTTL && requested <= s.cfg.MaxTokenTTL {
		return requested
	}

	return s.cfg.DefaultTokenTTL
}

// checkPassword сравнивает пароль с bcrypt-хэшем.
// Сравнение внутри bcrypt устойчиво к утечке по времени выполнения.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
