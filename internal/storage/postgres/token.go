package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/benford-auth/internal/models"
	"github.com/pribylovaa/benford-auth/internal/storage"
)

// SaveToken сохраняет новый токен в БД и возвращает число затронутых строк.
// Число отдаётся наверх как есть: решение "ровно одна строка или сбой"
// принимает сервисный слой.
func (s *Storage) SaveToken(ctx context.Context, token *models.Token) (int64, error) {
	const op = "storage.postgres.SaveToken"

	query := `
		INSERT INTO tokens(token, userid, expiration_utc)
		VALUES ($1, $2, $3)
	`

	cmdTag, err := s.db.Exec(ctx, query,
		token.Value,
		token.UserID,
		token.ExpiresAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected(), nil
}

// TokenByValue находит токен по его значению.
func (s *Storage) TokenByValue(ctx context.Context, value string) (*models.Token, error) {
	const op = "storage.postgres.TokenByValue"

	query := `
		SELECT token, userid, expiration_utc
		FROM tokens
		WHERE token = $1
	`

	var token models.Token
	err := s.db.QueryRow(ctx, query, value).Scan(
		&token.Value,
		&token.UserID,
		&token.ExpiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &token, nil
}
