package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/benford-auth/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/токен).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (значение токена).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
// Пользователи создаются вне сервиса, поэтому интерфейс read-only.
type UserStorage interface {
	// UserByUsername находит пользователя по имени.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenStorage выполняет операции над токенами доступа.
type TokenStorage interface {
	// SaveToken сохраняет новый токен и возвращает число затронутых строк.
	// Сервисный слой требует ровно одну строку; иное — внутренний сбой.
	SaveToken(ctx context.Context, token *models.Token) (int64, error)
	// TokenByValue находит токен по его значению.
	TokenByValue(ctx context.Context, value string) (*models.Token, error)
}

// JobStorage выполняет операции над задачами.
type JobStorage interface {
	// ListJobs возвращает все задачи, отсортированные по jobid.
	ListJobs(ctx context.Context) ([]models.Job, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	TokenStorage
	JobStorage
	Close()
}
