// service содержит бизнес-логику авторизации: проверку предъявленного
// токена и аутентификацию по паре логин/пароль с выпуском нового токена.
// Работа с хранилищем идёт через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Проверка токена read-only и идемпотентна; параллельные логины одного
//     пользователя независимы — каждый выпускает собственную строку токена.
//   - Ошибки возвращаются сентинелами и далее маппятся HTTP-слоем
//     на статусы (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/benford-auth/internal/config"
	"github.com/pribylovaa/benford-auth/internal/storage"
)

var (
	// ErrInvalidToken — предъявленный токен не найден в хранилище.
	// HTTP-слой: 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — токен найден, но срок его действия истёк.
	// HTTP-слой: тот же 401, что и ErrInvalidToken, но причина различима
	// во внутренних логах/ошибках.
	ErrTokenExpired = errors.New("expired token")

	// ErrInvalidUsername — пользователь с таким именем не найден.
	// HTTP-слой: 401.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword — пользователь найден, пароль не подошёл.
	// HTTP-слой: 401 (снаружи неотличим от ErrInvalidUsername).
	ErrInvalidPassword = errors.New("invalid password")

	// ErrPersistenceFailure — вставка токена затронула не ровно одну строку.
	// Исторический контракт сервиса отдаёт это как 400, а не 500;
	// см. комментарий в пакете errors.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Service описывает бизнес-логику авторизации.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}
