package models

import "time"

// Token — выданный bearer-токен доступа.
//
// Описание:
//   - Value — непрозрачная случайная строка (uuid v4), глобально уникальная
//     на момент выпуска; клиент предъявляет её как есть;
//   - UserID — от чьего имени выпущен токен (ссылка, не владение);
//   - ExpiresAt — момент истечения (UTC).
//
// Токен никогда не обновляется и не удаляется: валидность — чистая функция
// сохранённого состояния и текущего времени. Просроченные строки остаются
// в БД и просто считаются невалидными при проверке.
type Token struct {
	// Value — значение токена, которое предъявляет клиент.
	Value string
	// UserID — идентификатор пользователя, которому выпущен токен.
	UserID int64
	// ExpiresAt — время истечения действия токена (UTC).
	ExpiresAt time.Time
}

// Valid сообщает, действителен ли токен на момент now.
func (t *Token) Valid(now time.Time) bool {
	return now.Before(t.ExpiresAt)
}
