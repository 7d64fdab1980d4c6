package models

// User — модель пользователя в системе.
//
// Пользователи создаются вне auth-сервиса (административно, при наполнении БД);
// сервис читает их только для проверки учётных данных.
type User struct {
	// UserID — числовой идентификатор пользователя (PK в таблице users).
	UserID int64
	// Username — уникальное имя пользователя.
	Username string
	// PasswordHash — bcrypt-хэш пароля; сам пароль нигде не хранится.
	PasswordHash string
}
