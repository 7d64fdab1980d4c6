// redact прячет чувствительные значения перед записью в лог:
// пароли и токены в лог не попадают никогда, имя пользователя — усечённым.
package redact

func Username(s string) string {
	if len(s) <= 2 {
		return "***"
	}

	return s[:2] + "***"
}

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }
