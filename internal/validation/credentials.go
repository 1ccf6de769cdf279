package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern — грубая проверка формата e-mail: local@domain.tld.
// Окончательную проверку выполняет сервер.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MaxEmailLen — ограничение длины адреса (RFC 5321)
const MaxEmailLen = 254

// ValidateEmail проверяет, что строка похожа на e-mail адрес
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email must look like name@example.com")
	}

	return nil
}

// ValidatePassword проверяет, что пароль введен.
// Требования к сложности пароля определяет сервер.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateNoteTitle проверяет заголовок заметки
func ValidateNoteTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("note title cannot be empty")
	}
	return nil
}
