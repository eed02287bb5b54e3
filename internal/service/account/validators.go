package account

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const minPasswordLength = 6

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

func isValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength
}
