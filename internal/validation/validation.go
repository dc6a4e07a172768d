// Package validation holds the credential-format predicates that gate user
// registration. They are pure functions; callers map a false result to a
// validation error.
package validation

const passwordSpecials = "!@#$%^&*()-+"

// Nickname reports whether s is a well-formed nickname: 3 to 50 characters,
// each an ASCII letter, digit, underscore, or hyphen.
func Nickname(s string) bool {
	if len(s) < 3 || len(s) > 50 {
		return false
	}

	for _, ch := range []byte(s) {
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '_' || ch == '-':
		default:
			return false
		}
	}

	return true
}

// Password reports whether s is an acceptable password: 8 to 1024 characters
// containing at least one uppercase letter, one lowercase letter, one digit,
// and one character from "!@#$%^&*()-+". The scan stops as soon as all four
// classes have been seen.
func Password(s string) bool {
	if len(s) < 8 || len(s) > 1024 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool

	for _, ch := range []byte(s) {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		default:
			for i := 0; i < len(passwordSpecials); i++ {
				if ch == passwordSpecials[i] {
					hasSpecial = true
					break
				}
			}
		}

		if hasUpper && hasLower && hasDigit && hasSpecial {
			return true
		}
	}

	return false
}
