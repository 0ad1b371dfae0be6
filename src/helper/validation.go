package helper

import "unicode"

//ValidatePassword enforces the signup password policy.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return false, "Password must contain an uppercase letter"
	}
	if !hasLower {
		return false, "Password must contain a lowercase letter"
	}
	if !hasDigit {
		return false, "Password must contain a digit"
	}
	return true, ""
}
