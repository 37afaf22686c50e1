package service

import (
	"unicode"

	"github.com/art-exhibition/internal/config"
)

// passwordPolicyError 密码不满足策略，携带 i18n key 与参数，errors.Is 匹配 ErrPasswordWeak
type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string { return e.key }
func (e passwordPolicyError) Is(target error) bool { return target == ErrPasswordWeak }
func (e passwordPolicyError) Key() string { return e.key }
func (e passwordPolicyError) Args() []interface{} { return e.args }

type charClass struct {
	required bool
	match    func(rune) bool
	key      string
}

func isSpecialRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}

	classes := []charClass{
		{required: policy.RequireUpper, match: unicode.IsUpper, key: "error.password_require_upper"},
		{required: policy.RequireLower, match: unicode.IsLower, key: "error.password_require_lower"},
		{required: policy.RequireNumber, match: unicode.IsDigit, key: "error.password_require_number"},
		{required: policy.RequireSpecial, match: isSpecialRune, key: "error.password_require_special"},
	}
	for _, class := range classes {
		if class.required && !containsRune(password, class.match) {
			return passwordPolicyError{key: class.key}
		}
	}
	return nil
}

func containsRune(s string, match func(rune) bool) bool {
	for _, r := range s {
		if match(r) {
			return true
		}
	}
	return false
}
