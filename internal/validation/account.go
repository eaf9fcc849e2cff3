package validation

import (
	"fmt"
	"regexp"

	"calcapi/pkg/api"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), дефис (-) и нижнее подчеркивание (_)
// Длина: 4-50 символов
var UsernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// EmailPattern стандартный паттерн для проверки формата email
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 4
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 50
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
)

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), hyphens (-) and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateRegistration проверяет запрос на регистрацию
// Возвращает Errors со всеми нарушенными полями
func ValidateRegistration(req *api.RegisterRequest) error {
	errs := Errors{}

	if err := ValidateUsername(req.Username); err != nil {
		errs.Add("username", err.Error())
	}

	if err := ValidatePassword(req.Password); err != nil {
		errs.Add("password", err.Error())
	}

	// Email опционален, но если указан — формат проверяется
	if req.Email != "" {
		if err := ValidateEmail(req.Email); err != nil {
			errs.Add("email", err.Error())
		}
	}

	return errs.ErrOrNil()
}

// ValidateLogin проверяет запрос на вход
// Формат полей здесь не проверяется: достаточно непустых значений,
// остальное решает сверка учетных данных
func ValidateLogin(req *api.LoginRequest) error {
	errs := Errors{}

	if req.Username == "" {
		errs.Add("username", "username is required")
	}
	if req.Password == "" {
		errs.Add("password", "password is required")
	}

	return errs.ErrOrNil()
}
