package auth

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)
)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidPhone checks if the phone number format is valid
func IsValidPhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return false
	}
	return phoneRegex.MatchString(phone)
}

func ValidateRegister(req *RegisterRequest) error {
	if len(strings.TrimSpace(req.Name)) < 2 {
		return errors.New("name must be at least 2 characters")
	}
	if !IsValidEmail(req.Email) {
		return errors.New("invalid email address")
	}
	if !IsValidPhone(req.Phone) {
		return errors.New("invalid phone number")
	}
	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

func ValidateAdminRegister(req *AdminRegisterRequest) error {
	if len(strings.TrimSpace(req.Name)) < 2 {
		return errors.New("name must be at least 2 characters")
	}
	if !IsValidEmail(req.Email) {
		return errors.New("invalid email address")
	}
	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

func ValidateLogin(req *LoginRequest) error {
	if !IsValidEmail(req.Email) {
		return errors.New("invalid email address")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
