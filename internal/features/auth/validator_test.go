package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"jane@example.com", "a.b+tag@sub.domain.org"}
	for _, email := range valid {
		require.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "  ", "jane", "jane@", "@example.com", "jane@example"}
	for _, email := range invalid {
		require.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"+14155550100", "415-555-0100", "(415) 555 0100"}
	for _, phone := range valid {
		require.True(t, IsValidPhone(phone), phone)
	}

	invalid := []string{"", "abc", "123", "+1415555010012345678901"}
	for _, phone := range invalid {
		require.False(t, IsValidPhone(phone), phone)
	}
}

func TestValidateRegister(t *testing.T) {
	req := &RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+14155550100",
		Password: "secret123",
	}
	require.NoError(t, ValidateRegister(req))

	for _, mutate := range []func(*RegisterRequest){
		func(r *RegisterRequest) { r.Name = "J" },
		func(r *RegisterRequest) { r.Email = "nope" },
		func(r *RegisterRequest) { r.Phone = "abc" },
		func(r *RegisterRequest) { r.Password = "12345" },
	} {
		bad := *req
		mutate(&bad)
		require.Error(t, ValidateRegister(&bad))
	}
}

func TestValidateAdminRegister(t *testing.T) {
	req := &AdminRegisterRequest{
		Name:     "Site Admin",
		Email:    "admin@example.com",
		Password: "secret123",
	}
	require.NoError(t, ValidateAdminRegister(req))

	req.Password = "short"
	require.Error(t, ValidateAdminRegister(req))
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, ValidateLogin(&LoginRequest{Email: "jane@example.com", Password: "x"}))
	require.Error(t, ValidateLogin(&LoginRequest{Email: "bad", Password: "x"}))
	require.Error(t, ValidateLogin(&LoginRequest{Email: "jane@example.com"}))
}
