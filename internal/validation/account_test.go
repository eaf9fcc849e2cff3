package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcapi/pkg/api"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "valid username - lowercase",
			username: "alice",
		},
		{
			name:     "valid username - mixed case with numbers",
			username: "Alice123",
		},
		{
			name:     "valid username - with underscore",
			username: "alice_smith",
		},
		{
			name:     "valid username - with hyphen",
			username: "alice-smith",
		},
		{
			name:     "valid username - min length",
			username: "abcd",
		},
		{
			name:     "valid username - max length",
			username: strings.Repeat("a", 50),
		},
		{
			name:     "invalid - empty",
			username: "",
			wantErr:  true,
			errMsg:   "username cannot be empty",
		},
		{
			name:     "invalid - too short",
			username: "abc",
			wantErr:  true,
			errMsg:   "at least 4 characters",
		},
		{
			name:     "invalid - too long",
			username: strings.Repeat("a", 51),
			wantErr:  true,
			errMsg:   "must not exceed 50 characters",
		},
		{
			name:     "invalid - contains space",
			username: "alice smith",
			wantErr:  true,
		},
		{
			name:     "invalid - contains dot",
			username: "alice.smith",
			wantErr:  true,
		},
		{
			name:     "invalid - cyrillic",
			username: "алиса",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword("password123"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "user@example.com"},
		{name: "valid with plus", email: "user+tag@example.co.uk"},
		{name: "invalid - no at", email: "user.example.com", wantErr: true},
		{name: "invalid - no domain", email: "user@", wantErr: true},
		{name: "invalid - no tld", email: "user@example", wantErr: true},
		{name: "invalid - spaces", email: "user name@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name       string
		req        api.RegisterRequest
		wantFields []string
	}{
		{
			name: "valid without email",
			req:  api.RegisterRequest{Username: "testuser", Password: "password123"},
		},
		{
			name: "valid with email",
			req:  api.RegisterRequest{Username: "testuser", Password: "password123", Email: "test@example.com"},
		},
		{
			name:       "invalid username only",
			req:        api.RegisterRequest{Username: "ab", Password: "password123"},
			wantFields: []string{"username"},
		},
		{
			name:       "invalid password only",
			req:        api.RegisterRequest{Username: "testuser", Password: "123"},
			wantFields: []string{"password"},
		},
		{
			name:       "invalid email only",
			req:        api.RegisterRequest{Username: "testuser", Password: "password123", Email: "not-an-email"},
			wantFields: []string{"email"},
		},
		{
			name:       "all fields invalid reported together",
			req:        api.RegisterRequest{Username: "", Password: "123", Email: "bad"},
			wantFields: []string{"username", "password", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(&tt.req)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs Errors
			require.ErrorAs(t, err, &errs)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin(&api.LoginRequest{Username: "testuser", Password: "password123"}))

	err := ValidateLogin(&api.LoginRequest{})
	require.Error(t, err)
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")

	// Формат полей при login не проверяется: короткий пароль допустим
	assert.NoError(t, ValidateLogin(&api.LoginRequest{Username: "x", Password: "y"}))
}
