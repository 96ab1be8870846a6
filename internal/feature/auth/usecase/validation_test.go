package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name            string
		inputName       string
		email           string
		password        string
		confirmPassword string
		wantFields      []string
	}{
		{
			name:            "valid input",
			inputName:       "Alice",
			email:           "alice@example.com",
			password:        "password123",
			confirmPassword: "password123",
			wantFields:      nil,
		},
		{
			name:            "name too short",
			inputName:       "A",
			email:           "alice@example.com",
			password:        "password123",
			confirmPassword: "password123",
			wantFields:      []string{"name"},
		},
		{
			name:            "whitespace-only name",
			inputName:       "   ",
			email:           "alice@example.com",
			password:        "password123",
			confirmPassword: "password123",
			wantFields:      []string{"name"},
		},
		{
			name:            "invalid email",
			inputName:       "Alice",
			email:           "alice.example.com",
			password:        "password123",
			confirmPassword: "password123",
			wantFields:      []string{"email"},
		},
		{
			name:            "short password",
			inputName:       "Alice",
			email:           "alice@example.com",
			password:        "seven77",
			confirmPassword: "seven77",
			wantFields:      []string{"password"},
		},
		{
			name:            "password mismatch",
			inputName:       "Alice",
			email:           "alice@example.com",
			password:        "password123",
			confirmPassword: "password124",
			wantFields:      []string{"confirmPassword"},
		},
		{
			name:            "everything wrong at once",
			inputName:       "",
			email:           "nope",
			password:        "x",
			confirmPassword: "y",
			wantFields:      []string{"name", "email", "password", "confirmPassword"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := validateRegister(tt.inputName, tt.email, tt.password, tt.confirmPassword)

			if tt.wantFields == nil {
				assert.Nil(t, verr)
				return
			}

			require.NotNil(t, verr)
			assert.Len(t, verr.Fields, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, verr.Fields, field)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		wantFields []string
	}{
		{name: "valid input", email: "alice@example.com", password: "secret", wantFields: nil},
		{name: "invalid email", email: "alice", password: "secret", wantFields: []string{"email"}},
		{name: "empty password", email: "alice@example.com", password: "", wantFields: []string{"password"}},
		{name: "both invalid", email: "", password: "", wantFields: []string{"email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := validateLogin(tt.email, tt.password)

			if tt.wantFields == nil {
				assert.Nil(t, verr)
				return
			}

			require.NotNil(t, verr)
			assert.Len(t, verr.Fields, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, verr.Fields, field)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", normalizeEmail("  ALICE@Example.COM "))
}
