package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test struct for validation
type testSignup struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,password"`
}

type testOTPVerify struct {
	LoyaltyCard string `json:"loyalty_card" validate:"required,loyalty_card"`
	OTPCode     string `json:"otp_code" validate:"required,otp_code"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		checkErr  func(*testing.T, error)
	}{
		{
			name: "valid signup",
			input: testSignup{
				Email:    "test@example.com",
				Username: "testuser",
				Password: "SecurePass123!",
			},
			wantError: false,
		},
		{
			name: "invalid email",
			input: testSignup{
				Email:    "invalid-email",
				Username: "testuser",
				Password: "SecurePass123!",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "email")
			},
		},
		{
			name: "missing required fields",
			input: testSignup{
				Email: "test@example.com",
				// Missing other required fields
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "username")
				assert.Contains(t, validationErr.Errors, "password")
			},
		},
		{
			name: "invalid password",
			input: testSignup{
				Email:    "test@example.com",
				Username: "testuser",
				Password: "weak",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "password")
			},
		},
		{
			name: "valid otp verification",
			input: testOTPVerify{
				LoyaltyCard: "LC-1042",
				OTPCode:     "123456",
			},
			wantError: false,
		},
		{
			name: "otp code too short",
			input: testOTPVerify{
				LoyaltyCard: "LC-1042",
				OTPCode:     "123",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "otp_code")
			},
		},
		{
			name: "otp code with letters",
			input: testOTPVerify{
				LoyaltyCard: "LC-1042",
				OTPCode:     "12a456",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "otp_code")
			},
		},
		{
			name: "loyalty card with spaces",
			input: testOTPVerify{
				LoyaltyCard: "LC 1042",
				OTPCode:     "123456",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "loyalty_card")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantError {
				assert.Error(t, err)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ValidateVar(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		field     interface{}
		tag       string
		wantError bool
	}{
		{
			name:      "valid email",
			field:     "test@example.com",
			tag:       "required,email",
			wantError: false,
		},
		{
			name:      "invalid email",
			field:     "invalid-email",
			tag:       "required,email",
			wantError: true,
		},
		{
			name:      "empty required field",
			field:     "",
			tag:       "required",
			wantError: true,
		},
		{
			name:      "valid otp code",
			field:     "042137",
			tag:       "required,otp_code",
			wantError: false,
		},
		{
			name:      "otp code with seven digits",
			field:     "1234567",
			tag:       "required,otp_code",
			wantError: true,
		},
		{
			name:      "valid loyalty card",
			field:     "FM-20250831",
			tag:       "required,loyalty_card",
			wantError: false,
		},
		{
			name:      "loyalty card too short",
			field:     "FM",
			tag:       "required,loyalty_card",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVar(tt.field, tt.tag)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid email", "test@example.com", true},
		{"valid email with subdomain", "user@mail.example.com", true},
		{"invalid email - no @", "testexample.com", false},
		{"invalid email - no domain", "test@", false},
		{"empty email", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"valid username", "testuser", true},
		{"valid with dots and dashes", "test.user-42", true},
		{"too short", "ab", false},
		{"illegal characters", "test user!", false},
		{"empty username", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidUsername(tt.username))
		})
	}
}

func TestIsValidOTPCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"valid code", "123456", true},
		{"leading zeros", "000001", true},
		{"too short", "12345", false},
		{"too long", "1234567", false},
		{"non numeric", "12345a", false},
		{"empty code", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidOTPCode(tt.code))
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{
		"email": "email is required",
	}}

	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "email is required")
}
