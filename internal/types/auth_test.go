package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"valid", RegisterRequest{Name: "Alex", Email: "alex@example.com", Password: "password123"}, false},
		{"missing name", RegisterRequest{Email: "alex@example.com", Password: "password123"}, true},
		{"invalid email", RegisterRequest{Name: "Alex", Email: "not-an-email", Password: "password123"}, true},
		{"missing email", RegisterRequest{Name: "Alex", Password: "password123"}, true},
		{"password too short", RegisterRequest{Name: "Alex", Email: "alex@example.com", Password: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "alex@example.com", Password: "anything"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "anything"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "bad", Password: "anything"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "alex@example.com"}).Validate())
}
