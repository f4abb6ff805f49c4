package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCustomerValid(t *testing.T) {
	customer, err := NewCustomer("Joao Silva", "Joao.Silva@Example.com", "529.982.247-25")
	assert.NoError(t, err)
	assert.Equal(t, "Joao Silva", customer.Name)
	assert.Equal(t, "joao.silva@example.com", customer.Email)
	assert.Equal(t, "52998224725", customer.CPF)
}

func TestNewCustomerEmptyName(t *testing.T) {
	_, err := NewCustomer("   ", "joao@example.com", "52998224725")
	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Contains(t, err.Error(), "Name cannot be empty")
}

func TestNewCustomerInvalidEmail(t *testing.T) {
	_, err := NewCustomer("Joao", "not-an-email", "52998224725")
	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Contains(t, err.Error(), "Invalid email format")
}

func TestNewCustomerEmailOptional(t *testing.T) {
	customer, err := NewCustomer("Joao", "", "52998224725")
	assert.NoError(t, err)
	assert.Equal(t, "", customer.Email)
}

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "bare digits", input: "52998224725", want: "52998224725"},
		{name: "formatted", input: "529.982.247-25", want: "52998224725"},
		{name: "too short", input: "5299822472", wantErr: "CPF must contain exactly 11 digits"},
		{name: "too long", input: "529982247250", wantErr: "CPF must contain exactly 11 digits"},
		{name: "bad checksum", input: "52998224726", wantErr: "Invalid CPF checksum"},
		{name: "repeated digit", input: "11111111111", wantErr: "Invalid CPF checksum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCPF(tt.input)
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
