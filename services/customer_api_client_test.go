package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lanchonete-app/backend/domain"
)

func TestCustomerAPIClientResolvesCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cpf/52998224725", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":12,"name":"Joao","email":"joao@example.com","cpf":"52998224725"}`))
	}))
	defer server.Close()

	client := NewCustomerAPIClient(server.URL, 5*time.Second)
	customer, err := client.ResolveByCPF("52998224725")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), customer.ID)
	assert.Equal(t, "Joao", customer.Name)
	assert.Equal(t, "52998224725", customer.CPF)
}

func TestCustomerAPIClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewCustomerAPIClient(server.URL, 5*time.Second)
	_, err := client.ResolveByCPF("52998224725")
	assert.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "Customer not found")
}

func TestCustomerAPIClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCustomerAPIClient(server.URL, 5*time.Second)
	_, err := client.ResolveByCPF("52998224725")
	assert.Error(t, err)
	assert.True(t, domain.IsExternalServiceError(err))
}

func TestCustomerAPIClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewCustomerAPIClient(server.URL, 20*time.Millisecond)
	_, err := client.ResolveByCPF("52998224725")
	assert.Error(t, err)

	var externalErr *domain.ExternalServiceError
	if assert.ErrorAs(t, err, &externalErr) {
		assert.True(t, externalErr.Timeout)
	}
}
