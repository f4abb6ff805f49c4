package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebhookApprovesOrder(t *testing.T) {
	engine, db := setupAPI(t)
	product := seedCatalog(t, db)

	w := doJSON(t, engine, "POST", "/api/v1/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	orderID := int(data["ID"].(float64))
	paymentID := int64(data["PaymentID"].(float64))

	w = doJSON(t, engine, "POST", "/webhooks/payments", map[string]interface{}{
		"data": map[string]interface{}{"id": paymentID},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, "GET", fmt.Sprintf("/api/v1/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, "APROVADO", data["StatusPayment"])
	assert.Equal(t, "IN_PREPARATION", data["Status"])
}

func TestWebhookUnknownPaymentStillAccepted(t *testing.T) {
	engine, _ := setupAPI(t)

	w := doJSON(t, engine, "POST", "/webhooks/payments", map[string]interface{}{
		"data": map[string]interface{}{"id": 123456789},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookMalformedPayload(t *testing.T) {
	engine, _ := setupAPI(t)

	w := doJSON(t, engine, "POST", "/webhooks/payments", map[string]interface{}{
		"data": map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, "POST", "/webhooks/payments", map[string]interface{}{
		"type": "payment",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
