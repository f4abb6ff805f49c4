package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/utils"
)

const mercadoPagoServiceName = "mercado-pago"

// MercadoPagoConfig holds Mercado Pago configuration.
type MercadoPagoConfig struct {
	AccessToken     string
	BaseURL         string
	NotificationURL string
	Timeout         time.Duration
}

// MercadoPagoService creates payment charges against the Mercado Pago API.
type MercadoPagoService struct {
	config     *MercadoPagoConfig
	httpClient *http.Client
}

var (
	mercadoPagoService *MercadoPagoService
	mercadoPagoOnce    sync.Once
)

// GetMercadoPagoService returns the singleton instance configured from the
// environment.
func GetMercadoPagoService() *MercadoPagoService {
	mercadoPagoOnce.Do(func() {
		config := &MercadoPagoConfig{
			AccessToken:     os.Getenv("MERCADO_PAGO_ACCESS_TOKEN"),
			BaseURL:         os.Getenv("MERCADO_PAGO_BASE_URL"),
			NotificationURL: os.Getenv("MERCADO_PAGO_NOTIFICATION_URL"),
			Timeout:         30 * time.Second,
		}

		if config.BaseURL == "" {
			config.BaseURL = "https://api.mercadopago.com"
		}
		if raw := os.Getenv("MERCADO_PAGO_TIMEOUT_SECONDS"); raw != "" {
			if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
				config.Timeout = time.Duration(seconds) * time.Second
			}
		}
		if config.AccessToken == "" {
			utils.ErrorLogger.Println("WARNING: MERCADO_PAGO_ACCESS_TOKEN is empty, gateway calls will be rejected")
		}

		mercadoPagoService = NewMercadoPagoService(config)
	})
	return mercadoPagoService
}

// NewMercadoPagoService creates a new instance with the given configuration.
func NewMercadoPagoService(config *MercadoPagoConfig) *MercadoPagoService {
	return &MercadoPagoService{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// ValidateConfig validates Mercado Pago configuration.
func (ms *MercadoPagoService) ValidateConfig() error {
	if ms.config.AccessToken == "" {
		return fmt.Errorf("MERCADO_PAGO_ACCESS_TOKEN is not set")
	}
	if ms.config.BaseURL == "" {
		return fmt.Errorf("MERCADO_PAGO_BASE_URL is not set")
	}
	return nil
}

type chargeResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// CreateCharge creates a payment at Mercado Pago and returns its assigned id.
// Timeouts and transport failures surface as ExternalServiceError; a response
// body without a usable id, or carrying a status outside the known payment
// vocabulary, is a GatewayContractError.
func (ms *MercadoPagoService) CreateCharge(amount decimal.Decimal, description, paymentMethodID string,
	installments int, payerEmail, identificationType, identificationNumber string) (*PaymentCharge, error) {

	url := ms.config.BaseURL + "/v1/payments"

	payer := map[string]interface{}{
		"email": payerEmail,
	}
	if identificationType != "" && identificationNumber != "" {
		payer["identification"] = map[string]interface{}{
			"type":   identificationType,
			"number": identificationNumber,
		}
	}

	payload := map[string]interface{}{
		"transaction_amount": amount,
		"description":        description,
		"payment_method_id":  paymentMethodID,
		"installments":       installments,
		"payer":              payer,
	}
	if ms.config.NotificationURL != "" {
		payload["notification_url"] = ms.config.NotificationURL
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling charge request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating charge request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ms.config.AccessToken)
	req.Header.Set("X-Idempotency-Key", uuid.New().String())

	start := time.Now()
	resp, err := ms.httpClient.Do(req)
	if err != nil {
		duration := time.Since(start)
		if isTimeout(err) {
			utils.ErrorLogger.Printf("Timeout creating charge at %s after %s", mercadoPagoServiceName, duration)
			return nil, &domain.ExternalServiceError{
				Service:  mercadoPagoServiceName,
				Timeout:  true,
				Duration: duration,
				Err:      err,
			}
		}
		utils.ErrorLogger.Printf("Transport error creating charge at %s: %v", mercadoPagoServiceName, err)
		return nil, &domain.ExternalServiceError{
			Service:  mercadoPagoServiceName,
			Duration: duration,
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ExternalServiceError{
			Service:  mercadoPagoServiceName,
			Duration: time.Since(start),
			Err:      err,
		}
	}

	utils.InfoLogger.Printf("Mercado Pago charge response: status=%d duration=%s", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.ExternalServiceError{
			Service:  mercadoPagoServiceName,
			Duration: time.Since(start),
			Err:      fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var charge chargeResponse
	if err := json.Unmarshal(body, &charge); err != nil {
		return nil, &domain.GatewayContractError{Message: "unparseable gateway charge response", Err: err}
	}
	if charge.ID == 0 {
		return nil, &domain.GatewayContractError{Message: "gateway charge response has no payment id"}
	}
	if _, err := domain.StatusPaymentFromGateway(charge.Status); err != nil {
		return nil, err
	}

	return &PaymentCharge{ID: charge.ID, Status: charge.Status}, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
