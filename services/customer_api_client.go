package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/utils"
)

const customerServiceName = "customer-api"

// CustomerAPIClient resolves customers from a remote customer directory.
// It is the directory-backed CustomerResolver implementation.
type CustomerAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCustomerAPIClient(baseURL string, timeout time.Duration) *CustomerAPIClient {
	return &CustomerAPIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type customerProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// ResolveByCPF fetches GET {base}/cpf/{cpf}. A 404 is a Not-Found; timeouts
// and transport failures surface as ExternalServiceError.
func (c *CustomerAPIClient) ResolveByCPF(cpf string) (*domain.Customer, error) {
	url := fmt.Sprintf("%s/cpf/%s", c.baseURL, cpf)
	start := time.Now()

	utils.InfoLogger.Printf("Fetching customer from directory: cpf=%s", maskCPF(cpf))

	resp, err := c.httpClient.Get(url)
	if err != nil {
		duration := time.Since(start)
		if isTimeout(err) {
			utils.ErrorLogger.Printf("Timeout fetching customer cpf=%s after %s", maskCPF(cpf), duration)
			return nil, &domain.ExternalServiceError{
				Service:  customerServiceName,
				Timeout:  true,
				Duration: duration,
				Err:      err,
			}
		}
		utils.ErrorLogger.Printf("Transport error fetching customer cpf=%s: %v", maskCPF(cpf), err)
		return nil, &domain.ExternalServiceError{
			Service:  customerServiceName,
			Duration: duration,
			Err:      err,
		}
	}
	defer resp.Body.Close()

	duration := time.Since(start)
	utils.InfoLogger.Printf("Customer directory response: cpf=%s status=%d duration=%s", maskCPF(cpf), resp.StatusCode, duration)

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNotFoundError("Customer not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ExternalServiceError{
			Service:  customerServiceName,
			Duration: duration,
			Err:      fmt.Errorf("customer directory returned status %d", resp.StatusCode),
		}
	}

	var profile customerProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, &domain.ExternalServiceError{
			Service:  customerServiceName,
			Duration: duration,
			Err:      fmt.Errorf("unparseable customer directory response: %w", err),
		}
	}

	return &domain.Customer{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
		CPF:   profile.CPF,
	}, nil
}

// maskCPF keeps only the last three digits in log output.
func maskCPF(cpf string) string {
	if len(cpf) < 4 {
		return "***"
	}
	return "***" + cpf[len(cpf)-3:]
}
