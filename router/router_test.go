package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lanchonete-app/backend/models"
	"github.com/lanchonete-app/backend/router"
	"github.com/lanchonete-app/backend/services"
)

type noopGateway struct{}

func (noopGateway) CreateCharge(amount decimal.Decimal, description, paymentMethodID string,
	installments int, payerEmail, identificationType, identificationNumber string) (*services.PaymentCharge, error) {
	return &services.PaymentCharge{ID: 1, Status: "pending"}, nil
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:routertest?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Customer{},
		&models.Order{}, &models.OrderItem{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return router.SetupRouter(db, noopGateway{})
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRateLimiterGuardsMountedRoutes(t *testing.T) {
	engine := setupRouter(t)

	w := get(engine, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	// The per-client budget is 50 requests per second; a burst past it from
	// one address must get throttled on a registered route.
	limited := false
	for i := 0; i < 60; i++ {
		if get(engine, "/health").Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited, "burst past the per-client budget was never throttled")
}
