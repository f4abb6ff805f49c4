package router

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lanchonete-app/backend/controllers"
	"github.com/lanchonete-app/backend/middlewares"
	"github.com/lanchonete-app/backend/repositories"
	"github.com/lanchonete-app/backend/services"
)

// SetupRouter wires repositories, services and controllers onto a gin
// engine. The payment gateway is injected so tests can swap a fake in.
func SetupRouter(db *gorm.DB, gateway services.PaymentGateway) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Registered before the route groups; gin snapshots the middleware chain
	// per route at registration time.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	orderRepo := repositories.NewOrderRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)

	resolver := customerResolver(customerRepo)

	orderService := services.NewOrderService(orderRepo, productRepo, resolver, gateway, services.PayerDefaultsFromEnv())
	notificationService := services.NewPaymentNotificationService(orderService)
	categoryService := services.NewCategoryService(categoryRepo, productRepo)
	productService := services.NewProductService(productRepo, categoryRepo, orderRepo)
	customerService := services.NewCustomerService(customerRepo)

	healthCtrl := controllers.NewHealthController(db)
	categoryCtrl := controllers.NewCategoryController(categoryService)
	productCtrl := controllers.NewProductController(productService)
	customerCtrl := controllers.NewCustomerController(customerService)
	orderCtrl := controllers.NewOrderController(orderService)
	webhookCtrl := controllers.NewWebhookController(notificationService)

	r.GET("/health", healthCtrl.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/categories", categoryCtrl.GetAllCategories)
		api.POST("/categories", categoryCtrl.CreateCategory)
		api.GET("/categories/:id", categoryCtrl.GetCategoryByID)
		api.PUT("/categories/:id", categoryCtrl.UpdateCategory)
		api.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		api.GET("/products", productCtrl.GetProducts)
		api.POST("/products", productCtrl.CreateProduct)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.PUT("/products/:id", productCtrl.UpdateProduct)
		api.PATCH("/products/:id/activate", productCtrl.ActivateProduct)
		api.PATCH("/products/:id/deactivate", productCtrl.DeactivateProduct)
		api.DELETE("/products/:id", productCtrl.DeleteProduct)

		api.GET("/customers", customerCtrl.GetAllCustomers)
		api.POST("/customers", customerCtrl.CreateCustomer)
		api.GET("/customers/:id", customerCtrl.GetCustomerByID)
		api.GET("/customers/cpf/:cpf", customerCtrl.GetCustomerByCPF)

		api.GET("/orders", orderCtrl.GetOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:id", orderCtrl.GetOrderByID)
		api.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		api.POST("/orders/:id/preparation", orderCtrl.StartPreparation)
	}

	webhooks := r.Group("/webhooks")
	webhooks.Use(middlewares.NewWebhookRateLimiter())
	{
		webhooks.POST("/payments", webhookCtrl.HandlePaymentNotification)
	}

	return r
}

// customerResolver picks the customer source: the local store by default, a
// remote customer directory when CUSTOMER_API_URL is set.
func customerResolver(customerRepo *repositories.CustomerRepository) services.CustomerResolver {
	if baseURL := os.Getenv("CUSTOMER_API_URL"); baseURL != "" {
		return services.NewCustomerAPIClient(baseURL, 10*time.Second)
	}
	return services.NewRepositoryCustomerResolver(customerRepo)
}
