package v1

import (
	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	categoryService categories.CategoryService,
	paymentTypeService paymenttypes.PaymentTypeService,
	orderService orders.OrderService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Categories Routes
	categoryHandler := NewCategoryHandler(categoryService)
	v1.GET("/categories", categoryHandler.List)
	v1.GET("/categories/:id", categoryHandler.Retrieve)

	// Orders Routes
	orderHandler := NewOrderHandler(orderService)
	v1.GET("/orders", orderHandler.List)
	v1.GET("/orders/:id", orderHandler.Retrieve)
	v1.POST("/orders", orderHandler.Create)
	v1.PUT("/orders/:id", orderHandler.Update)

	// Payment Types Routes
	paymentTypeHandler := NewPaymentTypeHandler(paymentTypeService)
	v1.GET("/payment_types", paymentTypeHandler.List)
	v1.GET("/payment_types/:id", paymentTypeHandler.Retrieve)
	v1.POST("/payment_types", paymentTypeHandler.Create)
	v1.PUT("/payment_types/:id", paymentTypeHandler.Update)
	v1.DELETE("/payment_types/:id", paymentTypeHandler.Destroy)
}

// SetupHealthRoute registers the liveness endpoint
func SetupHealthRoute(r *gin.Engine, check HealthCheck) {
	r.GET("/healthz", NewHealthHandler(check).Healthz)
}
