package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akylbek/payment-system/payment-gateway/internal/handlers"
	"github.com/akylbek/payment-system/payment-gateway/internal/middleware"
	"github.com/akylbek/payment-system/payment-gateway/internal/service"
	"github.com/akylbek/payment-system/payment-gateway/internal/telemetry"
)

func NewRouter(gateway *service.Gateway, apiKeys map[string]string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "payment-gateway"})
	})

	// Payment routes
	paymentHandler := handlers.NewPaymentHandler(gateway)
	payments := r.Group("/api/payments")
	if len(apiKeys) > 0 {
		payments.Use(middleware.APIKeyAuth(apiKeys))
	}
	payments.POST("", paymentHandler.ProcessPayment)
	payments.GET("/:id", paymentHandler.GetPayment)

	return r
}
