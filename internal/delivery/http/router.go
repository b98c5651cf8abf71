package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hellolocal/shopads-service/internal/delivery/http/handlers"
	"github.com/hellolocal/shopads-service/internal/delivery/http/middleware"
	adrequest "github.com/hellolocal/shopads-service/internal/usecase/adrequest"
	payment "github.com/hellolocal/shopads-service/internal/usecase/payment"
)

func NewRouter(
	adRequests adrequest.AdRequestUsecase,
	payments payment.PaymentUsecase,
	maxAds int,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	sellerHandler := handlers.NewSellerHandler(adRequests, maxAds)
	adminHandler := handlers.NewAdminHandler(adRequests)
	paymentHandler := handlers.NewPaymentHandler(payments)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "Server is running"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		seller := v1.Group("/seller")
		seller.Use(middleware.SellerAuth())
		{
			seller.POST("/ad-requests", sellerHandler.Submit)
			seller.GET("/ad-requests", sellerHandler.ListMine)
			seller.GET("/ad-requests/:id", sellerHandler.GetMine)
			seller.POST("/ad-requests/:id/payment-proof", sellerHandler.SubmitPaymentProof)
			seller.DELETE("/ad-requests/:id", sellerHandler.Cancel)
			seller.GET("/ad-availability", sellerHandler.Availability)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/ad-requests", adminHandler.List)
			admin.GET("/ad-requests/stats", adminHandler.Stats)
			admin.GET("/ad-requests/:id", adminHandler.Get)
			admin.POST("/ad-requests/:id/approve", adminHandler.Approve)
			admin.POST("/ad-requests/:id/reject", adminHandler.Reject)
			admin.POST("/ad-requests/:id/verify-payment", adminHandler.VerifyPayment)
			admin.POST("/ad-requests/sweep-expired", adminHandler.SweepExpired)
			admin.PATCH("/shop-ads/:id", adminHandler.SetShopAdActive)
			admin.POST("/payments/:id/refund", paymentHandler.Refund)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("/orders", paymentHandler.CreateOrder)
			payments.POST("/verify", paymentHandler.Verify)
			payments.POST("/webhook", paymentHandler.Webhook)
		}
	}

	return router
}
