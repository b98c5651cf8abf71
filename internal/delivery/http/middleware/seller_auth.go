package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SellerIDKey = "seller_id"

// SellerAuth extracts the authenticated seller id from the X-Seller-ID
// header set by the API gateway. Authentication itself happens upstream.
func SellerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetHeader("X-Seller-ID")
		if sellerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing X-Seller-ID header",
			})
			return
		}
		c.Set(SellerIDKey, sellerID)
		c.Next()
	}
}
