package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutsvc "jewelstore/internal/service/checkout"
)

type applyPromotionRequest struct {
	Code string `json:"code"`
}

// applyPromotionHandler prices the cart with a voucher code. Nothing is
// persisted; the same resolution runs again at submission time.
func applyPromotionHandler(svc CheckoutService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyPromotionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		quote, err := svc.Quote(c.Request.Context(), currentCustomer(c).ID, req.Code)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"quote": quote})
	}
}

func submitOrderHandler(svc CheckoutService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft checkoutsvc.Draft
		if err := c.ShouldBindJSON(&draft); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		order, err := svc.Submit(c.Request.Context(), currentCustomer(c).ID, draft)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}
