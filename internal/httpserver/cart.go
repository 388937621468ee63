package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "jewelstore/internal/service/cart"
)

func getCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), currentCustomer(c).ID)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func addCartLineHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartsvc.AddLineInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		cart, err := svc.AddLine(c.Request.Context(), currentCustomer(c).ID, req)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

type changeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func changeCartLineHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req changeQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		cart, err := svc.ChangeLineQuantity(c.Request.Context(), currentCustomer(c).ID, c.Param("lineID"), req.Quantity)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func removeCartLineHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveLine(c.Request.Context(), currentCustomer(c).ID, c.Param("lineID"))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func clearCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), currentCustomer(c).ID); err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
