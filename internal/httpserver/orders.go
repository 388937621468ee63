package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func listOrdersHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListByCustomer(c.Request.Context(), currentCustomer(c).ID)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func getOrderHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), currentCustomer(c).ID, c.Param("id"))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

func adminListOrdersHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		orders, total, err := svc.AdminList(c.Request.Context(), limit, offset)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		})
	}
}

func adminGetOrderHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.AdminGet(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func setOrderStatusHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		if err := svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
