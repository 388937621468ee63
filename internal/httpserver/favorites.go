package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func listFavoritesHandler(svc FavoriteService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		favorites, err := svc.List(c.Request.Context(), currentCustomer(c).ID)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": favorites})
	}
}

type addFavoriteRequest struct {
	ProductID string `json:"productId"`
}

func addFavoriteHandler(svc FavoriteService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			respondError(c, http.StatusBadRequest, "validation_error", "productId is required")
			return
		}
		favorite, err := svc.Add(c.Request.Context(), currentCustomer(c).ID, req.ProductID)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"favorite": favorite})
	}
}

func removeFavoriteHandler(svc FavoriteService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), currentCustomer(c).ID, c.Param("productID")); err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
