package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	reviewsvc "jewelstore/internal/service/review"
)

func listReviewsHandler(svc ReviewService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := svc.ListByProductSlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

func createReviewHandler(svc ReviewService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reviewsvc.CreateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		review, err := svc.Create(c.Request.Context(), currentCustomer(c).ID, c.Param("slug"), req)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"review": review})
	}
}
