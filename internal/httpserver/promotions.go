package httpserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jewelstore/internal/domain"
)

// promotionView adds the derived status to the stored fields. Status is
// computed from the window at response time, never read from storage.
type promotionView struct {
	domain.Promotion
	Status string `json:"status"`
}

func toPromotionView(p domain.Promotion, now time.Time) promotionView {
	return promotionView{Promotion: p, Status: p.StatusAt(now)}
}

func listPromotionsHandler(svc PromotionService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		promotions, err := svc.List(c.Request.Context())
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		now := time.Now()
		views := make([]promotionView, 0, len(promotions))
		for _, p := range promotions {
			views = append(views, toPromotionView(p, now))
		}
		c.JSON(http.StatusOK, gin.H{"promotions": views})
	}
}

type promotionRequest struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Percent     int       `json:"percent"`
	MinSubtotal int64     `json:"minSubtotal"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
}

func (r promotionRequest) toDomain(id string) domain.Promotion {
	return domain.Promotion{
		ID:          id,
		Code:        r.Code,
		Name:        r.Name,
		Percent:     r.Percent,
		MinSubtotal: r.MinSubtotal,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
	}
}

func createPromotionHandler(svc PromotionService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req promotionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		promotion, err := svc.Create(c.Request.Context(), req.toDomain(""))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"promotion": toPromotionView(*promotion, time.Now())})
	}
}

func updatePromotionHandler(svc PromotionService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req promotionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		promotion, err := svc.Update(c.Request.Context(), req.toDomain(c.Param("id")))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"promotion": toPromotionView(*promotion, time.Now())})
	}
}

func deletePromotionHandler(svc PromotionService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
