package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelstore/internal/domain"
	customersvc "jewelstore/internal/service/customer"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int             `json:"expiresIn"`
	Customer     domain.Customer `json:"customer"`
}

func signupHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customersvc.SignupInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		customer, err := svc.Signup(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, nil, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"customer": *customer})
	}
}

func loginHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "email and password are required")
			return
		}
		customer, access, refresh, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(c, nil, err)
			return
		}
		c.JSON(http.StatusOK, loginResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    svc.AccessTTLSeconds(),
			Customer:     *customer,
		})
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		if customer == nil {
			respondError(c, http.StatusUnauthorized, "authentication_required", "sign in to continue")
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": *customer})
	}
}

func logoutHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if err := svc.Logout(c.Request.Context(), token); err != nil {
				respondServiceError(c, nil, err)
				return
			}
		}
		c.Status(http.StatusNoContent)
	}
}

type profileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
}

func updateProfileHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		updated := *customer
		updated.FullName = req.FullName
		updated.Phone = req.Phone
		updated.Address = req.Address
		updated.City = req.City
		updated.District = req.District

		out, err := svc.UpdateProfile(c.Request.Context(), updated)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": *out})
	}
}
