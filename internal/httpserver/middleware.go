package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jewelstore/internal/domain"
)

const customerCtxKey = "jewelstore.customer"

// authMiddleware resolves the Bearer token into a customer and attaches it
// to the request. Identity flows through this one path only.
func authMiddleware(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "authentication_required", "sign in to continue")
			return
		}
		customer, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "authentication_required", "sign in to continue")
			return
		}
		c.Set(customerCtxKey, customer)
		c.Next()
	}
}

// adminMiddleware runs after authMiddleware and requires the admin flag.
func adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		if customer == nil || !customer.IsAdmin {
			respondError(c, http.StatusForbidden, "forbidden", "admin access required")
			return
		}
		c.Next()
	}
}

func currentCustomer(c *gin.Context) *domain.Customer {
	v, ok := c.Get(customerCtxKey)
	if !ok {
		return nil
	}
	customer, ok := v.(*domain.Customer)
	if !ok {
		return nil
	}
	return customer
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
