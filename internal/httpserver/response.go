package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelstore/internal/domain"
	checkoutsvc "jewelstore/internal/service/checkout"
	customersvc "jewelstore/internal/service/customer"
	promotionsvc "jewelstore/internal/service/promotion"
)

// apiError is the error half of every response envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: apiError{Code: code, Message: message}})
}

// respondServiceError maps service errors onto the three tiers: client
// validation, expected business rejection, unexpected failure. Only the last
// tier gets logged.
func respondServiceError(c *gin.Context, logger *log.Logger, err error) {
	var verr *checkoutsvc.ValidationError
	var dverr domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, "validation_error", verr.Error())
	case errors.As(err, &dverr):
		respondError(c, http.StatusBadRequest, "validation_error", dverr.Error())
	case errors.Is(err, checkoutsvc.ErrEmptyCart):
		respondError(c, http.StatusBadRequest, "validation_error", "cart is empty")
	case errors.Is(err, checkoutsvc.ErrAuthenticationRequired),
		errors.Is(err, customersvc.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, "authentication_required", "sign in to continue")
	case errors.Is(err, customersvc.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect")
	case errors.Is(err, checkoutsvc.ErrSubmissionInFlight):
		respondError(c, http.StatusConflict, "submission_in_flight", "an order submission is already in progress")
	case errors.Is(err, domain.ErrInsufficientStock):
		respondError(c, http.StatusConflict, "insufficient_stock", "not enough stock for one of the items")
	case errors.Is(err, promotionsvc.ErrNotFound):
		respondError(c, http.StatusUnprocessableEntity, "promotion_not_found", "promotion code does not exist")
	case errors.Is(err, promotionsvc.ErrNotStarted):
		respondError(c, http.StatusUnprocessableEntity, "promotion_not_started", "promotion has not started yet")
	case errors.Is(err, promotionsvc.ErrExpired):
		respondError(c, http.StatusUnprocessableEntity, "promotion_expired", "promotion has expired")
	case errors.Is(err, promotionsvc.ErrConditionNotMet):
		respondError(c, http.StatusUnprocessableEntity, "promotion_condition_not_met", "order does not meet the promotion minimum")
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(c, http.StatusConflict, "already_exists", "already exists")
	default:
		if logger != nil {
			logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

// respondValidation is for request-shape errors raised in services via plain
// errors; they are user-facing but never logged as server failures.
func respondValidation(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, "validation_error", err.Error())
}
