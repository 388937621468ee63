package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jewelstore/internal/domain"
	checkoutsvc "jewelstore/internal/service/checkout"
	promotionsvc "jewelstore/internal/service/promotion"
)

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer some-token")
	return req
}

func TestApplyPromotionHandler_OK(t *testing.T) {
	deps := testDeps()
	checkout := &stubCheckoutSvc{quote: &checkoutsvc.Quote{
		Subtotal:       1_000_000,
		Discount:       100_000,
		ShippingFee:    20_000,
		Total:          920_000,
		TotalFormatted: "920.000 ₫",
		PromotionName:  "Giảm 10%",
	}}
	deps.CheckoutSvc = checkout
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/promotions/apply", `{"code":"SALE10"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if checkout.gotCode != "SALE10" {
		t.Fatalf("expected code SALE10 passed to service, got %q", checkout.gotCode)
	}
	if !strings.Contains(rec.Body.String(), `"total":920000`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestApplyPromotionHandler_RejectionCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{"not found", promotionsvc.ErrNotFound, "promotion_not_found"},
		{"not started", promotionsvc.ErrNotStarted, "promotion_not_started"},
		{"expired", promotionsvc.ErrExpired, "promotion_expired"},
		{"condition not met", promotionsvc.ErrConditionNotMet, "promotion_condition_not_met"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := testDeps()
			deps.CheckoutSvc = &stubCheckoutSvc{quoteErr: tc.err}
			router := newTestRouter(t, deps)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/promotions/apply", `{"code":"X"}`))

			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.code) {
				t.Fatalf("expected code %s in body: %s", tc.code, rec.Body.String())
			}
		})
	}
}

func TestSubmitOrderHandler_Created(t *testing.T) {
	deps := testDeps()
	checkout := &stubCheckoutSvc{order: &domain.Order{
		ID:     "order-1",
		Number: "JW-A1B2C3D4",
		Status: domain.OrderPending,
		Total:  1_020_000,
	}}
	deps.CheckoutSvc = checkout
	router := newTestRouter(t, deps)

	body := `{"promotionCode":"SALE10","recipient":{"name":"An","phone":"0901234567","address":"1 Lê Lợi","city":"HCM","district":"Q1"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if checkout.gotDraft.PromotionCode != "SALE10" {
		t.Fatalf("expected draft code SALE10, got %q", checkout.gotDraft.PromotionCode)
	}
	if checkout.gotDraft.Recipient.Name != "An" {
		t.Fatalf("expected recipient name bound, got %+v", checkout.gotDraft.Recipient)
	}
	if !strings.Contains(rec.Body.String(), `"number":"JW-A1B2C3D4"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubmitOrderHandler_MissingRecipientField(t *testing.T) {
	deps := testDeps()
	deps.CheckoutSvc = &stubCheckoutSvc{submitErr: &checkoutsvc.ValidationError{Field: "name"}}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", `{"recipient":{}}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "name is required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubmitOrderHandler_EmptyCart(t *testing.T) {
	deps := testDeps()
	deps.CheckoutSvc = &stubCheckoutSvc{submitErr: checkoutsvc.ErrEmptyCart}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", `{"recipient":{"name":"An"}}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSubmitOrderHandler_InsufficientStock(t *testing.T) {
	deps := testDeps()
	deps.CheckoutSvc = &stubCheckoutSvc{submitErr: domain.ErrInsufficientStock}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", `{"recipient":{"name":"An"}}`))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "insufficient_stock") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubmitOrderHandler_InFlight(t *testing.T) {
	deps := testDeps()
	deps.CheckoutSvc = &stubCheckoutSvc{submitErr: checkoutsvc.ErrSubmissionInFlight}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", `{"recipient":{"name":"An"}}`))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "submission_in_flight") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubmitOrderHandler_Unauthenticated(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}
