package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"aurum-pay.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIRoutes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIRoutes(r, routeDeps{
		routeHandler:       &handlers.RouteHandler{},
		chainHandler:       &handlers.ChainHandler{},
		balanceHandler:     &handlers.BalanceHandler{},
		merchantHandler:    &handlers.MerchantHandler{},
		transactionHandler: &handlers.TransactionHandler{},
		qrHandler:          &handlers.QRHandler{},
		healthHandler:      handlers.NewHealthHandler(version),
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/detect-route"},
		{"POST", "/api/prepare-transaction"},
		{"POST", "/api/validate-route"},
		{"GET", "/api/supported-chains"},
		{"GET", "/api/user-balances/:wallet"},
		{"GET", "/api/token-addresses/:chainId"},
		{"GET", "/api/gas-estimate/:chainId"},
		{"POST", "/api/merchants"},
		{"GET", "/api/merchants/:id"},
		{"POST", "/api/transactions"},
		{"POST", "/api/transactions/:id/confirm"},
		{"POST", "/api/merchants/:id/qr"},
		{"GET", "/api/qr/:id"},
		{"GET", "/api/health"},
		{"GET", "/api/health/detailed"},
		{"GET", "/metrics"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIRoutes_HealthResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIRoutes(r, routeDeps{
		routeHandler:       &handlers.RouteHandler{},
		chainHandler:       &handlers.ChainHandler{},
		balanceHandler:     &handlers.BalanceHandler{},
		merchantHandler:    &handlers.MerchantHandler{},
		transactionHandler: &handlers.TransactionHandler{},
		qrHandler:          &handlers.QRHandler{},
		healthHandler:      handlers.NewHealthHandler(version),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from health route, got %d", w.Code)
	}
}
