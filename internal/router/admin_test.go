package router

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// TestAdminRouter_Health tests the health endpoint
func TestAdminRouter_Health(t *testing.T) {
	r := SetupAdminRouter(prometheus.NewRegistry())

	rec := serve(r, http.MethodGet, "/health")

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("expected body 'OK', got '%s'", rec.Body.String())
	}
}

// TestAdminRouter_Metrics tests that /metrics serves the given registry
func TestAdminRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "admin_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	r := SetupAdminRouter(reg)
	rec := serve(r, http.MethodGet, "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "admin_test_total 1") {
		t.Errorf("expected counter in output, got %s", rec.Body.String())
	}
}

// TestAdminRouter_RootRedirect tests the redirect to the Swagger UI
func TestAdminRouter_RootRedirect(t *testing.T) {
	r := SetupAdminRouter(prometheus.NewRegistry())

	rec := serve(r, http.MethodGet, "/")

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/swagger/index.html" {
		t.Errorf("expected redirect to swagger, got %q", loc)
	}
}

// TestAdminRouter_SwaggerDoc tests that the generated doc is registered
func TestAdminRouter_SwaggerDoc(t *testing.T) {
	r := SetupAdminRouter(prometheus.NewRegistry())

	rec := serve(r, http.MethodGet, "/swagger/doc.json")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/weather") {
		t.Errorf("expected /weather in swagger doc, got %s", rec.Body.String())
	}
}
