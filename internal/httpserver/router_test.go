package httpserver

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"nutribites-storefront/internal/catalog"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)
	sessions := NewSessionManager(nil, nil, logger)
	return buildRouter(logger, nil, Deps{
		Catalog:        catalog.NewMock(),
		Sessions:       sessions,
		AllowedOrigins: []string{"*"},
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, payload
}

func TestHealthz(t *testing.T) {
	router := testRouter(t)
	rec, payload := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if payload["status"] != "ok" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestReadyz_MemorySessions(t *testing.T) {
	router := testRouter(t)
	rec, payload := doJSON(t, router, http.MethodGet, "/readyz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if payload["sessions"] != "memory" {
		t.Fatalf("expected memory sessions, got %v", payload)
	}
}

func TestListProducts(t *testing.T) {
	router := testRouter(t)
	rec, payload := doJSON(t, router, http.MethodGet, "/api/products", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	products := payload["products"].([]any)
	if len(products) == 0 {
		t.Fatalf("expected products in mock catalog")
	}
}

func TestListProducts_TagFilter(t *testing.T) {
	router := testRouter(t)
	_, payload := doJSON(t, router, http.MethodGet, "/api/products?tag=protein", "", nil)
	products := payload["products"].([]any)
	if len(products) == 0 {
		t.Fatalf("expected protein products")
	}
	for _, raw := range products {
		p := raw.(map[string]any)
		tags := p["tags"].([]any)
		found := false
		for _, tag := range tags {
			if strings.EqualFold(tag.(string), "protein") {
				found = true
			}
		}
		if !found {
			t.Fatalf("product %v missing protein tag", p["handle"])
		}
	}
}

func TestListProducts_SortPriceAsc(t *testing.T) {
	router := testRouter(t)
	_, payload := doJSON(t, router, http.MethodGet, "/api/products?sort=price-asc", "", nil)
	products := payload["products"].([]any)
	var prev float64 = -1
	for _, raw := range products {
		p := raw.(map[string]any)
		price := p["priceRange"].(map[string]any)["minVariantPrice"].(map[string]any)
		amount, err := strconv.ParseFloat(price["amount"].(string), 64)
		if err != nil {
			t.Fatalf("parse amount: %v", err)
		}
		if amount < prev {
			t.Fatalf("products not sorted ascending by price")
		}
		prev = amount
	}
}

func TestProductByHandle_NotFound(t *testing.T) {
	router := testRouter(t)
	rec, _ := doJSON(t, router, http.MethodGet, "/api/products/not-a-snack", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCollections_Featured(t *testing.T) {
	router := testRouter(t)
	_, payload := doJSON(t, router, http.MethodGet, "/api/collections?featured=1", "", nil)
	collections := payload["collections"].([]any)
	if len(collections) == 0 || len(collections) > 4 {
		t.Fatalf("expected 1-4 featured collections, got %d", len(collections))
	}
	for _, raw := range collections {
		handle := raw.(map[string]any)["handle"].(string)
		if handle == "bestsellers" || handle == "new-arrivals" {
			t.Fatalf("derived collection %s should not be featured", handle)
		}
	}
}

func TestCollectionProducts_UnknownHandleIsEmptyList(t *testing.T) {
	router := testRouter(t)
	rec, payload := doJSON(t, router, http.MethodGet, "/api/collections/no-such-collection/products", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if products := payload["products"].([]any); len(products) != 0 {
		t.Fatalf("expected empty product list, got %d", len(products))
	}
}

func TestContentEndpoints(t *testing.T) {
	router := testRouter(t)
	paths := []string{
		"/api/content/site",
		"/api/content/hero-banners",
		"/api/content/trust-badges",
		"/api/content/testimonials",
		"/api/content/faq",
		"/api/content/moods",
	}
	for _, path := range paths {
		rec, _ := doJSON(t, router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
