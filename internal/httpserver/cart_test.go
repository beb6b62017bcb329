package httpserver

import (
	"net/http"
	"net/url"
	"testing"

	"nutribites-storefront/internal/mockdata"
)

func TestCartFlow(t *testing.T) {
	router := testRouter(t)
	var cookies []*http.Cookie

	do := func(method, path, body string) (int, map[string]any) {
		t.Helper()
		rec, payload := doJSON(t, router, method, path, body, cookies)
		for _, c := range rec.Result().Cookies() {
			if c.Name == sessionCookie {
				cookies = []*http.Cookie{c}
			}
		}
		return rec.Code, payload
	}

	// An empty cart with no backend configured reports unconfigured state.
	code, cart := do(http.MethodGet, "/api/cart", "")
	if code != http.StatusOK {
		t.Fatalf("get cart: %d", code)
	}
	if cart["state"] != "unconfigured" {
		t.Fatalf("expected unconfigured state, got %v", cart["state"])
	}
	if int(cart["count"].(float64)) != 0 {
		t.Fatalf("expected empty cart, got %v", cart["count"])
	}
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie to be minted")
	}

	product, ok := mockdata.ProductByHandle("protein-power-balls")
	if !ok {
		t.Fatalf("mock product missing")
	}
	variantID := product.Variants[0].ID

	// Adding the same variant twice merges into one line of quantity two.
	code, cart = do(http.MethodPost, "/api/cart/items", `{"productHandle": "protein-power-balls"}`)
	if code != http.StatusOK {
		t.Fatalf("add item: %d", code)
	}
	code, cart = do(http.MethodPost, "/api/cart/items",
		`{"productHandle": "protein-power-balls", "variantId": "`+variantID+`"}`)
	if code != http.StatusOK {
		t.Fatalf("add item again: %d", code)
	}
	lines := cart["lines"].([]any)
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	line := lines[0].(map[string]any)
	if int(line["quantity"].(float64)) != 2 {
		t.Fatalf("expected quantity 2, got %v", line["quantity"])
	}
	if cart["totalDisplay"] == "" {
		t.Fatalf("expected formatted total")
	}

	lineID := line["id"].(string)

	// Quantity update is exact.
	code, cart = do(http.MethodPatch, "/api/cart/items", `{"lineId": "`+lineID+`", "quantity": 5}`)
	if code != http.StatusOK {
		t.Fatalf("update quantity: %d", code)
	}
	if int(cart["count"].(float64)) != 5 {
		t.Fatalf("expected count 5, got %v", cart["count"])
	}

	// Zero quantity removes the line.
	code, cart = do(http.MethodPatch, "/api/cart/items", `{"lineId": "`+lineID+`", "quantity": 0}`)
	if code != http.StatusOK {
		t.Fatalf("zero quantity: %d", code)
	}
	if len(cart["lines"].([]any)) != 0 {
		t.Fatalf("expected line removed, got %v", cart["lines"])
	}
}

func TestCartRemoveItem(t *testing.T) {
	router := testRouter(t)
	var cookies []*http.Cookie

	rec, _ := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"productHandle": "baked-bhujia"}`, nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			cookies = []*http.Cookie{c}
		}
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("add item: %d", rec.Code)
	}

	_, cart := doJSON(t, router, http.MethodGet, "/api/cart", "", cookies)
	lineID := cart["lines"].([]any)[0].(map[string]any)["id"].(string)

	// Line ids embed gids, so they travel as a query parameter.
	rec, cart = doJSON(t, router, http.MethodDelete,
		"/api/cart/items?lineId="+url.QueryEscape(lineID), "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove item: %d", rec.Code)
	}
	if len(cart["lines"].([]any)) != 0 {
		t.Fatalf("expected empty cart, got %v", cart["lines"])
	}

	// Removing it again is a no-op, not an error.
	rec, _ = doJSON(t, router, http.MethodDelete,
		"/api/cart/items?lineId="+url.QueryEscape(lineID), "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("double remove: %d", rec.Code)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	router := testRouter(t)
	rec, _ := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"productHandle": "not-a-snack"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartAddUnknownVariant(t *testing.T) {
	router := testRouter(t)
	rec, _ := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"productHandle": "protein-power-balls", "variantId": "gid://shopify/ProductVariant/nope"}`, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCartAddMissingHandle(t *testing.T) {
	router := testRouter(t)
	rec, _ := doJSON(t, router, http.MethodPost, "/api/cart/items", `{}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartClear(t *testing.T) {
	router := testRouter(t)
	var cookies []*http.Cookie

	rec, _ := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"productHandle": "protein-power-balls"}`, nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			cookies = []*http.Cookie{c}
		}
	}

	rec, cart := doJSON(t, router, http.MethodDelete, "/api/cart", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear cart: %d", rec.Code)
	}
	if len(cart["lines"].([]any)) != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestCartDrawer(t *testing.T) {
	router := testRouter(t)
	var cookies []*http.Cookie

	rec, cart := doJSON(t, router, http.MethodPost, "/api/cart/open", "", nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			cookies = []*http.Cookie{c}
		}
	}
	if cart["drawerOpen"] != true {
		t.Fatalf("expected drawer open, got %v", cart["drawerOpen"])
	}

	_, cart = doJSON(t, router, http.MethodPost, "/api/cart/close", "", cookies)
	if cart["drawerOpen"] != false {
		t.Fatalf("expected drawer closed, got %v", cart["drawerOpen"])
	}

	_, cart = doJSON(t, router, http.MethodPost, "/api/cart/toggle", "", cookies)
	if cart["drawerOpen"] != true {
		t.Fatalf("expected drawer reopened by toggle, got %v", cart["drawerOpen"])
	}
}
