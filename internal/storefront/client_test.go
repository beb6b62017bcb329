package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutribites-storefront/internal/domain"
)

// graphServer serves a canned GraphQL response body and records the last
// request for inspection.
func graphServer(t *testing.T, body string) (*httptest.Server, *graphRequest) {
	t.Helper()
	var last graphRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Shopify-Storefront-Access-Token") == "" {
			t.Errorf("missing access token header")
		}
		if err := json.NewDecoder(r.Body).Decode(&last); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &last
}

func TestClient_ProductByHandle(t *testing.T) {
	srv, last := graphServer(t, `{"data": {"product": {
		"id": "gid://shopify/Product/1",
		"handle": "protein-power-balls",
		"title": "Protein Power Balls",
		"variants": {"edges": [
			{"node": {"id": "v1", "price": {"amount": "299", "currencyCode": "INR"}}},
			{"node": {"id": "v2", "price": {"amount": "499", "currencyCode": "INR"}}}
		]}
	}}}`)
	client := NewClient(srv.URL, "test-token", nil)

	got, err := client.ProductByHandle(context.Background(), "protein-power-balls")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Handle != "protein-power-balls" {
		t.Fatalf("handle: %q", got.Handle)
	}
	if got.PriceRange.MinVariantPrice.Amount != "299" || got.PriceRange.MaxVariantPrice.Amount != "499" {
		t.Fatalf("price range not derived: %+v", got.PriceRange)
	}
	if last.Variables["handle"] != "protein-power-balls" {
		t.Fatalf("handle variable not sent: %v", last.Variables)
	}
}

func TestClient_ProductByHandle_NotFound(t *testing.T) {
	srv, _ := graphServer(t, `{"data": {"product": null}}`)
	client := NewClient(srv.URL, "test-token", nil)

	_, err := client.ProductByHandle(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_Cart_ExpiredIsNilNil(t *testing.T) {
	srv, _ := graphServer(t, `{"data": {"cart": null}}`)
	client := NewClient(srv.URL, "test-token", nil)

	cart, err := client.Cart(context.Background(), "gid://shopify/Cart/stale")
	if err != nil {
		t.Fatalf("expired cart is not an error: %v", err)
	}
	if cart != nil {
		t.Fatalf("expected nil cart, got %+v", cart)
	}
}

func TestClient_CreateCart(t *testing.T) {
	srv, _ := graphServer(t, `{"data": {"cartCreate": {"cart": {
		"id": "gid://shopify/Cart/new",
		"checkoutUrl": "https://shop.example.com/checkout",
		"totalQuantity": 0,
		"lines": {"edges": []}
	}}}}`)
	client := NewClient(srv.URL, "test-token", nil)

	cart, err := client.CreateCart(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.ID != "gid://shopify/Cart/new" {
		t.Fatalf("cart id: %q", cart.ID)
	}
	if cart.Lines == nil || len(cart.Lines) != 0 {
		t.Fatalf("expected empty lines slice, got %#v", cart.Lines)
	}
}

func TestClient_AddCartLines_SendsVariables(t *testing.T) {
	srv, last := graphServer(t, `{"data": {"cartLinesAdd": {"cart": {
		"id": "gid://shopify/Cart/abc",
		"totalQuantity": 2,
		"lines": {"edges": [{"node": {"id": "l1", "quantity": 2,
			"merchandise": {"id": "gid://shopify/ProductVariant/10"}}}]}
	}}}}`)
	client := NewClient(srv.URL, "test-token", nil)

	lines := []CartLineInput{{MerchandiseID: "gid://shopify/ProductVariant/10", Quantity: 2}}
	cart, err := client.AddCartLines(context.Background(), "gid://shopify/Cart/abc", lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.TotalQuantity != 2 {
		t.Fatalf("total quantity: %d", cart.TotalQuantity)
	}
	if last.Variables["cartId"] != "gid://shopify/Cart/abc" {
		t.Fatalf("cartId variable not sent: %v", last.Variables)
	}
}

func TestClient_GraphErrors(t *testing.T) {
	srv, _ := graphServer(t, `{"data": null, "errors": [
		{"message": "throttled"}, {"message": "try later"}
	]}`)
	client := NewClient(srv.URL, "test-token", nil)

	_, err := client.Products(context.Background(), 10)
	var gerr *GraphError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GraphError, got %v", err)
	}
	if len(gerr.Messages) != 2 {
		t.Fatalf("expected both messages, got %v", gerr.Messages)
	}
}

func TestClient_EmptyDataIsError(t *testing.T) {
	srv, _ := graphServer(t, `{"data": null}`)
	client := NewClient(srv.URL, "test-token", nil)

	if _, err := client.Products(context.Background(), 10); err == nil {
		t.Fatalf("expected error for null data")
	}
}

func TestClient_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "bad-token", nil)

	if _, err := client.Products(context.Background(), 10); err == nil {
		t.Fatalf("expected error for 403 response")
	}
}

func TestClient_CollectionProducts_UnknownHandleIsEmpty(t *testing.T) {
	srv, _ := graphServer(t, `{"data": {"collection": null}}`)
	client := NewClient(srv.URL, "test-token", nil)

	got, err := client.CollectionProducts(context.Background(), "missing", 10)
	if err != nil {
		t.Fatalf("unknown collection is not an error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestClient_HeroBanners_FiltersAndSorts(t *testing.T) {
	srv, _ := graphServer(t, `{"data": {"metaobjects": {"edges": [
		{"node": {"id": "m2", "fields": [
			{"key": "headline", "value": "Second"},
			{"key": "display_order", "value": "2"},
			{"key": "is_active", "value": "true"}
		]}},
		{"node": {"id": "m3", "fields": [
			{"key": "headline", "value": "Hidden"},
			{"key": "display_order", "value": "0"},
			{"key": "is_active", "value": "false"}
		]}},
		{"node": {"id": "m1", "fields": [
			{"key": "headline", "value": "First"},
			{"key": "display_order", "value": "1"},
			{"key": "is_active", "value": "true"}
		]}}
	]}}}`)
	client := NewClient(srv.URL, "test-token", nil)

	banners, err := client.HeroBanners(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(banners) != 2 {
		t.Fatalf("inactive banner not filtered: %+v", banners)
	}
	if banners[0].Headline != "First" || banners[1].Headline != "Second" {
		t.Fatalf("display order not honored: %+v", banners)
	}
	if banners[0].BackgroundColor != "#2D5A3D" || banners[0].TextColor != "light" {
		t.Fatalf("defaults not applied: %+v", banners[0])
	}
}
