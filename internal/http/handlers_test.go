package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gizemabali/retaildiscountsapi/internal/clock"
	"github.com/gizemabali/retaildiscountsapi/internal/domain"
	"github.com/gizemabali/retaildiscountsapi/internal/hashing"
	"github.com/gizemabali/retaildiscountsapi/internal/repository"
	"github.com/gizemabali/retaildiscountsapi/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupServer(t *testing.T, idx repository.SearchIndex) *Server {
	t.Helper()
	clk := clock.System{}
	products := service.NewProductService(idx, "product")
	basket := service.NewBasketService(idx, "product", clk)
	users := service.NewUserService(idx, "userinfo", clk, hashing.SHA256{})
	return NewServer(products, basket, users)
}

func seededServer(t *testing.T) *Server {
	t.Helper()
	idx := repository.NewMemoryIndex()
	ctx := context.Background()
	for _, p := range []domain.Product{
		{ProductName: "RedCarpet", Type: "home", Price: 100},
		{ProductName: "BlueDress", Type: "garment", Price: 400},
		{ProductName: "Bananas", Type: "groceries", Price: 15},
	} {
		if _, err := idx.Index(ctx, "product", p, ""); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return setupServer(t, idx)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

// brokenIndex fails every call.
type brokenIndex struct{}

func (brokenIndex) Search(ctx context.Context, index string, q repository.Query, from, size int) ([]domain.Product, error) {
	return nil, repository.ErrUnavailable
}

func (brokenIndex) Index(ctx context.Context, index string, doc any, id string) (string, error) {
	return "", repository.ErrUnavailable
}

func employeeBasketReq() map[string]any {
	return map[string]any{
		"userDetails": map[string]any{"employee": true, "affiliate": false, "customer": false},
		"basketDetails": []map[string]any{
			{"productName": "RedCarpet", "amount": 1},
			{"productName": "BlueDress", "amount": 2},
			{"productName": "Bananas", "amount": 1},
		},
	}
}

func TestCalculateBasket_OK(t *testing.T) {
	s := seededServer(t)
	w := doJSON(t, s, http.MethodPost, "/calculatebasket", employeeBasketReq())
	if w.Code != http.StatusOK {
		t.Fatalf("code %d body %s", w.Code, w.Body.String())
	}
	var res domain.PriceResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.TotalPrice != 615 {
		t.Fatalf("totalPrice %d, want 615", res.TotalPrice)
	}
}

func TestCalculateBasket_InvalidJSON(t *testing.T) {
	s := seededServer(t)
	req := httptest.NewRequest(http.MethodPost, "/calculatebasket", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code %d", w.Code)
	}
}

func TestCalculateBasket_UnknownProduct(t *testing.T) {
	s := seededServer(t)
	body := map[string]any{
		"userDetails":   map[string]any{},
		"basketDetails": []map[string]any{{"productName": "Unicorn", "amount": 1}},
	}
	w := doJSON(t, s, http.MethodPost, "/calculatebasket", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code %d body %s", w.Code, w.Body.String())
	}
	var res map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["error"] != "malformed request" {
		t.Fatalf("error %q", res["error"])
	}
}

func TestCalculateBasket_CatalogDown(t *testing.T) {
	s := setupServer(t, brokenIndex{})
	w := doJSON(t, s, http.MethodPost, "/calculatebasket", employeeBasketReq())
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("code %d", w.Code)
	}
	var res map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["error"] != "catalog unavailable" {
		t.Fatalf("error %q", res["error"])
	}
}

func TestCreateUser_Flow(t *testing.T) {
	s := seededServer(t)

	w := doJSON(t, s, http.MethodPost, "/user", map[string]any{
		"username": "ann", "password": "secret", "customer": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code %d body %s", w.Code, w.Body.String())
	}
	var res map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["status"] != "success" {
		t.Fatalf("status %q", res["status"])
	}

	// missing password is a client error
	w = doJSON(t, s, http.MethodPost, "/user", map[string]any{"username": "bob"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code %d", w.Code)
	}
}

func TestCreateUser_IndexDown(t *testing.T) {
	s := setupServer(t, brokenIndex{})
	w := doJSON(t, s, http.MethodPost, "/user", map[string]any{"username": "ann", "password": "pw"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code %d", w.Code)
	}
	var res map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["status"] != "failure" {
		t.Fatalf("status %q", res["status"])
	}
}

func TestListProductsByType(t *testing.T) {
	s := seededServer(t)
	w := doJSON(t, s, http.MethodGet, "/products/groceries", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code %d", w.Code)
	}
	var list []domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].ProductName != "Bananas" {
		t.Fatalf("list %+v", list)
	}
}

func TestHealthzAndMetrics(t *testing.T) {
	s := seededServer(t)
	if w := doJSON(t, s, http.MethodGet, "/healthz", nil); w.Code != http.StatusOK {
		t.Fatalf("healthz code %d", w.Code)
	}
	if w := doJSON(t, s, http.MethodGet, "/metrics", nil); w.Code != http.StatusOK {
		t.Fatalf("metrics code %d", w.Code)
	}
}
