package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Saksham10-11/GSD/internal/auth"
	"github.com/Saksham10-11/GSD/internal/cart"
	checkoutsvc "github.com/Saksham10-11/GSD/internal/checkout"
	"github.com/Saksham10-11/GSD/internal/orders"
	products "github.com/Saksham10-11/GSD/internal/products"
	pkgauth "github.com/Saksham10-11/GSD/pkg/auth"
	"github.com/Saksham10-11/GSD/pkg/auth/session"
	"github.com/Saksham10-11/GSD/pkg/config"
	"github.com/Saksham10-11/GSD/pkg/logger"
	"github.com/Saksham10-11/GSD/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Refresh(ctx context.Context, rawToken string) (*auth.AuthResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Logout(ctx context.Context, rawToken string) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string, userID uuid.UUID) (bool, error) {
	return true, nil
}

type stubProductService struct{}

func (stubProductService) ListProducts(ctx context.Context, category string) ([]*products.ProductDTO, error) {
	return []*products.ProductDTO{}, nil
}

func (stubProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*products.ProductDTO, error) {
	panic("unimplemented")
}

func (stubProductService) GetProductImage(ctx context.Context, productID uuid.UUID) (string, error) {
	panic("unimplemented")
}

func (stubProductService) SeedCatalog(ctx context.Context) (int, error) {
	return 0, nil
}

type stubCartService struct{}

func (stubCartService) GetCart(ctx context.Context, userID uuid.UUID) (*cart.CartDTO, error) {
	return &cart.CartDTO{}, nil
}

func (stubCartService) AddItem(ctx context.Context, userID uuid.UUID, req cart.AddItemRequest) (*cart.CartDTO, error) {
	panic("unimplemented")
}

func (stubCartService) UpdateItemQuantity(ctx context.Context, userID, productID uuid.UUID, req cart.UpdateItemRequest) (*cart.CartDTO, error) {
	panic("unimplemented")
}

func (stubCartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*cart.CartDTO, error) {
	panic("unimplemented")
}

func (stubCartService) SetOptions(ctx context.Context, userID uuid.UUID, req cart.OptionsRequest) (*cart.CartDTO, error) {
	panic("unimplemented")
}

type stubCheckoutService struct{}

func (stubCheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, req checkoutsvc.CheckoutRequest) (*orders.OrderDTO, error) {
	panic("unimplemented")
}

type countingCheckoutService struct {
	calls int
}

func (s *countingCheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, req checkoutsvc.CheckoutRequest) (*orders.OrderDTO, error) {
	s.calls++
	return &orders.OrderDTO{ID: uuid.New()}, nil
}

type memoryIdemStore struct {
	data map[string]string
}

func newMemoryIdemStore() *memoryIdemStore {
	return &memoryIdemStore{data: make(map[string]string)}
}

func (m *memoryIdemStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (m *memoryIdemStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	str, _ := value.(string)
	m.data[key] = str
	return nil
}

func (m *memoryIdemStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	str, _ := value.(string)
	m.data[key] = str
	return true, nil
}

func (m *memoryIdemStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *memoryIdemStore) IdempotencyKey(scope, id string) string {
	return fmt.Sprintf("test:idem:%s:%s", scope, id)
}

type stubOrdersService struct{}

func (stubOrdersService) ListOrders(ctx context.Context, userID uuid.UUID, params pagination.Params) (*orders.OrderPage, error) {
	return &orders.OrderPage{Orders: []*orders.OrderDTO{}}, nil
}

func (stubOrdersService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*orders.OrderDTO, error) {
	panic("unimplemented")
}

func (stubOrdersService) GreenMetrics(ctx context.Context, userID uuid.UUID) (*orders.GreenMetricsDTO, error) {
	return &orders.GreenMetricsDTO{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "issuer",
			ExpirationMinutes: 60,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:          cfg,
		Logger:          logg,
		DB:              stubPinger{},
		Session:         stubSessionChecker{},
		AuthService:     stubAuthService{},
		ProductService:  stubProductService{},
		CartService:     stubCartService{},
		CheckoutService: stubCheckoutService{},
		OrdersService:   stubOrdersService{},
	})
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, uuid.New(), "shopper@example.com", session.NewAccessID())
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthEndpointsAreOpen(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestCatalogIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for product list got %d", resp.Code)
	}
}

func TestCartRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestCartSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestCheckoutRequiresToken(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous checkout got %d", resp.Code)
	}
}

// Mounted through the real router so the guard is exercised behind the
// /api/v1 subrouter, where chi's route pattern is still partial.
func TestCheckoutIdempotentThroughRouter(t *testing.T) {
	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	checkout := &countingCheckoutService{}
	store := newMemoryIdemStore()
	router := NewRouter(Deps{
		Config:          cfg,
		Logger:          logg,
		DB:              stubPinger{},
		Session:         stubSessionChecker{},
		Idempotency:     store,
		AuthService:     stubAuthService{},
		ProductService:  stubProductService{},
		CartService:     stubCartService{},
		CheckoutService: checkout,
		OrdersService:   stubOrdersService{},
	})
	token := buildToken(t, cfg)
	body := `{"name":"Zed","email":"zed@example.com","address":"1 Elm St","city":"Springfield","zip_code":"12345","payment_method":"card"}`

	missing := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	missing.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, missing)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without Idempotency-Key got %d", resp.Code)
	}
	if checkout.calls != 0 {
		t.Fatalf("checkout must not run without a key, ran %d times", checkout.calls)
	}

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Idempotency-Key", "order-1")
		resp = httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusCreated {
			t.Fatalf("attempt %d: expected 201 got %d", i+1, resp.Code)
		}
	}
	if checkout.calls != 1 {
		t.Fatalf("expected one order placed across replays, got %d", checkout.calls)
	}
}

func TestSeedRouteGatedByFlag(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/seed", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("seed route should not be mounted without the flag, got %d", resp.Code)
	}

	cfg.FeatureFlags.AllowSeed = true
	router = newTestRouter(cfg)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/products/seed", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for seed with flag got %d", resp.Code)
	}
}

func TestGreenMetricsRequiresToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/green-metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}

	authed := httptest.NewRequest(http.MethodGet, "/api/v1/green-metrics", nil)
	authed.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, authed)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}
