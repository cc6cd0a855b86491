package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-be/internal/cart"
	"storefront-be/internal/catalog"
	"storefront-be/internal/dashboard"
	"storefront-be/internal/kvstore"
	"storefront-be/internal/metrics"
	"storefront-be/internal/order"
	"storefront-be/internal/user"
	"storefront-be/internal/wishlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogRepo is a mock for the catalog repository
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) GetAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockCatalogRepo) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalogRepo) Create(ctx context.Context, input catalog.NewProduct, sellerID string) (catalog.Product, error) {
	args := m.Called(ctx, input, sellerID)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockCatalogRepo) Update(ctx context.Context, id string, input catalog.UpdateProduct, sellerID string) (catalog.Product, error) {
	args := m.Called(ctx, id, input, sellerID)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockCatalogRepo) Delete(ctx context.Context, id, sellerID string) error {
	args := m.Called(ctx, id, sellerID)
	return args.Error(0)
}

func (m *MockCatalogRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockOrderRepo is a mock for the order repository
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, sub order.Submission) (*order.Order, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) GetAll(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// MockUserRepo is a mock for the user repository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, name, email, hashedPassword string, role user.Role) (user.User, error) {
	args := m.Called(ctx, name, email, hashedPassword, role)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

type testEnv struct {
	router      http.Handler
	catalogRepo *MockCatalogRepo
	orderRepo   *MockOrderRepo
	userRepo    *MockUserRepo
	metrics     *metrics.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	catalogRepo := new(MockCatalogRepo)
	orderRepo := new(MockOrderRepo)
	userRepo := new(MockUserRepo)
	kv := kvstore.NewMemory()
	reg := metrics.NewRegistry()

	cartSvc := cart.NewService(cart.NewStore(kv), catalogRepo)

	h := &Handler{
		Catalog:   catalog.NewService(catalogRepo),
		Cart:      cartSvc,
		Wishlist:  wishlist.NewService(kv),
		Orders:    order.NewService(orderRepo, cartSvc, reg),
		Dashboard: dashboard.NewService(orderRepo, catalogRepo),
		Users:     user.NewService(userRepo, reg),
		Metrics:   reg,
	}

	return &testEnv{
		router:      NewRouter(h),
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		metrics:     reg,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func customerToken(t *testing.T) string {
	t.Helper()
	token, err := user.GenerateJWT(user.User{ID: "u1", Name: "Jane", Email: "jane@example.com", Role: user.RoleCustomer})
	require.NoError(t, err)
	return token
}

func sellerToken(t *testing.T) string {
	t.Helper()
	token, err := user.GenerateJWT(user.User{ID: "s1", Name: "Sam", Email: "sam@example.com", Role: user.RoleSeller})
	require.NoError(t, err)
	return token
}

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestRouter_ListProducts(t *testing.T) {
	env := newTestEnv(t)

	env.catalogRepo.On("GetAll", mock.Anything).Return([]catalog.Product{
		{ID: "p1", Name: "Mouse", Price: 25.99, Category: "Electronics", CreatedAt: time.Now()},
	}, nil)

	rr := env.do(t, "GET", "/api/products?category=All&sort=name", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var products []catalog.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Mouse", products[0].Name)
}

func TestRouter_CartRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "GET", "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_CheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	token := customerToken(t)

	mouse := catalog.Product{ID: "A", Name: "Widget", Price: 10, Stock: 5}
	env.catalogRepo.On("GetByID", mock.Anything, "A").Return(&mouse, nil)

	// Two adds merge into one line of quantity 2.
	rr := env.do(t, "POST", "/api/cart/items", token, addToCartReq{ProductID: "A"})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = env.do(t, "POST", "/api/cart/items", token, addToCartReq{ProductID: "A"})
	require.Equal(t, http.StatusOK, rr.Code)

	var view cart.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 20.0, view.Total)

	env.orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(sub order.Submission) bool {
		return sub.Total == 20 && sub.Status == order.StatusPending
	})).Return(&order.Order{ID: "o1", Total: 20, Status: order.StatusPending,
		Items: []order.Item{{ProductID: "A", Price: 10, Quantity: 2}}}, nil)

	info := order.CustomerInfo{Name: "Jane", Email: "jane@example.com", Address: "1 Main St", City: "Springfield", ZipCode: "12345"}
	rr = env.do(t, "POST", "/api/orders", token, info)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created order.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "o1", created.ID)
	assert.Equal(t, order.StatusPending, created.Status)
	assert.Equal(t, 20.0, created.Total)

	// Cart was cleared on success.
	rr = env.do(t, "GET", "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Empty(t, view.Lines)
}

func TestRouter_CheckoutValidationKeepsCart(t *testing.T) {
	env := newTestEnv(t)
	token := customerToken(t)

	widget := catalog.Product{ID: "A", Name: "Widget", Price: 10, Stock: 5}
	env.catalogRepo.On("GetByID", mock.Anything, "A").Return(&widget, nil)

	rr := env.do(t, "POST", "/api/cart/items", token, addToCartReq{ProductID: "A"})
	require.Equal(t, http.StatusOK, rr.Code)

	// Missing shipping fields.
	rr = env.do(t, "POST", "/api/orders", token, order.CustomerInfo{Name: "Jane"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var view cart.View
	rr = env.do(t, "GET", "/api/cart", token, nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Len(t, view.Lines, 1)
}

func TestRouter_SellerGuards(t *testing.T) {
	env := newTestEnv(t)

	t.Run("customer cannot create products", func(t *testing.T) {
		rr := env.do(t, "POST", "/api/products", customerToken(t), catalog.NewProduct{Name: "Mouse"})
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("seller can create products", func(t *testing.T) {
		input := catalog.NewProduct{Name: "Mouse", Price: 25.99, Stock: 10}
		env.catalogRepo.On("Create", mock.Anything, input, "s1").
			Return(catalog.Product{ID: "p1", Name: "Mouse", SellerID: "s1"}, nil)

		rr := env.do(t, "POST", "/api/products", sellerToken(t), input)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("seller updates order status", func(t *testing.T) {
		env.orderRepo.On("UpdateStatus", mock.Anything, "o1", order.StatusShipped).
			Return(&order.Order{ID: "o1", Status: order.StatusShipped}, nil)

		rr := env.do(t, "PATCH", "/api/orders/o1/status", sellerToken(t), updateStatusReq{Status: "shipped"})
		require.Equal(t, http.StatusOK, rr.Code)

		var o order.Order
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &o))
		assert.Equal(t, order.StatusShipped, o.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		rr := env.do(t, "PATCH", "/api/orders/o1/status", sellerToken(t), updateStatusReq{Status: "lost"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRouter_WishlistToggle(t *testing.T) {
	env := newTestEnv(t)
	token := customerToken(t)

	lamp := catalog.Product{ID: "p1", Name: "Lamp", Price: 34, Stock: 3}
	env.catalogRepo.On("GetByID", mock.Anything, "p1").Return(&lamp, nil)

	rr := env.do(t, "POST", "/api/wishlist/toggle", token, toggleWishlistReq{ProductID: "p1"})
	require.Equal(t, http.StatusOK, rr.Code)

	var entries []wishlist.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)

	rr = env.do(t, "POST", "/api/wishlist/toggle", token, toggleWishlistReq{ProductID: "p1"})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestRouter_DashboardStats(t *testing.T) {
	env := newTestEnv(t)

	env.orderRepo.On("GetAll", mock.Anything).Return([]order.Order{
		{ID: "o1", Total: 50, Status: order.StatusPending, CustomerEmail: "a@example.com"},
		{ID: "o2", Total: 30, Status: order.StatusDelivered, CustomerEmail: "b@example.com"},
	}, nil)
	env.catalogRepo.On("GetAll", mock.Anything).Return([]catalog.Product{
		{ID: "p1", Stock: 3},
		{ID: "p2", Stock: 8},
		{ID: "p3", Stock: 15},
	}, nil)

	rr := env.do(t, "GET", "/api/dashboard/stats", sellerToken(t), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats dashboard.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 80.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 2, stats.CustomerCount)
	require.Len(t, stats.LowStock, 2)
	assert.Equal(t, dashboard.StockVeryLow, stats.LowStock[0].Level)
	assert.Equal(t, dashboard.StockLow, stats.LowStock[1].Level)
}

func TestRouter_LogoutClearsCartKeepsWishlist(t *testing.T) {
	env := newTestEnv(t)
	token := customerToken(t)

	widget := catalog.Product{ID: "A", Name: "Widget", Price: 10, Stock: 5}
	env.catalogRepo.On("GetByID", mock.Anything, "A").Return(&widget, nil)

	rr := env.do(t, "POST", "/api/cart/items", token, addToCartReq{ProductID: "A"})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = env.do(t, "POST", "/api/wishlist/toggle", token, toggleWishlistReq{ProductID: "A"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// Cart gone, wishlist retained for the next login.
	var view cart.View
	rr = env.do(t, "GET", "/api/cart", token, nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Empty(t, view.Lines)

	var entries []wishlist.Entry
	rr = env.do(t, "GET", "/api/wishlist", token, nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestRouter_MetricsSnapshot(t *testing.T) {
	env := newTestEnv(t)

	_ = env.do(t, "GET", "/healthz", "", nil)

	rr := env.do(t, "GET", "/api/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var snap metrics.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	assert.GreaterOrEqual(t, snap.RequestsTotal, uint64(1))
}
