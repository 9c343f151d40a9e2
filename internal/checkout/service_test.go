package checkout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Saksham10-11/GSD/internal/cart"
	"github.com/Saksham10-11/GSD/internal/orders"
	product "github.com/Saksham10-11/GSD/internal/products"
	"github.com/Saksham10-11/GSD/pkg/db"
	"github.com/Saksham10-11/GSD/pkg/db/models"
	"github.com/Saksham10-11/GSD/pkg/enums"
	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
	"github.com/Saksham10-11/GSD/pkg/logger"
	"github.com/Saksham10-11/GSD/pkg/pagination"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.Product{},
		&models.CartRecord{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderLineItem{},
	))
	return conn
}

type checkoutFixture struct {
	conn     *gorm.DB
	carts    cart.Service
	checkout Service
	orders   orders.Service
	userID   uuid.UUID
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	conn := openTestDB(t)
	logg := logger.New(logger.Options{ServiceName: "test"})

	cartSvc, err := cart.NewService(cart.ServiceParams{
		CartRepo:    cart.NewRepository(conn),
		ProductRepo: product.NewRepository(conn),
		Logger:      logg,
	})
	require.NoError(t, err)

	checkoutSvc, err := NewService(ServiceParams{
		DB:     db.NewFromGorm(conn),
		Logger: logg,
	})
	require.NoError(t, err)

	ordersSvc, err := orders.NewService(orders.NewRepository(conn))
	require.NoError(t, err)

	return &checkoutFixture{
		conn:     conn,
		carts:    cartSvc,
		checkout: checkoutSvc,
		orders:   ordersSvc,
		userID:   uuid.New(),
	}
}

func (f *checkoutFixture) mustCreateProduct(t *testing.T, price, footprint string, score int, recycled bool) *models.Product {
	t.Helper()
	scoreVal := score
	prod := &models.Product{
		ID:                  uuid.New(),
		Slug:                fmt.Sprintf("test-%s", uuid.NewString()),
		Name:                "Checkout Product",
		Description:         "test",
		Category:            enums.CategoryHome,
		Price:               decimal.RequireFromString(price),
		CarbonFootprintKg:   decimal.RequireFromString(footprint),
		SustainabilityScore: &scoreVal,
		RecycledMaterials:   recycled,
		IsActive:            true,
	}
	require.NoError(t, f.conn.Create(prod).Error)
	return prod
}

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		Name:          "Eco Shopper",
		Email:         "shopper@example.com",
		Address:       "1 Green Way",
		City:          "Portland",
		ZipCode:       "97201",
		PaymentMethod: "card",
	}
}

func TestPlaceOrderFreezesCartSummary(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	// two lines: 2 x 10.00 (80, recycled) + 1 x 5.00 (20, not recycled)
	first := f.mustCreateProduct(t, "10.00", "0.40", 80, true)
	second := f.mustCreateProduct(t, "5.00", "1.20", 20, false)

	_, err := f.carts.AddItem(ctx, f.userID, cart.AddItemRequest{ProductID: first.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, f.userID, cart.AddItemRequest{ProductID: second.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := f.checkout.PlaceOrder(ctx, f.userID, validRequest())
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("25.00")), "subtotal %s", order.Subtotal)
	assert.True(t, order.CarbonFootprintKg.Equal(decimal.RequireFromString("2.00")))
	assert.True(t, order.OrderTotal.Equal(decimal.RequireFromString("30.00")), "order total %s", order.OrderTotal)
	assert.Equal(t, 60, order.SustainabilityScore)
	assert.Equal(t, 1, order.RecycledCount)
	assert.True(t, order.RealizedSavingsKg.IsZero(), "no options on, nothing realized")
	require.Len(t, order.Items, 2)
	assert.Equal(t, first.ID, order.Items[0].ProductID)

	// cart is closed; next read starts a fresh empty cart
	fresh, err := f.carts.GetCart(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, fresh.Items)
	assert.NotEqual(t, order.ID, fresh.ID)
}

func TestPlaceOrderRealizesEcoSavings(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	prod := f.mustCreateProduct(t, "100.00", "20.00", 90, false)

	_, err := f.carts.AddItem(ctx, f.userID, cart.AddItemRequest{ProductID: prod.ID, Quantity: 1})
	require.NoError(t, err)
	on := true
	_, err = f.carts.SetOptions(ctx, f.userID, cart.OptionsRequest{GreenDelivery: &on, CarbonOffset: &on})
	require.NoError(t, err)

	order, err := f.checkout.PlaceOrder(ctx, f.userID, validRequest())
	require.NoError(t, err)

	// no shipping, plus 10% of 20kg offset
	assert.True(t, order.OrderTotal.Equal(decimal.RequireFromString("102.00")))
	// 1.5 + 20*0.8
	assert.True(t, order.RealizedSavingsKg.Equal(decimal.RequireFromString("17.50")))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.PlaceOrder(context.Background(), f.userID, validRequest())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestPlaceOrderValidatesShipping(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	prod := f.mustCreateProduct(t, "10.00", "1.00", 50, false)

	_, err := f.carts.AddItem(ctx, f.userID, cart.AddItemRequest{ProductID: prod.ID, Quantity: 1})
	require.NoError(t, err)

	req := validRequest()
	req.Address = "  "
	_, err = f.checkout.PlaceOrder(ctx, f.userID, req)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	req = validRequest()
	req.PaymentMethod = "barter"
	_, err = f.checkout.PlaceOrder(ctx, f.userID, req)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	// failed checkouts leave the cart open
	dto, err := f.carts.GetCart(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, dto.Items, 1)
}

func TestGreenMetricsAggregateOrders(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	prod := f.mustCreateProduct(t, "50.00", "10.00", 90, true)

	// first order: both options on
	_, err := f.carts.AddItem(ctx, f.userID, cart.AddItemRequest{ProductID: prod.ID, Quantity: 1})
	require.NoError(t, err)
	on := true
	_, err = f.carts.SetOptions(ctx, f.userID, cart.OptionsRequest{GreenDelivery: &on, CarbonOffset: &on})
	require.NoError(t, err)
	_, err = f.checkout.PlaceOrder(ctx, f.userID, validRequest())
	require.NoError(t, err)

	// second order: everything off
	_, err = f.carts.AddItem(ctx, f.userID, cart.AddItemRequest{ProductID: prod.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.checkout.PlaceOrder(ctx, f.userID, validRequest())
	require.NoError(t, err)

	metrics, err := f.orders.GreenMetrics(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.TotalOrders)
	assert.Equal(t, 1, metrics.GreenDeliveryOrders)
	assert.Equal(t, 1, metrics.CarbonOffsetOrders)
	// 10 + 20 kg
	assert.True(t, metrics.TotalFootprintKg.Equal(decimal.RequireFromString("30.00")))
	// 1.5 + 10*0.8 from the first order only
	assert.True(t, metrics.TotalSavedKg.Equal(decimal.RequireFromString("9.50")))
	assert.Equal(t, 90, metrics.AvgSustainability)
	assert.Equal(t, 2, metrics.RecycledItems)

	listed, err := f.orders.ListOrders(ctx, f.userID, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, listed.Orders, 2)
	assert.Empty(t, listed.NextCursor)
}
