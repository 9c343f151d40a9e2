package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Saksham10-11/GSD/internal/cart"
	"github.com/Saksham10-11/GSD/internal/orders"
	"github.com/Saksham10-11/GSD/pkg/db"
	"github.com/Saksham10-11/GSD/pkg/db/models"
	"github.com/Saksham10-11/GSD/pkg/enums"
	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
	"github.com/Saksham10-11/GSD/pkg/logger"
	"github.com/Saksham10-11/GSD/pkg/metrics"
	"github.com/Saksham10-11/GSD/pkg/pricing"
)

// Service converts the active cart into an immutable order.
type Service interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orders.OrderDTO, error)
}

type service struct {
	db       *db.Client
	logg     *logger.Logger
	checkout *metrics.CheckoutMetrics
}

// ServiceParams bundles the dependencies required to build a checkout
// service. Metrics are optional.
type ServiceParams struct {
	DB      *db.Client
	Logger  *logger.Logger
	Metrics *metrics.CheckoutMetrics
}

// NewService constructs a checkout service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &service{
		db:       params.DB,
		logg:     params.Logger,
		checkout: params.Metrics,
	}, nil
}

// PlaceOrder freezes the cart summary into an order, writes the line items,
// and closes the cart, all in one transaction. Payment capture is simulated;
// the method only validates the payment intent.
func (s *service) PlaceOrder(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orders.OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user is required")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	paymentMethod, err := enums.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method")
	}

	var placed *models.Order
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := cart.NewRepository(tx)
		orderRepo := orders.NewRepository(tx)

		record, err := cartRepo.FindActiveByUser(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find active cart")
		}
		if len(record.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		lines := cart.LineItems(record.Items)
		summary, err := pricing.Summarize(lines, record.GreenDelivery, record.CarbonOffset)
		if err != nil {
			return err
		}
		realized, err := pricing.RealizedSavings(record.GreenDelivery, record.CarbonOffset, summary.CarbonFootprintKg)
		if err != nil {
			return err
		}

		order := &models.Order{
			UserID:              userID,
			GreenDelivery:       record.GreenDelivery,
			CarbonOffset:        record.CarbonOffset,
			Subtotal:            summary.Subtotal,
			OrderTotal:          summary.OrderTotal,
			CarbonFootprintKg:   summary.CarbonFootprintKg,
			RealizedSavingsKg:   realized,
			SustainabilityScore: summary.SustainabilityScore,
			RecycledCount:       summary.RecycledCount,
			PaymentMethod:       paymentMethod,
			ShippingName:        strings.TrimSpace(req.Name),
			ShippingEmail:       strings.ToLower(strings.TrimSpace(req.Email)),
			ShippingAddress:     strings.TrimSpace(req.Address),
			ShippingCity:        strings.TrimSpace(req.City),
			ShippingZipCode:     strings.TrimSpace(req.ZipCode),
			Items:               make([]models.OrderLineItem, 0, len(record.Items)),
		}
		for i, item := range record.Items {
			order.Items = append(order.Items, models.OrderLineItem{
				ProductID:           item.ProductID,
				Position:            i,
				ProductName:         item.ProductName,
				Quantity:            item.Quantity,
				UnitPrice:           item.UnitPrice,
				CarbonFootprintKg:   item.CarbonFootprintKg,
				SustainabilityScore: item.SustainabilityScore,
				RecycledMaterials:   item.RecycledMaterials,
			})
		}

		placed, err = orderRepo.Create(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}

		if err := cartRepo.MarkConverted(ctx, record.ID, time.Now().UTC()); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "close cart")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	offsetKg := 0.0
	if placed.CarbonOffset {
		offsetKg, _ = placed.CarbonFootprintKg.Float64()
	}
	savedKg, _ := placed.RealizedSavingsKg.Float64()
	s.checkout.ObserveOrder(placed.GreenDelivery, placed.CarbonOffset, offsetKg, savedKg)

	ctx = s.logg.WithFields(ctx, map[string]any{
		"order_id":    placed.ID.String(),
		"order_total": placed.OrderTotal.String(),
	})
	s.logg.Info(ctx, "order placed")

	return orders.NewOrderDTO(placed), nil
}

func validateRequest(req CheckoutRequest) error {
	missing := []string{}
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(req.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(req.ZipCode) == "" {
		missing = append(missing, "zip_code")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping details are incomplete").WithDetails(map[string]any{
			"missing": missing,
		})
	}
	return nil
}
