package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
	"github.com/Saksham10-11/GSD/pkg/pagination"
)

// Service exposes order history and the green metrics dashboard.
type Service interface {
	ListOrders(ctx context.Context, userID uuid.UUID, params pagination.Params) (*OrderPage, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
	GreenMetrics(ctx context.Context, userID uuid.UUID) (*GreenMetricsDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs an orders service with the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListOrders(ctx context.Context, userID uuid.UUID, params pagination.Params) (*OrderPage, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	records, err := s.repo.ListPageByUser(ctx, userID, cursor, limit+1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	page := &OrderPage{Orders: make([]*OrderDTO, 0, len(records))}
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	for i := range records {
		page.Orders = append(page.Orders, NewOrderDTO(&records[i]))
	}
	return page, nil
}

func (s *service) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	record, err := s.repo.FindByIDAndUser(ctx, orderID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find order")
	}
	return NewOrderDTO(record), nil
}

// GreenMetrics folds the user's order history into the sustainability
// dashboard figures. All carbon numbers were frozen at checkout, so the
// aggregation is a plain sum.
func (s *service) GreenMetrics(ctx context.Context, userID uuid.UUID) (*GreenMetricsDTO, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	metrics := &GreenMetricsDTO{
		TotalFootprintKg: decimal.Zero,
		TotalSavedKg:     decimal.Zero,
	}
	scoreSum := 0
	for _, order := range records {
		metrics.TotalOrders++
		if order.GreenDelivery {
			metrics.GreenDeliveryOrders++
		}
		if order.CarbonOffset {
			metrics.CarbonOffsetOrders++
		}
		metrics.TotalFootprintKg = metrics.TotalFootprintKg.Add(order.CarbonFootprintKg)
		metrics.TotalSavedKg = metrics.TotalSavedKg.Add(order.RealizedSavingsKg)
		scoreSum += order.SustainabilityScore
		metrics.RecycledItems += order.RecycledCount
	}
	if metrics.TotalOrders > 0 {
		metrics.AvgSustainability = int(decimal.NewFromInt(int64(scoreSum)).
			DivRound(decimal.NewFromInt(int64(metrics.TotalOrders)), 0).IntPart())
	}
	return metrics, nil
}
