package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	product "github.com/Saksham10-11/GSD/internal/products"
	"github.com/Saksham10-11/GSD/pkg/db/models"
	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
	"github.com/Saksham10-11/GSD/pkg/logger"
	"github.com/Saksham10-11/GSD/pkg/pricing"
)

// Service exposes the shopper cart operations.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartDTO, error)
	UpdateItemQuantity(ctx context.Context, userID, productID uuid.UUID, req UpdateItemRequest) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error)
	SetOptions(ctx context.Context, userID uuid.UUID, req OptionsRequest) (*CartDTO, error)
}

type service struct {
	carts    *Repository
	products *product.Repository
	logg     *logger.Logger
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	CartRepo    *Repository
	ProductRepo *product.Repository
	Logger      *logger.Logger
}

// NewService constructs a cart service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart repository required")
	}
	if params.ProductRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product repository required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &service{
		carts:    params.CartRepo,
		products: params.ProductRepo,
		logg:     params.Logger,
	}, nil
}

// GetCart returns the user's active cart, creating an empty one on first
// access.
func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	record, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.render(record)
}

func (s *service) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartDTO, error) {
	if req.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if req.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}

	record, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	// adding an existing product bumps its quantity
	for _, item := range record.Items {
		if item.ProductID == req.ProductID {
			if _, err := s.carts.UpdateItemQuantity(ctx, record.ID, req.ProductID, item.Quantity+req.Quantity); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bump item quantity")
			}
			return s.reload(ctx, userID)
		}
	}

	prod, err := s.products.FindByID(ctx, req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product not found").WithDetails(map[string]any{
			"product_id": req.ProductID,
		})
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find product")
	}
	if !prod.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is no longer available")
	}

	score := 0
	if prod.SustainabilityScore != nil {
		score = *prod.SustainabilityScore
	}
	item := &models.CartItem{
		CartID:              record.ID,
		ProductID:           prod.ID,
		Position:            len(record.Items),
		Quantity:            req.Quantity,
		ProductName:         prod.Name,
		UnitPrice:           prod.Price,
		CarbonFootprintKg:   prod.CarbonFootprintKg,
		SustainabilityScore: score,
		RecycledMaterials:   prod.RecycledMaterials,
	}
	if err := s.carts.CreateItem(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add cart item")
	}

	s.logg.Info(s.logg.WithCartID(ctx, record.ID.String()), "item added to cart")
	return s.reload(ctx, userID)
}

func (s *service) UpdateItemQuantity(ctx context.Context, userID, productID uuid.UUID, req UpdateItemRequest) (*CartDTO, error) {
	if req.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	record, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	affected, err := s.carts.UpdateItemQuantity(ctx, record.ID, productID, req.Quantity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update item quantity")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the cart")
	}
	return s.reload(ctx, userID)
}

func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error) {
	record, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	affected, err := s.carts.DeleteItem(ctx, record.ID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the cart")
	}
	return s.reload(ctx, userID)
}

func (s *service) SetOptions(ctx context.Context, userID uuid.UUID, req OptionsRequest) (*CartDTO, error) {
	record, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	greenDelivery := record.GreenDelivery
	carbonOffset := record.CarbonOffset
	if req.GreenDelivery != nil {
		greenDelivery = *req.GreenDelivery
	}
	if req.CarbonOffset != nil {
		carbonOffset = *req.CarbonOffset
	}

	if err := s.carts.SetOptions(ctx, record.ID, greenDelivery, carbonOffset); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set cart options")
	}
	return s.reload(ctx, userID)
}

func (s *service) getOrCreate(ctx context.Context, userID uuid.UUID) (*models.CartRecord, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user is required")
	}

	record, err := s.carts.FindActiveByUser(ctx, userID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find active cart")
	}

	record, err = s.carts.Create(ctx, &models.CartRecord{UserID: userID})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create cart")
	}
	return record, nil
}

func (s *service) reload(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	record, err := s.carts.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload cart")
	}
	return s.render(record)
}

func (s *service) render(record *models.CartRecord) (*CartDTO, error) {
	summary, err := pricing.Summarize(LineItems(record.Items), record.GreenDelivery, record.CarbonOffset)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(record, summary), nil
}
