package product

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Saksham10-11/GSD/pkg/enums"
	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
	"github.com/Saksham10-11/GSD/pkg/logger"
)

// Service exposes storefront catalog operations.
type Service interface {
	ListProducts(ctx context.Context, category string) ([]*ProductDTO, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDTO, error)
	GetProductImage(ctx context.Context, productID uuid.UUID) (string, error)
	SeedCatalog(ctx context.Context) (int, error)
}

type imageResolver interface {
	ResolveProductImage(ctx context.Context, productID, query string) (string, error)
}

type service struct {
	repo   *Repository
	images imageResolver
	logg   *logger.Logger
}

// ServiceParams bundles the dependencies required to build a catalog service.
type ServiceParams struct {
	Repo   *Repository
	Images imageResolver
	Logger *logger.Logger
}

// NewService constructs a catalog service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product repository required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &service{
		repo:   params.Repo,
		images: params.Images,
		logg:   params.Logger,
	}, nil
}

func (s *service) ListProducts(ctx context.Context, category string) ([]*ProductDTO, error) {
	var filter *enums.ProductCategory
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		parsed, err := enums.ParseProductCategory(strings.ToLower(trimmed))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product category").WithDetails(map[string]any{
				"category": trimmed,
			})
		}
		filter = &parsed
	}

	products, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	dtos := make([]*ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, NewProductDTO(&products[i]))
	}
	return dtos, nil
}

func (s *service) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find product")
	}
	return NewProductDTO(product), nil
}

// GetProductImage resolves an image for the product, persisting the URL so
// later catalog reads serve it without touching the image provider.
func (s *service) GetProductImage(ctx context.Context, productID uuid.UUID) (string, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find product")
	}

	if product.ImageURL != nil && *product.ImageURL != "" {
		return *product.ImageURL, nil
	}
	if s.images == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "image provider not configured")
	}

	imageURL, err := s.images.ResolveProductImage(ctx, product.ID.String(), product.Name)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateImageURL(ctx, product.ID, imageURL); err != nil {
		s.logg.Error(ctx, "persist product image url", err)
	}
	return imageURL, nil
}

// SeedCatalog loads the starter assortment, refreshing entries that already
// exist. Returns the number of seeded products.
func (s *service) SeedCatalog(ctx context.Context) (int, error) {
	for _, seed := range seedCatalog {
		if err := s.repo.Upsert(ctx, seed.ToModel()); err != nil {
			return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed product "+seed.Slug)
		}
	}
	s.logg.Info(s.logg.WithField(ctx, "count", len(seedCatalog)), "catalog seeded")
	return len(seedCatalog), nil
}
