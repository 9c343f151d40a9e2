package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
	"github.com/Saksham10-11/GSD/pkg/logger"
)

type stubResolver struct {
	url   string
	calls int
}

func (s *stubResolver) ResolveProductImage(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.url, nil
}

func buildCatalogService(t *testing.T, resolver imageResolver) (Service, *Repository) {
	t.Helper()
	repo := NewRepository(openTestDB(t))
	svc, err := NewService(ServiceParams{
		Repo:   repo,
		Images: resolver,
		Logger: logger.New(logger.Options{ServiceName: "test"}),
	})
	require.NoError(t, err)
	return svc, repo
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, repo := buildCatalogService(t, nil)

	count, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedCatalog), count)

	// seeding again must not duplicate listings
	_, err = svc.SeedCatalog(ctx)
	require.NoError(t, err)

	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedCatalog)), active)
}

func TestListProductsFiltersByCategory(t *testing.T) {
	ctx := context.Background()
	svc, _ := buildCatalogService(t, nil)

	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)

	all, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(seedCatalog))

	electronics, err := svc.ListProducts(ctx, "electronics")
	require.NoError(t, err)
	require.NotEmpty(t, electronics)
	for _, dto := range electronics {
		assert.Equal(t, "electronics", dto.Category)
	}

	_, err = svc.ListProducts(ctx, "spaceships")
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := buildCatalogService(t, nil)

	_, err := svc.GetProduct(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestGetProductImagePersistsResolvedURL(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{url: "https://images.example.com/speaker.jpg"}
	svc, repo := buildCatalogService(t, resolver)

	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)

	listed, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	productID := listed[0].ID

	got, err := svc.GetProductImage(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, resolver.url, got)

	// second lookup is served from the stored URL
	got, err = svc.GetProductImage(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, resolver.url, got)
	assert.Equal(t, 1, resolver.calls)

	stored, err := repo.FindByID(ctx, productID)
	require.NoError(t, err)
	require.NotNil(t, stored.ImageURL)
	assert.Equal(t, resolver.url, *stored.ImageURL)
}

func TestSeedCatalogPricing(t *testing.T) {
	ctx := context.Background()
	svc, _ := buildCatalogService(t, nil)

	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)

	listed, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)

	bySlug := map[string]*ProductDTO{}
	for _, dto := range listed {
		bySlug[dto.Slug] = dto
	}

	speaker, ok := bySlug["eco-speaker-1"]
	require.True(t, ok)
	assert.True(t, speaker.Price.Equal(decimal.RequireFromString("79.00")))
	assert.True(t, speaker.CarbonFootprintKg.Equal(decimal.RequireFromString("3.2")))
	require.NotNil(t, speaker.SustainabilityScore)
	assert.Equal(t, 95, *speaker.SustainabilityScore)
	assert.True(t, speaker.RecycledMaterials)
}
