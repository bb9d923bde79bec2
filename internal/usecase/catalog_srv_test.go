package usecase

import (
	"context"
	"testing"

	"realty-platform/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewCatalogService(repo, zap.NewNop())

	_, err := svc.CreateCategory(context.Background(), &request.ServiceCategoryRequest{
		Name: "Mudanzas",
		Slug: "mudanzas",
	})
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), &request.ServiceCategoryRequest{
		Name: "Mudanzas Premium",
		Slug: "mudanzas",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Still a single row.
	categories := repo.Category.(*fakeCategoryRepo)
	assert.Len(t, categories.categories, 1)
}

func TestCreateServiceRequiresCategory(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewCatalogService(repo, zap.NewNop())

	_, err := svc.CreateService(context.Background(), &request.ServiceRequest{
		CategoryID: uuid.New().String(),
		Name:       "Limpieza profunda",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category not found")
}

func TestCreateServiceEmbedsCategory(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewCatalogService(repo, zap.NewNop())

	category, err := svc.CreateCategory(context.Background(), &request.ServiceCategoryRequest{
		Name: "Limpieza",
		Slug: "limpieza",
	})
	require.NoError(t, err)

	service, err := svc.CreateService(context.Background(), &request.ServiceRequest{
		CategoryID: category.ID,
		Name:       "Limpieza profunda",
	})
	require.NoError(t, err)
	require.NotNil(t, service.Category)
	assert.Equal(t, "limpieza", service.Category.Slug)
}

func TestListServicesFiltersInactive(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewCatalogService(repo, zap.NewNop())

	category, err := svc.CreateCategory(context.Background(), &request.ServiceCategoryRequest{
		Name: "Limpieza",
		Slug: "limpieza",
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.CreateService(context.Background(), &request.ServiceRequest{
		CategoryID: category.ID,
		Name:       "Servicio retirado",
		IsActive:   &inactive,
	})
	require.NoError(t, err)

	_, err = svc.CreateService(context.Background(), &request.ServiceRequest{
		CategoryID: category.ID,
		Name:       "Servicio activo",
	})
	require.NoError(t, err)

	services, err := svc.ListServices(context.Background(), ServiceListFilter{})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Servicio activo", services[0].Name)
}

func TestListCategoriesIncludesServiceCounts(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewCatalogService(repo, zap.NewNop())

	category, err := svc.CreateCategory(context.Background(), &request.ServiceCategoryRequest{
		Name: "Plomería",
		Slug: "plomeria",
	})
	require.NoError(t, err)

	_, err = svc.CreateService(context.Background(), &request.ServiceRequest{
		CategoryID: category.ID,
		Name:       "Reparación de fugas",
	})
	require.NoError(t, err)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(1), categories[0].ServiceCount)
}

func TestSetProviderActiveToggles(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewCatalogService(repo, zap.NewNop())

	provider, err := svc.CreateProvider(context.Background(), &request.ServiceProviderRequest{
		Name:      "Notaría 12",
		Specialty: "Notario",
		Rating:    4.5,
	})
	require.NoError(t, err)
	assert.True(t, provider.IsActive)

	updated, err := svc.SetProviderActive(context.Background(), provider.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// Inactive providers drop out of the public listing.
	providers, err := svc.ListProviders(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, providers)
}
