// Package catalog fronts the two product data sources: the remote
// storefront backend when configured, the compiled-in mock catalog
// otherwise. Consumers only see the Source interface.
package catalog

import (
	"context"

	"nutribites-storefront/internal/domain"
	"nutribites-storefront/internal/mockdata"
)

type Source interface {
	Products(ctx context.Context, first int) ([]domain.Product, error)
	ProductByHandle(ctx context.Context, handle string) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string, first int) ([]domain.Product, error)
	Collections(ctx context.Context, first int) ([]domain.Collection, error)
	CollectionByHandle(ctx context.Context, handle string, productCount int) (*domain.Collection, error)
	CollectionProducts(ctx context.Context, handle string, first int) ([]domain.Product, error)
	HeroBanners(ctx context.Context) ([]domain.HeroBanner, error)
}

// MockSource serves the static catalog. All methods are total and never
// touch the network.
type MockSource struct{}

func NewMock() MockSource {
	return MockSource{}
}

func (MockSource) Products(_ context.Context, first int) ([]domain.Product, error) {
	return truncate(mockdata.Products(), first), nil
}

func (MockSource) ProductByHandle(_ context.Context, handle string) (*domain.Product, error) {
	p, ok := mockdata.ProductByHandle(handle)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (MockSource) SearchProducts(_ context.Context, query string, first int) ([]domain.Product, error) {
	return truncate(mockdata.SearchProducts(query), first), nil
}

func (MockSource) Collections(_ context.Context, first int) ([]domain.Collection, error) {
	return truncate(mockdata.Collections(), first), nil
}

func (MockSource) CollectionByHandle(_ context.Context, handle string, productCount int) (*domain.Collection, error) {
	c, ok := mockdata.CollectionByHandle(handle)
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Products = truncate(c.Products, productCount)
	return c, nil
}

// CollectionProducts yields an empty slice for an unknown handle; a
// missing collection has no products, it is not an error.
func (MockSource) CollectionProducts(_ context.Context, handle string, first int) ([]domain.Product, error) {
	c, ok := mockdata.CollectionByHandle(handle)
	if !ok {
		return []domain.Product{}, nil
	}
	return truncate(c.Products, first), nil
}

func (MockSource) HeroBanners(_ context.Context) ([]domain.HeroBanner, error) {
	return mockdata.HeroBanners(), nil
}

func truncate[T any](items []T, first int) []T {
	if first > 0 && len(items) > first {
		return items[:first]
	}
	return items
}
