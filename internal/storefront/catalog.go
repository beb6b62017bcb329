package storefront

import (
	"context"
	"errors"

	"nutribites-storefront/internal/domain"
)

// Products fetches up to first products in best-selling order.
func (c *Client) Products(ctx context.Context, first int) ([]domain.Product, error) {
	var data struct {
		Products Connection[wireProduct] `json:"products"`
	}
	if err := c.query(ctx, getProductsQuery, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}
	return reshapeProducts(Nodes(data.Products)), nil
}

// ProductByHandle returns domain.ErrNotFound when the handle is unknown.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*domain.Product, error) {
	var data struct {
		Product *wireProduct `json:"product"`
	}
	if err := c.query(ctx, getProductByHandleQuery, map[string]any{"handle": handle}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, domain.ErrNotFound
	}
	p := reshapeProduct(*data.Product)
	return &p, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string, first int) ([]domain.Product, error) {
	var data struct {
		Products Connection[wireProduct] `json:"products"`
	}
	if err := c.query(ctx, searchProductsQuery, map[string]any{"query": query, "first": first}, &data); err != nil {
		return nil, err
	}
	return reshapeProducts(Nodes(data.Products)), nil
}

// Collections lists collections without their product lists.
func (c *Client) Collections(ctx context.Context, first int) ([]domain.Collection, error) {
	var data struct {
		Collections Connection[wireCollection] `json:"collections"`
	}
	if err := c.query(ctx, getCollectionsQuery, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}
	wires := Nodes(data.Collections)
	out := make([]domain.Collection, 0, len(wires))
	for _, w := range wires {
		out = append(out, reshapeCollection(w))
	}
	return out, nil
}

func (c *Client) CollectionByHandle(ctx context.Context, handle string, productCount int) (*domain.Collection, error) {
	var data struct {
		Collection *wireCollection `json:"collection"`
	}
	vars := map[string]any{"handle": handle, "first": productCount}
	if err := c.query(ctx, getCollectionByHandleQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.Collection == nil {
		return nil, domain.ErrNotFound
	}
	coll := reshapeCollection(*data.Collection)
	return &coll, nil
}

// CollectionProducts returns an empty slice for an unknown collection.
func (c *Client) CollectionProducts(ctx context.Context, handle string, first int) ([]domain.Product, error) {
	coll, err := c.CollectionByHandle(ctx, handle, first)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.Product{}, nil
		}
		return nil, err
	}
	return coll.Products, nil
}
