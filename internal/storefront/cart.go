package storefront

import (
	"context"

	"nutribites-storefront/internal/domain"
)

// CartLineInput references a merchandise (variant) to add.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// CartLineUpdate targets an existing remote line by its id.
type CartLineUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CreateCart creates a fresh backend-owned cart.
func (c *Client) CreateCart(ctx context.Context) (*domain.RemoteCart, error) {
	var data struct {
		CartCreate struct {
			Cart wireCart `json:"cart"`
		} `json:"cartCreate"`
	}
	if err := c.query(ctx, createCartMutation, nil, &data); err != nil {
		return nil, err
	}
	cart := reshapeCart(data.CartCreate.Cart)
	return &cart, nil
}

// Cart fetches a cart by id. A (nil, nil) return means the backend no
// longer knows the cart (expired), which is distinct from a failed call.
func (c *Client) Cart(ctx context.Context, cartID string) (*domain.RemoteCart, error) {
	var data struct {
		Cart *wireCart `json:"cart"`
	}
	if err := c.query(ctx, getCartQuery, map[string]any{"cartId": cartID}, &data); err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, nil
	}
	cart := reshapeCart(*data.Cart)
	return &cart, nil
}

func (c *Client) AddCartLines(ctx context.Context, cartID string, lines []CartLineInput) (*domain.RemoteCart, error) {
	var data struct {
		CartLinesAdd struct {
			Cart wireCart `json:"cart"`
		} `json:"cartLinesAdd"`
	}
	vars := map[string]any{"cartId": cartID, "lines": lines}
	if err := c.query(ctx, addToCartMutation, vars, &data); err != nil {
		return nil, err
	}
	cart := reshapeCart(data.CartLinesAdd.Cart)
	return &cart, nil
}

func (c *Client) UpdateCartLines(ctx context.Context, cartID string, lines []CartLineUpdate) (*domain.RemoteCart, error) {
	var data struct {
		CartLinesUpdate struct {
			Cart wireCart `json:"cart"`
		} `json:"cartLinesUpdate"`
	}
	vars := map[string]any{"cartId": cartID, "lines": lines}
	if err := c.query(ctx, updateCartMutation, vars, &data); err != nil {
		return nil, err
	}
	cart := reshapeCart(data.CartLinesUpdate.Cart)
	return &cart, nil
}

func (c *Client) RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*domain.RemoteCart, error) {
	var data struct {
		CartLinesRemove struct {
			Cart wireCart `json:"cart"`
		} `json:"cartLinesRemove"`
	}
	vars := map[string]any{"cartId": cartID, "lineIds": lineIDs}
	if err := c.query(ctx, removeFromCartMutation, vars, &data); err != nil {
		return nil, err
	}
	cart := reshapeCart(data.CartLinesRemove.Cart)
	return &cart, nil
}
