package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutribites-storefront/internal/catalog"
	"nutribites-storefront/internal/domain"
)

// cartResponse is the cart view handed to the frontend after every cart
// read and mutation. Count and total follow remote precedence.
type cartResponse struct {
	State        string             `json:"state"`
	RemoteCartID string             `json:"remoteCartId,omitempty"`
	RemoteCart   *domain.RemoteCart `json:"remoteCart,omitempty"`
	Lines        []domain.CartLine  `json:"lines"`
	Count        int                `json:"count"`
	Total        domain.Money       `json:"total"`
	TotalDisplay string             `json:"totalDisplay"`
	DrawerOpen   bool               `json:"drawerOpen"`
	Loading      bool               `json:"loading"`
}

func cartView(sess *Session) cartResponse {
	snap := sess.Store.Snapshot()
	lines := snap.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	total := sess.Store.Total()
	return cartResponse{
		State:        sess.Bootstrap.State().String(),
		RemoteCartID: snap.RemoteCartID,
		RemoteCart:   snap.RemoteCart,
		Lines:        lines,
		Count:        sess.Store.Count(),
		Total:        total,
		TotalDisplay: total.Format(),
		DrawerOpen:   snap.DrawerOpen,
		Loading:      snap.Loading,
	}
}

func getCartHandler(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Resolve(c)
		sess.EnsureBootstrap()
		c.JSON(http.StatusOK, cartView(sess))
	}
}

type addItemRequest struct {
	ProductHandle string `json:"productHandle" binding:"required"`
	VariantID     string `json:"variantId"`
}

// addCartItemHandler resolves the product from the catalog so the line
// snapshots title, handle, price and image at the moment of add. An
// omitted variant id selects the product's first variant.
func addCartItemHandler(sessions *SessionManager, src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productHandle is required"})
			return
		}

		product, err := src.ProductByHandle(c.Request.Context(), req.ProductHandle)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		if len(product.Variants) == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "product has no variants"})
			return
		}

		variant := product.Variants[0]
		if req.VariantID != "" {
			found := false
			for _, v := range product.Variants {
				if v.ID == req.VariantID {
					variant = v
					found = true
					break
				}
			}
			if !found {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown variant"})
				return
			}
		}

		sess := sessions.Resolve(c)
		sess.EnsureBootstrap()
		sess.Store.AddItem(c.Request.Context(), *product, variant)
		sess.syncAddRemote(variant.ID, 1)
		c.JSON(http.StatusOK, cartView(sess))
	}
}

type updateItemRequest struct {
	LineID   string `json:"lineId" binding:"required"`
	Quantity int    `json:"quantity"`
}

func updateCartItemHandler(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lineId is required"})
			return
		}

		sess := sessions.Resolve(c)
		sess.EnsureBootstrap()
		variantID := variantForLine(sess, req.LineID)
		sess.Store.UpdateQuantity(c.Request.Context(), req.LineID, req.Quantity)
		if variantID != "" {
			sess.syncQuantityRemote(variantID, req.Quantity)
		}
		c.JSON(http.StatusOK, cartView(sess))
	}
}

// removeCartItemHandler takes the line id as a query parameter; line ids
// embed variant gids and cannot travel as a path segment.
func removeCartItemHandler(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID := c.Query("lineId")
		if lineID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lineId is required"})
			return
		}

		sess := sessions.Resolve(c)
		sess.EnsureBootstrap()
		variantID := variantForLine(sess, lineID)
		sess.Store.RemoveItem(c.Request.Context(), lineID)
		if variantID != "" {
			sess.syncQuantityRemote(variantID, 0)
		}
		c.JSON(http.StatusOK, cartView(sess))
	}
}

func clearCartHandler(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Resolve(c)
		sess.EnsureBootstrap()
		sess.syncClearRemote()
		sess.Store.ClearCart(c.Request.Context())
		c.JSON(http.StatusOK, cartView(sess))
	}
}

type drawerAction int

const (
	drawerOpen drawerAction = iota
	drawerClose
	drawerToggle
)

func drawerHandler(sessions *SessionManager, action drawerAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Resolve(c)
		switch action {
		case drawerOpen:
			sess.Store.OpenDrawer()
		case drawerClose:
			sess.Store.CloseDrawer()
		case drawerToggle:
			sess.Store.ToggleDrawer()
		}
		c.JSON(http.StatusOK, cartView(sess))
	}
}

func variantForLine(sess *Session, lineID string) string {
	for _, line := range sess.Store.Lines() {
		if line.ID == lineID {
			return line.VariantID
		}
	}
	return ""
}
