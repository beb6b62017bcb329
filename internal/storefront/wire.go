package storefront

import (
	"time"

	"nutribites-storefront/internal/domain"
)

// Connection is the graph API's pagination wrapper: each item arrives as
// {"node": T} inside an edges array. Purely a wire-format detail, gone
// after reshaping.
type Connection[T any] struct {
	Edges []Edge[T] `json:"edges"`
}

type Edge[T any] struct {
	Node T `json:"node"`
}

// Nodes flattens a connection into an ordered slice, preserving edge
// order. An empty or absent edge list yields an empty slice.
func Nodes[T any](c Connection[T]) []T {
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

type wireProduct struct {
	ID               string                            `json:"id"`
	Handle           string                            `json:"handle"`
	Title            string                            `json:"title"`
	Description      string                            `json:"description"`
	DescriptionHTML  string                            `json:"descriptionHtml"`
	AvailableForSale bool                              `json:"availableForSale"`
	FeaturedImage    *domain.Image                     `json:"featuredImage"`
	Images           Connection[domain.Image]          `json:"images"`
	Options          []domain.ProductOption            `json:"options"`
	Variants         Connection[domain.ProductVariant] `json:"variants"`
	Tags             []string                          `json:"tags"`
	UpdatedAt        time.Time                         `json:"updatedAt"`
}

type wireCollection struct {
	ID          string                  `json:"id"`
	Handle      string                  `json:"handle"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Image       *domain.Image           `json:"image"`
	Products    Connection[wireProduct] `json:"products"`
}

type wireCart struct {
	ID            string                            `json:"id"`
	CheckoutURL   string                            `json:"checkoutUrl"`
	TotalQuantity int                               `json:"totalQuantity"`
	Cost          domain.CartCost                   `json:"cost"`
	Lines         Connection[domain.RemoteCartLine] `json:"lines"`
}

type wireMetaobject struct {
	ID     string            `json:"id"`
	Fields []metaobjectField `json:"fields"`
}

type metaobjectField struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Reference *struct {
		Image *domain.Image `json:"image"`
	} `json:"reference"`
}

func (m wireMetaobject) field(key string) string {
	for _, f := range m.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

func (m wireMetaobject) imageURL(key string) string {
	for _, f := range m.Fields {
		if f.Key == key && f.Reference != nil && f.Reference.Image != nil {
			return f.Reference.Image.URL
		}
	}
	return ""
}

func reshapeProduct(w wireProduct) domain.Product {
	variants := Nodes(w.Variants)
	return domain.Product{
		ID:               w.ID,
		Handle:           w.Handle,
		Title:            w.Title,
		Description:      w.Description,
		DescriptionHTML:  w.DescriptionHTML,
		AvailableForSale: w.AvailableForSale,
		FeaturedImage:    w.FeaturedImage,
		Images:           Nodes(w.Images),
		Options:          w.Options,
		PriceRange:       domain.DerivePriceRange(variants),
		Variants:         variants,
		Tags:             w.Tags,
		UpdatedAt:        w.UpdatedAt,
	}
}

func reshapeProducts(ws []wireProduct) []domain.Product {
	out := make([]domain.Product, 0, len(ws))
	for _, w := range ws {
		out = append(out, reshapeProduct(w))
	}
	return out
}

func reshapeCollection(w wireCollection) domain.Collection {
	return domain.Collection{
		ID:          w.ID,
		Handle:      w.Handle,
		Title:       w.Title,
		Description: w.Description,
		Image:       w.Image,
		Products:    reshapeProducts(Nodes(w.Products)),
	}
}

func reshapeCart(w wireCart) domain.RemoteCart {
	return domain.RemoteCart{
		ID:            w.ID,
		CheckoutURL:   w.CheckoutURL,
		TotalQuantity: w.TotalQuantity,
		Cost:          w.Cost,
		Lines:         Nodes(w.Lines),
	}
}
