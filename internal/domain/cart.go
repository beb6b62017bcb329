package domain

// CartLine is one row of the local cart: a point-in-time snapshot of a
// product variant plus a positive quantity. The snapshot is deliberately
// not refreshed when the catalog price changes later.
type CartLine struct {
	ID            string `json:"id"`
	ProductID     string `json:"productId"`
	ProductHandle string `json:"productHandle"`
	ProductTitle  string `json:"productTitle"`
	VariantID     string `json:"variantId"`
	VariantTitle  string `json:"variantTitle"`
	Price         Money  `json:"price"`
	Quantity      int    `json:"quantity"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// LineID builds the composite line identity. At most one line per
// product+variant pair exists in a cart.
func LineID(productID, variantID string) string {
	return productID + "-" + variantID
}

// Merchandise is the remote backend's reference to the purchasable
// variant behind a remote cart line.
type Merchandise struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	SelectedOptions []SelectedOption `json:"selectedOptions"`
	Product         struct {
		ID            string `json:"id"`
		Handle        string `json:"handle"`
		Title         string `json:"title"`
		FeaturedImage *Image `json:"featuredImage,omitempty"`
	} `json:"product"`
	Price Money `json:"price"`
}

type RemoteCartLine struct {
	ID          string      `json:"id"`
	Quantity    int         `json:"quantity"`
	Merchandise Merchandise `json:"merchandise"`
}

type CartCost struct {
	SubtotalAmount Money  `json:"subtotalAmount"`
	TotalAmount    Money  `json:"totalAmount"`
	TotalTaxAmount *Money `json:"totalTaxAmount,omitempty"`
}

// RemoteCart is the last-fetched snapshot of the backend-owned cart. The
// backend stays the system of record; the application only keeps the id
// and this cached copy.
type RemoteCart struct {
	ID            string           `json:"id"`
	CheckoutURL   string           `json:"checkoutUrl"`
	TotalQuantity int              `json:"totalQuantity"`
	Cost          CartCost         `json:"cost"`
	Lines         []RemoteCartLine `json:"lines"`
}
