package domain

import "time"

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type ProductVariant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
	Price            Money            `json:"price"`
	CompareAtPrice   *Money           `json:"compareAtPrice,omitempty"`
	Image            *Image           `json:"image,omitempty"`
}

// OnSale reports whether the compare-at price numerically exceeds the
// selling price.
func (v ProductVariant) OnSale() bool {
	return v.CompareAtPrice != nil && v.CompareAtPrice.Cmp(v.Price) > 0
}

type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

// Product is the flat view model used everywhere after reshaping. It is
// constructed once per fetch and not mutated afterwards; a catalog change
// is observed by fetching a new value.
type Product struct {
	ID               string           `json:"id"`
	Handle           string           `json:"handle"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	DescriptionHTML  string           `json:"descriptionHtml,omitempty"`
	AvailableForSale bool             `json:"availableForSale"`
	FeaturedImage    *Image           `json:"featuredImage,omitempty"`
	Images           []Image          `json:"images"`
	Options          []ProductOption  `json:"options,omitempty"`
	PriceRange       PriceRange       `json:"priceRange"`
	Variants         []ProductVariant `json:"variants"`
	Tags             []string         `json:"tags"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// DerivePriceRange computes the min/max over all variant prices, compared
// numerically, in the currency declared by the first variant. Catalogs are
// assumed single-currency.
func DerivePriceRange(variants []ProductVariant) PriceRange {
	if len(variants) == 0 {
		return PriceRange{}
	}
	min, max := variants[0].Price, variants[0].Price
	for _, v := range variants[1:] {
		if v.Price.Cmp(min) < 0 {
			min = v.Price
		}
		if v.Price.Cmp(max) > 0 {
			max = v.Price
		}
	}
	return PriceRange{MinVariantPrice: min, MaxVariantPrice: max}
}

func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the product carries at least one of the tags.
func (p Product) HasAnyTag(tags ...string) bool {
	for _, t := range tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}
