package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"nutribites-storefront/internal/domain"
)

// Filter holds the query-parameter driven product list refinements.
// Price bounds apply to the minimum variant price; empty strings mean
// unbounded. Unparseable bounds are ignored rather than rejected.
type Filter struct {
	Tag      string
	Query    string
	MinPrice string
	MaxPrice string
	Sort     string
}

// Apply filters then sorts, returning a new slice. Filtering happens
// after reshaping; the reshaping layer itself never drops data.
func Apply(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	min, hasMin := parsePrice(f.MinPrice)
	max, hasMax := parsePrice(f.MaxPrice)

	for _, p := range products {
		if f.Tag != "" && !hasTagFold(p, f.Tag) {
			continue
		}
		if f.Query != "" && !matchesQuery(p, f.Query) {
			continue
		}
		if hasMin || hasMax {
			price := p.PriceRange.MinVariantPrice.Decimal()
			if hasMin && price.LessThan(min) {
				continue
			}
			if hasMax && price.GreaterThan(max) {
				continue
			}
		}
		out = append(out, p)
	}

	sortProducts(out, f.Sort)
	return out
}

func sortProducts(products []domain.Product, key string) {
	switch key {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceRange.MinVariantPrice.Cmp(products[j].PriceRange.MinVariantPrice) < 0
		})
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceRange.MinVariantPrice.Cmp(products[j].PriceRange.MinVariantPrice) > 0
		})
	case "name-asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Title < products[j].Title
		})
	case "name-desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Title > products[j].Title
		})
	}
}

func parsePrice(v string) (decimal.Decimal, bool) {
	if v == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func hasTagFold(p domain.Product, tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func matchesQuery(p domain.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
