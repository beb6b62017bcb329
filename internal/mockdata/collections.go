package mockdata

import "nutribites-storefront/internal/domain"

var collectionImages = map[string]string{
	"proteinSnacks":   "https://images.unsplash.com/photo-1604329760661-e71dc83f8f26?w=800&h=600&fit=crop",
	"milletMunchies":  "https://images.unsplash.com/photo-1599490659213-e2b9527bd087?w=800&h=600&fit=crop",
	"guiltFreeSweets": "https://images.unsplash.com/photo-1548943487-a2e4e43b4853?w=800&h=600&fit=crop",
	"crunchyNamkeen":  "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=800&h=600&fit=crop",
	"giftHampers":     "https://images.unsplash.com/photo-1513201099705-a9746e1e201f?w=800&h=600&fit=crop",
	"bestsellers":     "https://images.unsplash.com/photo-1607082350899-7e105aa886ae?w=800&h=600&fit=crop",
	"newArrivals":     "https://images.unsplash.com/photo-1571748982800-fa51082c2224?w=800&h=600&fit=crop",
}

func collectionImage(key, alt string) *domain.Image {
	return &domain.Image{URL: collectionImages[key], AltText: alt, Width: 800, Height: 600}
}

func withAnyTag(exclude string, tags ...string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.HasAnyTag(tags...) && (exclude == "" || !p.HasTag(exclude)) {
			out = append(out, p)
		}
	}
	return out
}

func collections() []domain.Collection {
	return []domain.Collection{
		{
			ID:          "gid://shopify/Collection/1",
			Handle:      "protein-snacks",
			Title:       "Protein Snacks",
			Description: "Fuel your fitness journey with our protein-packed snacks. Perfect for post-workout recovery or a healthy energy boost.",
			Image:       collectionImage("proteinSnacks", "Protein Snacks Collection"),
			Products:    withAnyTag("", "Protein", "Post-Workout", "High Protein"),
		},
		{
			ID:          "gid://shopify/Collection/2",
			Handle:      "millet-munchies",
			Title:       "Millet Munchies",
			Description: "Discover the goodness of ancient grains. Our millet-based snacks are nutritious, delicious, and perfect for guilt-free snacking.",
			Image:       collectionImage("milletMunchies", "Millet Munchies Collection"),
			Products:    withAnyTag("", "Millet", "No Maida", "Jaggery"),
		},
		{
			ID:          "gid://shopify/Collection/3",
			Handle:      "guilt-free-sweets",
			Title:       "Guilt-Free Sweets",
			Description: "Satisfy your sweet cravings without the guilt. Made with natural sweeteners and premium ingredients.",
			Image:       collectionImage("guiltFreeSweets", "Guilt-Free Sweets Collection"),
			Products:    withAnyTag("Bundle", "No Sugar", "Traditional", "Vegan", "Gift-Ready"),
		},
		{
			ID:          "gid://shopify/Collection/4",
			Handle:      "crunchy-namkeen",
			Title:       "Crunchy Namkeen",
			Description: "Traditional Indian snacks, reimagined for the health-conscious. Baked, not fried, with authentic flavors.",
			Image:       collectionImage("crunchyNamkeen", "Crunchy Namkeen Collection"),
			Products:    withAnyTag("Protein", "Baked", "Traditional", "Less Oil", "Quinoa", "High Fiber"),
		},
		{
			ID:          "gid://shopify/Collection/5",
			Handle:      "gift-hampers",
			Title:       "Gift Hampers",
			Description: "Share the gift of health with our beautifully curated gift boxes. Perfect for festivals, corporate gifting, and special occasions.",
			Image:       collectionImage("giftHampers", "Gift Hampers Collection"),
			Products:    withAnyTag("", "Gift", "Bundle", "Premium Gift", "Corporate", "Value Pack"),
		},
		{
			ID:          "gid://shopify/Collection/6",
			Handle:      "bestsellers",
			Title:       "Bestsellers",
			Description: "Our most loved products, chosen by thousands of happy customers. Start your healthy snacking journey here.",
			Image:       collectionImage("bestsellers", "Bestsellers Collection"),
			Products:    withAnyTag("", "Bestseller"),
		},
		{
			ID:          "gid://shopify/Collection/7",
			Handle:      "new-arrivals",
			Title:       "New Arrivals",
			Description: "Fresh additions to our healthy snacks family. Be the first to try our latest innovations.",
			Image:       collectionImage("newArrivals", "New Arrivals Collection"),
			Products:    Products()[:4],
		},
	}
}

func Collections() []domain.Collection {
	return collections()
}

func CollectionByHandle(handle string) (*domain.Collection, bool) {
	for _, c := range collections() {
		if c.Handle == handle {
			return &c, true
		}
	}
	return nil, false
}
