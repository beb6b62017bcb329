// Package mockdata holds the static catalog and CMS content the
// storefront serves when no remote backend is configured. The shapes
// mirror what the remote API would return after reshaping, so the HTTP
// layer cannot tell the two sources apart.
package mockdata

import (
	"strconv"
	"strings"
	"time"

	"nutribites-storefront/internal/domain"
)

var placeholderImages = map[string]string{
	"proteinBalls":  "https://images.unsplash.com/photo-1604329760661-e71dc83f8f26?w=600&h=600&fit=crop",
	"makhana":       "https://images.unsplash.com/photo-1599490659213-e2b9527bd087?w=600&h=600&fit=crop",
	"chikki":        "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600&h=600&fit=crop",
	"ragiChips":     "https://images.unsplash.com/photo-1621447504864-d8686e12698c?w=600&h=600&fit=crop",
	"jowarPuffs":    "https://images.unsplash.com/photo-1599490659213-e2b9527bd087?w=600&h=600&fit=crop",
	"milletCookies": "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=600&h=600&fit=crop",
	"dateLaddoo":    "https://images.unsplash.com/photo-1548943487-a2e4e43b4853?w=600&h=600&fit=crop",
	"dryFruitBarfi": "https://images.unsplash.com/photo-1589119908995-c6837fa14848?w=600&h=600&fit=crop",
	"coconutBalls":  "https://images.unsplash.com/photo-1571115177098-24ec42ed204d?w=600&h=600&fit=crop",
	"bakedBhujia":   "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=600&h=600&fit=crop",
	"quinoaChakli":  "https://images.unsplash.com/photo-1626776876729-bab4369a5a5a?w=600&h=600&fit=crop",
	"trailMix":      "https://images.unsplash.com/photo-1606312619070-d48b4c652a52?w=600&h=600&fit=crop",
	"starterBox":    "https://images.unsplash.com/photo-1607082350899-7e105aa886ae?w=600&h=600&fit=crop",
	"giftHamper":    "https://images.unsplash.com/photo-1513201099705-a9746e1e201f?w=600&h=600&fit=crop",
	"proteinBundle": "https://images.unsplash.com/photo-1571748982800-fa51082c2224?w=600&h=600&fit=crop",
}

type variantSeed struct {
	title string
	price string
}

func image(url, alt string) domain.Image {
	return domain.Image{URL: url, AltText: alt, Width: 600, Height: 600}
}

// product builds a mock product the way the reshaped remote payloads
// look: flat images and variants, derived price range, INR throughout.
func product(id, handle, title, description, price, compareAt, imageKey string, tags []string, variantSeeds ...variantSeed) domain.Product {
	if len(variantSeeds) == 0 {
		variantSeeds = []variantSeed{{title: "Default", price: price}}
	}

	optionName := "Title"
	optionValues := []string{"Default Title"}
	if len(variantSeeds) > 1 {
		optionName = "Flavor"
		optionValues = make([]string, 0, len(variantSeeds))
		for _, v := range variantSeeds {
			optionValues = append(optionValues, v.title)
		}
	}

	variants := make([]domain.ProductVariant, 0, len(variantSeeds))
	for i, v := range variantSeeds {
		variant := domain.ProductVariant{
			ID:               "gid://shopify/ProductVariant/" + id + strconv.Itoa(i),
			Title:            v.title,
			AvailableForSale: true,
			SelectedOptions:  []domain.SelectedOption{{Name: optionName, Value: v.title}},
			Price:            domain.Money{Amount: v.price, CurrencyCode: "INR"},
		}
		if compareAt != "" {
			variant.CompareAtPrice = &domain.Money{Amount: compareAt, CurrencyCode: "INR"}
		}
		variants = append(variants, variant)
	}

	featured := image(placeholderImages[imageKey], title)
	return domain.Product{
		ID:               "gid://shopify/Product/" + id,
		Handle:           handle,
		Title:            title,
		Description:      description,
		DescriptionHTML:  "<p>" + description + "</p>",
		AvailableForSale: true,
		FeaturedImage:    &featured,
		Images:           []domain.Image{featured},
		Options:          []domain.ProductOption{{ID: "1", Name: optionName, Values: optionValues}},
		PriceRange:       domain.DerivePriceRange(variants),
		Variants:         variants,
		Tags:             tags,
		UpdatedAt:        time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

var products = []domain.Product{
	// Protein snacks
	product("1", "protein-power-balls", "Protein Power Balls (Pack of 12)",
		"Packed with 8g protein per ball. Made with dates, nuts, and whey protein. Perfect post-workout snack. 240g pack.",
		"399", "499", "proteinBalls",
		[]string{"Protein", "Post-Workout", "No Sugar Added", "Bestseller"},
		variantSeed{"Chocolate", "399"}, variantSeed{"Peanut Butter", "399"}, variantSeed{"Mixed Berry", "399"}),
	product("2", "roasted-makhana-protein-crunch", "Roasted Makhana - Protein Crunch",
		"Crunchy fox nuts roasted to perfection with a protein-rich coating. Only 120 calories per serving. 100g pack.",
		"249", "", "makhana",
		[]string{"Low Calorie", "High Protein", "Gluten-Free"},
		variantSeed{"Peri Peri", "249"}, variantSeed{"Cheese", "249"}, variantSeed{"Classic Salt", "249"}),
	product("3", "peanut-protein-chikki", "Peanut Protein Chikki",
		"Traditional chikki reimagined with added protein. Crunchy, sweet, and nutritious. 200g (10 pieces).",
		"299", "", "chikki",
		[]string{"Traditional", "Protein", "No Preservatives"}),

	// Millet munchies
	product("4", "ragi-chips-tangy-tomato", "Ragi Chips - Tangy Tomato",
		"Crispy chips made from finger millet. 60% less fat than regular chips. 100g pack.",
		"149", "", "ragiChips",
		[]string{"Millet", "Baked", "Low Fat"}),
	product("5", "jowar-puffs-assorted", "Jowar Puffs Assorted",
		"Light, airy puffs made from sorghum. Available in 4 exciting flavors. 150g (4 packs).",
		"199", "", "jowarPuffs",
		[]string{"Millet", "Kids Favorite", "No Maida"},
		variantSeed{"Cheese", "199"}, variantSeed{"Herbs", "199"}, variantSeed{"Masala", "199"}, variantSeed{"Plain", "199"}),
	product("6", "millet-cookies-choco-chip", "Millet Cookies - Choco Chip",
		"Wholesome cookies made with multi-millet flour. Sweetened with jaggery. 200g (12 cookies).",
		"249", "", "milletCookies",
		[]string{"Millet", "Jaggery", "Eggless"}),

	// Guilt-free sweets
	product("7", "date-nut-laddoo", "Date & Nut Laddoo (Pack of 8)",
		"Zero added sugar laddoos made with premium dates, almonds, and cashews. 200g pack.",
		"349", "", "dateLaddoo",
		[]string{"No Sugar", "Traditional", "Gift-Ready", "Bestseller"}),
	product("8", "dry-fruit-barfi", "Dry Fruit Barfi",
		"Rich, creamy barfi loaded with dry fruits. Sweetened naturally with dates. 250g pack.",
		"449", "", "dryFruitBarfi",
		[]string{"Premium", "No Sugar", "Festive Special"}),
	product("9", "coconut-bliss-balls", "Coconut Bliss Balls",
		"Vegan coconut treats with a hint of cardamom. Melt-in-mouth goodness. 180g (9 pieces).",
		"299", "", "coconutBalls",
		[]string{"Vegan", "Gluten-Free", "No Dairy"}),

	// Crunchy namkeen
	product("10", "baked-bhujia", "Baked Bhujia",
		"Classic bhujia, now baked not fried. Same taste, 40% less oil. 150g pack.",
		"179", "", "bakedBhujia",
		[]string{"Baked", "Traditional", "Less Oil"}),
	product("11", "quinoa-chakli", "Quinoa Chakli",
		"Crunchy chakli made with quinoa and rice flour. A superfood twist on tradition. 200g pack.",
		"199", "", "quinoaChakli",
		[]string{"Quinoa", "Baked", "High Fiber"}),
	product("12", "mixed-nuts-trail-mix", "Mixed Nuts Trail Mix",
		"Premium mix of almonds, cashews, walnuts, and dried cranberries. 200g pack.",
		"399", "", "trailMix",
		[]string{"Premium", "No Salt", "Energy Boost"}),

	// Gift hampers
	product("13", "nutribites-starter-box", "NutriBites Starter Box",
		"Perfect introduction to healthy snacking. Contains 5 bestselling products: Protein Balls, Ragi Chips, Makhana, Trail Mix, and Date Laddoo.",
		"799", "999", "starterBox",
		[]string{"Gift", "Value Pack", "Bestseller"}),
	product("14", "festival-gift-hamper-premium", "Festival Gift Hamper - Premium",
		"Luxurious gift box with 8 premium products in beautiful packaging. Perfect for Diwali, Holi, and special occasions.",
		"1499", "1899", "giftHamper",
		[]string{"Premium Gift", "Festival", "Corporate"}),
	product("15", "protein-lovers-bundle", "Protein Lover's Bundle",
		"Complete protein snack collection for fitness enthusiasts. Includes all 3 protein products + Free Shaker Bottle.",
		"999", "", "proteinBundle",
		[]string{"Protein", "Fitness", "Bundle"}),
}

// Products returns the full mock catalog.
func Products() []domain.Product {
	return append([]domain.Product(nil), products...)
}

func ProductByHandle(handle string) (*domain.Product, bool) {
	for _, p := range products {
		if p.Handle == handle {
			return &p, true
		}
	}
	return nil, false
}

// SearchProducts matches the query against title, description, and tags,
// case-insensitively.
func SearchProducts(query string) []domain.Product {
	q := strings.ToLower(query)
	out := make([]domain.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			tagContains(p.Tags, q) {
			out = append(out, p)
		}
	}
	return out
}

func tagContains(tags []string, loweredQuery string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), loweredQuery) {
			return true
		}
	}
	return false
}
