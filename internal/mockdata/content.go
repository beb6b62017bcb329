package mockdata

import "nutribites-storefront/internal/domain"

func SiteSettings() domain.SiteSettings {
	return domain.SiteSettings{
		SiteName:               "NutriBites",
		Tagline:                "Snack Smart, Live Better",
		AnnouncementBarText:    "Free Shipping on orders above Rs. 499 | Use code FIRST10 for 10% off",
		AnnouncementBarEnabled: true,
	}
}

func HeroBanners() []domain.HeroBanner {
	return []domain.HeroBanner{
		{
			ID:              "1",
			Headline:        "Healthy Never Tasted This Good",
			Subtext:         "100% Natural Ingredients | No Preservatives | No Added Sugar",
			ButtonText:      "Shop Now",
			ButtonLink:      "/products",
			BackgroundImage: "https://images.unsplash.com/photo-1490818387583-1baba5e638af?w=1600&h=900&fit=crop",
			BackgroundColor: "#F5E6D3",
			TextColor:       "dark",
			Order:           1,
			IsActive:        true,
		},
		{
			ID:              "2",
			Headline:        "Protein-Packed Snacks",
			Subtext:         "Fuel your fitness journey the delicious way",
			ButtonText:      "Explore Protein Range",
			ButtonLink:      "/collections/protein-snacks",
			BackgroundImage: "https://images.unsplash.com/photo-1604329760661-e71dc83f8f26?w=1600&h=900&fit=crop",
			BackgroundColor: "#2D5A4A",
			TextColor:       "light",
			Order:           2,
			IsActive:        true,
		},
		{
			ID:              "3",
			Headline:        "Festival Special Hampers",
			Subtext:         "Gift health to your loved ones",
			ButtonText:      "Shop Gifts",
			ButtonLink:      "/collections/gift-hampers",
			BackgroundImage: "https://images.unsplash.com/photo-1513201099705-a9746e1e201f?w=1600&h=900&fit=crop",
			BackgroundColor: "#E87B35",
			TextColor:       "light",
			Order:           3,
			IsActive:        true,
		},
	}
}

func TrustBadges() []domain.TrustBadge {
	return []domain.TrustBadge{
		{ID: "1", Title: "100% Natural", Icon: "Leaf", Description: "Made with pure, natural ingredients",
			ImageURL: "https://images.unsplash.com/photo-1542838132-92c53300491e?w=600&h=400&fit=crop", Order: 1},
		{ID: "2", Title: "No Preservatives", Icon: "ShieldCheck", Description: "Free from artificial preservatives",
			ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=600&h=400&fit=crop", Order: 2},
		{ID: "3", Title: "Vegan Options", Icon: "Sprout", Description: "Plant-based choices available",
			ImageURL: "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=600&h=400&fit=crop", Order: 3},
		{ID: "4", Title: "High Protein", Icon: "Dumbbell", Description: "Protein-packed for fitness",
			ImageURL: "https://images.unsplash.com/photo-1590779033100-9f60a05a013d?w=600&h=400&fit=crop", Order: 4},
	}
}

func Testimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{ID: "1", CustomerName: "Priya Sharma", Location: "Mumbai", Rating: 5,
			ReviewText: "Finally found snacks I can eat guilt-free! The protein balls are my post-gym essential.",
			IsFeatured: true, Order: 1},
		{ID: "2", CustomerName: "Rahul Verma", Location: "Delhi", Rating: 5,
			ReviewText: "My kids love the Jowar Puffs. Happy that they're eating healthy without even knowing it!",
			IsFeatured: true, Order: 2},
		{ID: "3", CustomerName: "Anita Krishnan", Location: "Bangalore", Rating: 4,
			ReviewText: "The Date Laddoos taste just like homemade. Great for diabetic-friendly gifting.",
			IsFeatured: true, Order: 3},
		{ID: "4", CustomerName: "Vikram Singh", Location: "Pune", Rating: 5,
			ReviewText: "Ordered the starter box to try. Now I'm a monthly subscriber. Absolutely love it!",
			IsFeatured: true, Order: 4},
		{ID: "5", CustomerName: "Meera Patel", Location: "Ahmedabad", Rating: 5,
			ReviewText: "Best healthy snacks brand I've tried. The makhana is addictive and guilt-free!",
			IsFeatured: true, Order: 5},
	}
}

func FAQItems() []domain.FAQItem {
	return []domain.FAQItem{
		{ID: "1", Category: "Products", Order: 1,
			Question: "What is the shelf life of your products?",
			Answer:   "All our products have a shelf life of 3-6 months from the date of manufacture. Check the packaging for specific dates."},
		{ID: "2", Category: "Products", Order: 2,
			Question: "Are your products suitable for diabetics?",
			Answer:   "Most of our products are made without added sugar and use natural sweeteners like dates and jaggery. However, please consult your doctor before consumption."},
		{ID: "3", Category: "Shipping", Order: 3,
			Question: "Do you offer international shipping?",
			Answer:   "Currently, we ship only within India. International shipping coming soon!"},
		{ID: "4", Category: "Shipping", Order: 4,
			Question: "What is your return policy?",
			Answer:   "We accept returns within 7 days of delivery for unopened products. Contact us at hello@nutribites.com for assistance."},
		{ID: "5", Category: "Products", Order: 5,
			Question: "Are your products vegan?",
			Answer:   "Many of our products are 100% vegan. Look for the \"Vegan\" tag on product pages."},
		{ID: "6", Category: "Shipping", Order: 6,
			Question: "How can I track my order?",
			Answer:   "Once your order is shipped, you will receive a tracking link via email and SMS. You can also track your order from your account dashboard."},
	}
}

// MoodCategories mixes taste and occasion moods for the shop-by-mood
// section.
func MoodCategories() []domain.MoodCategory {
	return []domain.MoodCategory{
		{ID: "spicy", Name: "Spicy", Icon: "Flame", Description: "Bold & fiery flavors", Slug: "spicy", Color: "#EF4444"},
		{ID: "sweet", Name: "Sweet", Icon: "Candy", Description: "Guilt-free sweetness", Slug: "sweet", Color: "#EC4899"},
		{ID: "cheesy", Name: "Cheesy", Icon: "Pizza", Description: "Cheesy goodness", Slug: "cheesy", Color: "#F59E0B"},
		{ID: "tangy", Name: "Tangy", Icon: "Citrus", Description: "Zesty & refreshing", Slug: "tangy", Color: "#84CC16"},
		{ID: "fitness", Name: "Fitness", Icon: "Dumbbell", Description: "Pre & post workout", Slug: "fitness", Color: "#3B82F6"},
		{ID: "party", Name: "Party", Icon: "PartyPopper", Description: "Guilt-free party snacks", Slug: "party", Color: "#8B5CF6"},
		{ID: "work", Name: "Work Snacks", Icon: "Coffee", Description: "Desk-friendly munchies", Slug: "work", Color: "#10B981"},
	}
}
