package domain

// CMS-driven marketing content. Served from the remote backend's
// metaobjects when configured, otherwise from the compiled-in mock set.

type SiteSettings struct {
	SiteName               string `json:"siteName"`
	Tagline                string `json:"tagline"`
	AnnouncementBarText    string `json:"announcementBarText"`
	AnnouncementBarEnabled bool   `json:"announcementBarEnabled"`
}

type HeroBanner struct {
	ID              string `json:"id"`
	Headline        string `json:"headline"`
	Subtext         string `json:"subtext"`
	ButtonText      string `json:"buttonText"`
	ButtonLink      string `json:"buttonLink"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Order           int    `json:"order"`
	IsActive        bool   `json:"isActive"`
}

type TrustBadge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Order       int    `json:"order"`
}

type Testimonial struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	Location      string `json:"location"`
	Rating        int    `json:"rating"`
	ReviewText    string `json:"reviewText"`
	ProductHandle string `json:"productHandle,omitempty"`
	IsFeatured    bool   `json:"isFeatured"`
	Order         int    `json:"order"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// MoodCategory is a shop-by-mood tile linking to a filtered product list.
type MoodCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
}
