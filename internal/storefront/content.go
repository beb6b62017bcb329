package storefront

import (
	"context"
	"sort"
	"strconv"

	"nutribites-storefront/internal/domain"
)

// HeroBanners fetches hero_banner metaobjects, keeping only active
// banners ordered by their display_order field.
func (c *Client) HeroBanners(ctx context.Context) ([]domain.HeroBanner, error) {
	var data struct {
		Metaobjects Connection[wireMetaobject] `json:"metaobjects"`
	}
	if err := c.query(ctx, getHeroBannersQuery, nil, &data); err != nil {
		return nil, err
	}

	banners := make([]domain.HeroBanner, 0)
	for _, m := range Nodes(data.Metaobjects) {
		b := reshapeHeroBanner(m)
		if b.IsActive {
			banners = append(banners, b)
		}
	}
	sort.SliceStable(banners, func(i, j int) bool { return banners[i].Order < banners[j].Order })
	return banners, nil
}

func reshapeHeroBanner(m wireMetaobject) domain.HeroBanner {
	order, _ := strconv.Atoi(m.field("display_order"))
	backgroundColor := m.field("background_color")
	if backgroundColor == "" {
		backgroundColor = "#2D5A3D"
	}
	textColor := m.field("text_color")
	if textColor == "" {
		textColor = "light"
	}
	return domain.HeroBanner{
		ID:              m.ID,
		Headline:        m.field("headline"),
		Subtext:         m.field("subtext"),
		ButtonText:      m.field("button_text"),
		ButtonLink:      m.field("button_link"),
		BackgroundImage: m.imageURL("background_image"),
		BackgroundColor: backgroundColor,
		TextColor:       textColor,
		Order:           order,
		IsActive:        m.field("is_active") == "true",
	}
}
