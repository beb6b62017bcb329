package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutribites-storefront/internal/catalog"
	"nutribites-storefront/internal/mockdata"
)

func siteContentHandler(c *gin.Context) {
	c.JSON(http.StatusOK, mockdata.SiteSettings())
}

// heroBannersHandler serves CMS banners from the catalog source, falling
// back to the static set if the remote metaobject fetch fails. Marketing
// content failures never surface as errors.
func heroBannersHandler(src catalog.Source, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := src.HeroBanners(c.Request.Context())
		if err != nil {
			logger.Printf("hero banners: %v", err)
			banners = mockdata.HeroBanners()
		}
		c.JSON(http.StatusOK, gin.H{"banners": banners})
	}
}

func trustBadgesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"badges": mockdata.TrustBadges()})
}

func testimonialsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"testimonials": mockdata.Testimonials()})
}

func faqHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": mockdata.FAQItems()})
}

func moodsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": mockdata.MoodCategories()})
}
