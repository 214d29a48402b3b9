package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

const (
	feedTitle       = "House Plan Files"
	feedLink        = "https://houseplanfiles.com"
	feedDescription = "Readymade House Plans and Designs"
	feedBrand       = "House Plan Files"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(value string) string {
	return xmlEscaper.Replace(value)
}

// feedPrice prefers the sale price whenever one is set.
func feedPrice(price, salePrice float64) float64 {
	if salePrice > 0 {
		return salePrice
	}
	return price
}

func formatFeedPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + " INR"
}

// renderFeedItem writes one <item> block. Products without a name or a
// positive price are skipped: Google rejects items missing either.
func renderFeedItem(b *strings.Builder, product models.Product) bool {
	price := feedPrice(product.Price, product.SalePrice)
	if price <= 0 || product.Name == "" {
		return false
	}

	id := product.ProductNo
	if id == "" {
		id = product.ID.Hex()
	}
	description := product.Description
	if description == "" {
		description = product.Name
	}
	link := feedLink + "/product/" + product.ID.Hex()

	b.WriteString("\n<item>")
	b.WriteString("\n<g:id>" + escapeXML(id) + "</g:id>")
	b.WriteString("\n<g:title>" + escapeXML(product.Name) + "</g:title>")
	b.WriteString("\n<g:description>" + escapeXML(description) + "</g:description>")
	b.WriteString("\n<g:link>" + escapeXML(link) + "</g:link>")
	b.WriteString("\n<g:image_link>" + escapeXML(product.MainImage) + "</g:image_link>")
	b.WriteString("\n<g:brand>" + feedBrand + "</g:brand>")
	b.WriteString("\n<g:condition>new</g:condition>")
	b.WriteString("\n<g:availability>in_stock</g:availability>")
	b.WriteString("\n<g:price>" + formatFeedPrice(price) + "</g:price>")
	b.WriteString("\n</item>")
	return true
}

func renderGoogleFeed(products []models.Product) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0"?>` + "\n")
	b.WriteString(`<rss xmlns:g="http://base.google.com/ns/1.0" version="2.0">` + "\n")
	b.WriteString("<channel>\n")
	b.WriteString("<title>" + feedTitle + "</title>\n")
	b.WriteString("<link>" + feedLink + "</link>\n")
	b.WriteString("<description>" + feedDescription + "</description>\n")

	for _, product := range products {
		renderFeedItem(&b, product)
	}

	b.WriteString("\n</channel>\n</rss>")
	return b.String()
}

/*
GET /api/feed/google
- Google Shopping feed over every published product
*/
func GetGoogleFeed(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/feed/google"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		findOptions := options.Find().SetProjection(bson.M{
			"name":        1,
			"description": 1,
			"salePrice":   1,
			"price":       1,
			"mainImage":   1,
			"productNo":   1,
			"status":      1,
		})

		cursor, err := db.Collection("products").Find(ctx, bson.M{"status": "Published"}, findOptions)
		if err != nil {
			respondFeedError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			respondFeedError(c, route, err)
			return
		}

		c.Data(http.StatusOK, "application/xml", []byte(renderGoogleFeed(products)))
	}
}

func respondFeedError(c *gin.Context, route string, err error) {
	log.Printf("[%s] feed generation error: %v", route, err)
	c.String(http.StatusInternalServerError, "Error generating feed")
}
