package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

/*
GET /api/media/products
- admin media picker listing
- newest first, count + page metadata in one response
*/
func GetAllProductsForMedia(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/media/products"
		defer handlePanic(c, route)

		pageSize := parseListingInt(c.Query("limit"), 20)
		page := parseListingInt(c.Query("pageNumber"), 1)
		searchTerm := c.Query("searchTerm")

		log.Printf(
			"[%s] hit limit=%d pageNumber=%d searchTerm=%q",
			route, pageSize, page, searchTerm,
		)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter := buildMediaSearchFilter(searchTerm)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("products").CountDocuments(ctx, filter)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(pageSize).
			SetSkip(pageSize * (page - 1))

		cursor, err := db.Collection("products").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		products, err := decodeMediaProducts(ctx, cursor)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d of %d products", route, len(products), count)
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"page":     page,
			"pages":    computePages(count, pageSize),
			"count":    count,
		})
	}
}

func decodeMediaProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.MediaProduct, error) {
	products := make([]models.MediaProduct, 0)

	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		products = append(products, NormalizeMediaDocument(raw))
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
