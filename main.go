package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
)

func main() {
	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(cfg.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureBlogPostIndexes(db); err != nil {
		log.Printf("blog post index warning: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestLogger())

	r.Static("/uploads", "./uploads")

	r.GET("/", handlers.Home())
	r.GET("/api/feed/google", handlers.GetGoogleFeed(db))
	r.GET("/share/blog/:slug", handlers.BlogShare(db, cfg))

	media := r.Group("/api/media")
	media.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		media.GET("/products", handlers.GetAllProductsForMedia(db))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found: " + c.Request.URL.Path})
	})

	r.Run(":" + cfg.Port)
}
