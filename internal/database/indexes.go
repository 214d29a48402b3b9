package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	}

	// The Google feed filters on status; the media picker sorts on createdAt.
	statusIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("status_index"),
	}

	log.Println("EnsureProductIndexes: creating createdAt_desc index")
	if _, err := indexes.CreateOne(ctx, createdAtIndex); err != nil {
		log.Println("EnsureProductIndexes: createdAt index error:", err)
		return err
	}

	log.Println("EnsureProductIndexes: creating status_index index")
	if _, err := indexes.CreateOne(ctx, statusIndex); err != nil {
		log.Println("EnsureProductIndexes: status index error:", err)
		return err
	}

	return nil
}

func EnsureBlogPostIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("blogposts").Indexes()

	slugIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().
			SetName("slug_unique").
			SetUnique(true),
	}

	log.Println("EnsureBlogPostIndexes: creating slug_unique index")
	if _, err := indexes.CreateOne(ctx, slugIndex); err != nil {
		log.Println("EnsureBlogPostIndexes: slug index error:", err)
		return err
	}

	return nil
}
