package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPost struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Slug            string             `bson:"slug" json:"slug"`
	Title           string             `bson:"title,omitempty" json:"title"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	MetaDescription string             `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Author          string             `bson:"author,omitempty" json:"author,omitempty"`
	Tags            StringList         `bson:"tags,omitempty" json:"tags,omitempty"`
	MainImage       string             `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
