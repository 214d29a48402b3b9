package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product carries the fields the Google Shopping feed reads. The products
// collection holds documents in several historical shapes; the media picker
// works on raw documents instead (see handlers.NormalizeMediaDocument), so
// this struct only declares the current-schema fields.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name,omitempty" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ProductNo   string             `bson:"productNo,omitempty" json:"productNo,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price"`
	SalePrice   float64            `bson:"salePrice,omitempty" json:"salePrice"`
	MainImage   string             `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
}
