package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Motorbike struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Brand       string             `json:"brand" bson:"brand"`
	CC          *int               `json:"cc,omitempty" bson:"cc,omitempty"`
	Price       *float64           `json:"price,omitempty" bson:"price,omitempty"`
	Description string             `json:"description" bson:"description"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// MotorbikePatch is a partial update. A nil pointer means the field was not in
// the request and keeps its stored value; ClearCC/ClearPrice distinguish an
// explicit clear from an omitted field.
type MotorbikePatch struct {
	Name        *string
	Brand       *string
	Description *string
	CC          *int
	ClearCC     bool
	Price       *float64
	ClearPrice  bool
	ImageURL    *string
}
