package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"biketrak-api/models"
)

// MotorbikeStore is the listing store consumed by the catalog controller.
// Identifiers are ObjectID hex strings; a malformed identifier is a plain
// error, not ErrNotFound.
type MotorbikeStore interface {
	FindAll(ctx context.Context) ([]models.Motorbike, error)
	FindByID(ctx context.Context, id string) (*models.Motorbike, error)
	Create(ctx context.Context, bike *models.Motorbike) error
	Update(ctx context.Context, id string, patch *models.MotorbikePatch) (*models.Motorbike, error)
	Delete(ctx context.Context, id string) error
}

type MotorbikeRepository struct {
	collection *mongo.Collection
}

func NewMotorbikeRepository(db *mongo.Database) *MotorbikeRepository {
	return &MotorbikeRepository{collection: db.Collection("motorbikes")}
}

func (r *MotorbikeRepository) FindAll(ctx context.Context) ([]models.Motorbike, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bikes := []models.Motorbike{}
	if err := cursor.All(ctx, &bikes); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *MotorbikeRepository) FindByID(ctx context.Context, id string) (*models.Motorbike, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid motorbike id %q: %w", id, err)
	}

	var bike models.Motorbike
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&bike)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bike, nil
}

func (r *MotorbikeRepository) Create(ctx context.Context, bike *models.Motorbike) error {
	now := time.Now()
	bike.CreatedAt = now
	bike.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, bike)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		bike.ID = oid
	}
	return nil
}

func (r *MotorbikeRepository) Update(ctx context.Context, id string, patch *models.MotorbikePatch) (*models.Motorbike, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid motorbike id %q: %w", id, err)
	}

	set := bson.M{"updated_at": time.Now()}
	unset := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Brand != nil {
		set["brand"] = *patch.Brand
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.CC != nil {
		set["cc"] = *patch.CC
	} else if patch.ClearCC {
		unset["cc"] = ""
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	} else if patch.ClearPrice {
		unset["price"] = ""
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var bike models.Motorbike
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&bike)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bike, nil
}

func (r *MotorbikeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid motorbike id %q: %w", id, err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
