package referenceRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/sud2610/set-u-free-sub000/database"
	"github.com/sud2610/set-u-free-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReferenceRepo implements ReferenceRepository over the cities and
// categories collections.
type MongoReferenceRepo struct {
	cities     *mongo.Collection
	categories *mongo.Collection
}

// NewMongoReferenceRepo creates a new instance of ReferenceRepository using MongoDB.
func NewMongoReferenceRepo() ReferenceRepository {
	return &MongoReferenceRepo{
		cities:     database.DB().Collection("cities"),
		categories: database.DB().Collection("categories"),
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAllCities returns the city reference list, name-ordered.
func (r *MongoReferenceRepo) GetAllCities() ([]models.City, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.cities.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cities: %w", err)
	}
	defer cursor.Close(ctx)

	var cities []models.City
	if err := cursor.All(ctx, &cities); err != nil {
		return nil, fmt.Errorf("failed to decode cities: %w", err)
	}
	return cities, nil
}

// GetAllCategories returns the category reference list, name-ordered.
func (r *MongoReferenceRepo) GetAllCategories() ([]models.Category, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// CreateCity inserts a city reference row.
func (r *MongoReferenceRepo) CreateCity(c *models.City) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	c.CreatedAt = time.Now()
	if _, err := r.cities.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create city: %w", err)
	}
	return nil
}

// CreateCategory inserts a category reference row.
func (r *MongoReferenceRepo) CreateCategory(c *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	c.CreatedAt = time.Now()
	if _, err := r.categories.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// DeleteCity removes a city reference row by its ID.
func (r *MongoReferenceRepo) DeleteCity(id string) error {
	return r.deleteByID(r.cities, id)
}

// DeleteCategory removes a category reference row by its ID.
func (r *MongoReferenceRepo) DeleteCategory(id string) error {
	return r.deleteByID(r.categories, id)
}

func (r *MongoReferenceRepo) deleteByID(coll *mongo.Collection, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reference row with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
