package database

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

func catalogIndexes() []collectionIndex {
	indexes := []collectionIndex{
		{productsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("slug_unique").SetUnique(true),
		}},
		{productsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "categoryId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("category_created"),
		}},
		{productsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "brandId", Value: 1}},
			Options: options.Index().SetName("brand_index"),
		}},
		{categoriesCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("slug_unique").SetUnique(true),
		}},
		{brandsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_unique").SetUnique(true),
		}},
		{leadsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_index"),
		}},
		{adminsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		}},
	}

	for _, joined := range []string{
		imagesCollection,
		specificationsCollection,
		featuresCollection,
		certificationsCollection,
		applicationsCollection,
		documentsCollection,
		videosCollection,
		reviewsCollection,
	} {
		indexes = append(indexes, collectionIndex{joined, mongo.IndexModel{
			Keys:    bson.D{{Key: "productId", Value: 1}},
			Options: options.Index().SetName("productId_index"),
		}})
	}

	return indexes
}

// EnsureCatalogIndexes creates the indexes used by the catalog queries. It
// keeps going after a failure and returns the first error.
func EnsureCatalogIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var firstErr error
	for _, idx := range catalogIndexes() {
		name := ""
		if idx.model.Options != nil && idx.model.Options.Name != nil {
			name = *idx.model.Options.Name
		}

		log.Printf("EnsureCatalogIndexes: creating %s.%s", idx.collection, name)
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			log.Println("EnsureCatalogIndexes: index error:", idx.collection, name, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("index %s.%s: %w", idx.collection, name, err)
			}
		}
	}
	return firstErr
}
