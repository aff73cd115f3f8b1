package database

import (
	"context"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"solarcatalog/internal/models"
)

// normalizeProductDocument coerces legacy field shapes (ObjectID keys, string
// flags, string or integer ratings) before decoding into a ProductRecord.
func normalizeProductDocument(raw bson.M) (models.ProductRecord, error) {
	for _, key := range []string{"_id", "categoryId", "brandId"} {
		if oid, ok := raw[key].(primitive.ObjectID); ok {
			raw[key] = oid.Hex()
		}
	}
	if cat, ok := raw["category"].(bson.M); ok {
		if oid, ok := cat["_id"].(primitive.ObjectID); ok {
			cat["_id"] = oid.Hex()
		}
	}
	if brand, ok := raw["brand"].(bson.M); ok {
		if oid, ok := brand["_id"].(primitive.ObjectID); ok {
			brand["_id"] = oid.Hex()
		}
	}

	for _, key := range []string{"popular", "featured", "inStock"} {
		raw[key] = coerceBool(raw[key])
	}

	raw["rating"] = coerceFloat(raw["rating"])
	raw["reviewCount"] = int(coerceFloat(raw["reviewCount"]))

	if reviews, ok := raw["reviews"].(bson.A); ok {
		for _, r := range reviews {
			review, ok := r.(bson.M)
			if !ok {
				continue
			}
			if oid, ok := review["_id"].(primitive.ObjectID); ok {
				review["_id"] = oid.Hex()
			}
			review["rating"] = coerceFloat(review["rating"])
		}
	}

	data, err := bson.Marshal(raw)
	if err != nil {
		return models.ProductRecord{}, err
	}

	var p models.ProductRecord
	if err := bson.Unmarshal(data, &p); err != nil {
		return models.ProductRecord{}, err
	}

	return p, nil
}

func coerceBool(val interface{}) bool {
	switch typed := val.(type) {
	case bool:
		return typed
	case string:
		return strings.EqualFold(strings.TrimSpace(typed), "true")
	case int32:
		return typed != 0
	case int64:
		return typed != 0
	case float64:
		return typed != 0
	default:
		return false
	}
}

func coerceFloat(val interface{}) float64 {
	switch typed := val.(type) {
	case float64:
		return typed
	case int32:
		return float64(typed)
	case int64:
		return float64(typed)
	case int:
		return float64(typed)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.ProductRecord, error) {
	products := make([]models.ProductRecord, 0)

	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}

		product, err := normalizeProductDocument(raw)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
