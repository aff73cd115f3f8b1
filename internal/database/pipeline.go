package database

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"solarcatalog/internal/catalog"
)

// activeFilter keeps documents that were not explicitly deactivated.
var activeFilter = bson.M{"$ne": false}

// idValues lists the stored forms of a key: the string itself and, for 24 hex
// digit ids, the ObjectID written by older imports.
func idValues(id string) bson.A {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.A{id, oid}
	}
	return bson.A{id}
}

func idMatch(id string) bson.M {
	return bson.M{"$in": idValues(id)}
}

func lookupOne(from, localField, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         from,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + as,
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func lookupMany(from, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   "_id",
		"foreignField": "productId",
		"as":           as,
	}}}
}

func categoryAndBrand() []bson.D {
	stages := lookupOne(categoriesCollection, "categoryId", "category")
	return append(stages, lookupOne(brandsCollection, "brandId", "brand")...)
}

// listJoins are attached to every product list row.
func listJoins() []bson.D {
	return []bson.D{
		lookupMany(imagesCollection, "images"),
		lookupMany(specificationsCollection, "specifications"),
		lookupMany(featuresCollection, "features"),
	}
}

func detailJoins() []bson.D {
	return append(listJoins(),
		lookupMany(certificationsCollection, "certifications"),
		lookupMany(applicationsCollection, "applications"),
		lookupMany(documentsCollection, "documents"),
		lookupMany(videosCollection, "videos"),
		reviewsLookup(),
	)
}

func reviewsLookup() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from": reviewsCollection,
		"let":  bson.M{"productId": "$_id"},
		"pipeline": bson.A{
			bson.M{"$match": bson.M{
				"$expr":    bson.M{"$eq": bson.A{"$productId", "$$productId"}},
				"approved": bson.M{"$ne": false},
			}},
			bson.M{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
		},
		"as": "reviews",
	}}}
}

// searchFilter matches query as a literal, case-insensitive substring.
func searchFilter(query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	fields := []string{"name", "shortDescription", "description", "model", "brand.name", "category.name"}

	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}
	return bson.M{"$or": or}
}

func productListPipeline(q catalog.ProductQuery) mongo.Pipeline {
	match := bson.M{"isActive": activeFilter}
	if q.Featured {
		match["featured"] = true
	}
	if q.Popular {
		match["popular"] = true
	}
	if q.InStock {
		match["inStock"] = true
	}

	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}
	pipeline = append(pipeline, categoryAndBrand()...)

	if q.Category != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"category.slug": q.Category}}})
	}
	if q.Search != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: searchFilter(q.Search)}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: 1},
	}}})
	if q.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: q.Limit}})
	}

	return append(pipeline, listJoins()...)
}

// productDetailPipeline loads one product by field ("_id" or "slug") with
// every joined collection.
func productDetailPipeline(field, value string) mongo.Pipeline {
	var cond interface{} = value
	if field == "_id" {
		cond = idMatch(value)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: cond, "isActive": activeFilter}}},
		{{Key: "$limit", Value: 1}},
	}
	pipeline = append(pipeline, categoryAndBrand()...)
	return append(pipeline, detailJoins()...)
}

func relatedPipeline(q catalog.RelatedQuery) mongo.Pipeline {
	or := bson.A{}
	if q.CategoryID != "" {
		or = append(or, bson.M{"categoryId": idMatch(q.CategoryID)})
	}
	if q.BrandID != "" {
		or = append(or, bson.M{"brandId": idMatch(q.BrandID)})
	}

	match := bson.M{
		"_id":      bson.M{"$nin": idValues(q.ProductID)},
		"isActive": activeFilter,
	}
	if len(or) > 0 {
		match["$or"] = or
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{
			{Key: "featured", Value: -1},
			{Key: "rating", Value: -1},
			{Key: "_id", Value: 1},
		}}},
	}
	if q.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: q.Limit}})
	}
	pipeline = append(pipeline, categoryAndBrand()...)
	return append(pipeline, lookupMany(imagesCollection, "images"))
}

// categoryPipeline adds productCount and the first four product ids to each
// category.
func categoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "sortOrder", Value: 1}, {Key: "name", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from": productsCollection,
			"let":  bson.M{"categoryId": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr":    bson.M{"$eq": bson.A{"$categoryId", "$$categoryId"}},
					"isActive": activeFilter,
				}},
				bson.M{"$sort": bson.D{{Key: "featured", Value: -1}, {Key: "rating", Value: -1}}},
				bson.M{"$project": bson.M{"_id": 1}},
			},
			"as": "products",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"productCount": bson.M{"$size": "$products"},
			"productIds":   bson.M{"$slice": bson.A{"$products._id", 4}},
		}}},
		{{Key: "$project", Value: bson.M{"products": 0}}},
	}
}

func averageRatingPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"isActive": activeFilter}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"averageRating": bson.M{"$avg": "$rating"},
		}}},
	}
}
