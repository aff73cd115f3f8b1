package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"solarcatalog/internal/catalog"
)

func stageNames(p mongo.Pipeline) []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		names = append(names, stage[0].Key)
	}
	return names
}

func lookupTargets(p mongo.Pipeline) []string {
	var from []string
	for _, stage := range p {
		if stage[0].Key != "$lookup" {
			continue
		}
		from = append(from, stage[0].Value.(bson.M)["from"].(string))
	}
	return from
}

func TestProductListPipelineFlags(t *testing.T) {
	p := productListPipeline(catalog.ProductQuery{Featured: true, InStock: true})

	match := p[0][0].Value.(bson.M)
	assert.Equal(t, true, match["featured"])
	assert.Equal(t, true, match["inStock"])
	assert.NotContains(t, match, "popular")
	assert.NotContains(t, stageNames(p), "$limit")
}

func TestProductListPipelineCategoryMatchesAfterLookup(t *testing.T) {
	p := productListPipeline(catalog.ProductQuery{Category: "inverters", Limit: 10})
	names := stageNames(p)

	categoryMatch := -1
	for i, stage := range p {
		if stage[0].Key == "$match" {
			if m := stage[0].Value.(bson.M); m["category.slug"] == "inverters" {
				categoryMatch = i
			}
		}
	}
	require.NotEqual(t, -1, categoryMatch)
	assert.Greater(t, categoryMatch, 2, "category slug is only known after the join")
	assert.Contains(t, names, "$limit")
	assert.Equal(t, []string{
		categoriesCollection, brandsCollection,
		imagesCollection, specificationsCollection, featuresCollection,
	}, lookupTargets(p))
}

func TestSearchFilterEscapesInput(t *testing.T) {
	filter := searchFilter("5kW (hybrid)+")

	or := filter["$or"].(bson.A)
	require.NotEmpty(t, or)
	for _, clause := range or {
		for _, v := range clause.(bson.M) {
			re := v.(primitive.Regex)
			assert.Equal(t, `5kW \(hybrid\)\+`, re.Pattern)
			assert.Equal(t, "i", re.Options)
		}
	}
}

func TestProductDetailPipelineJoinsEverything(t *testing.T) {
	p := productDetailPipeline("slug", "sunpower-x22")

	match := p[0][0].Value.(bson.M)
	assert.Equal(t, "sunpower-x22", match["slug"])
	assert.ElementsMatch(t, []string{
		categoriesCollection, brandsCollection,
		imagesCollection, specificationsCollection, featuresCollection,
		certificationsCollection, applicationsCollection, documentsCollection,
		videosCollection, reviewsCollection,
	}, lookupTargets(p))
}

func TestRelatedPipeline(t *testing.T) {
	p := relatedPipeline(catalog.RelatedQuery{ProductID: "p1", CategoryID: "c1", Limit: 3})

	match := p[0][0].Value.(bson.M)
	assert.Equal(t, bson.M{"$nin": bson.A{"p1"}}, match["_id"])
	assert.Equal(t, bson.A{bson.M{"categoryId": bson.M{"$in": bson.A{"c1"}}}}, match["$or"])
	assert.Contains(t, p, bson.D{{Key: "$limit", Value: int64(3)}})
}

func TestCategoryPipelineCountsProducts(t *testing.T) {
	p := categoryPipeline()

	assert.Equal(t, []string{"$sort", "$lookup", "$addFields", "$project"}, stageNames(p))
	fields := p[2][0].Value.(bson.M)
	assert.Equal(t, bson.M{"$size": "$products"}, fields["productCount"])
}

func TestCatalogIndexesCoverJoinedCollections(t *testing.T) {
	byCollection := map[string]int{}
	for _, idx := range catalogIndexes() {
		byCollection[idx.collection]++
	}

	for _, c := range []string{imagesCollection, reviewsCollection, documentsCollection} {
		assert.Equal(t, 1, byCollection[c], c)
	}
	assert.Equal(t, 3, byCollection[productsCollection])
}

func TestPipelinesMatchObjectIDKeys(t *testing.T) {
	oid := primitive.NewObjectID()
	hexID := oid.Hex()

	detail := productDetailPipeline("_id", hexID)
	assert.Equal(t, bson.M{"$in": bson.A{hexID, oid}}, detail[0][0].Value.(bson.M)["_id"])

	related := relatedPipeline(catalog.RelatedQuery{ProductID: hexID, CategoryID: hexID, BrandID: "brand-sma"})
	match := related[0][0].Value.(bson.M)
	assert.Equal(t, bson.M{"$nin": bson.A{hexID, oid}}, match["_id"])
	assert.Equal(t, bson.A{
		bson.M{"categoryId": bson.M{"$in": bson.A{hexID, oid}}},
		bson.M{"brandId": bson.M{"$in": bson.A{"brand-sma"}}},
	}, match["$or"])

	slug := productDetailPipeline("slug", hexID)
	assert.Equal(t, hexID, slug[0][0].Value.(bson.M)["slug"])
}
