package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"solarcatalog/internal/models"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewAdminStore(db *mongo.Database) *AdminStore {
	return &AdminStore{collection: db.Collection(adminsCollection), timeout: defaultTimeout}
}

// AdminByEmail returns the active admin with the given email.
func (s *AdminStore) AdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var admin models.Admin
	err := s.collection.FindOne(ctx, bson.M{
		"email":    strings.ToLower(strings.TrimSpace(email)),
		"isActive": true,
	}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Admin{}, ErrAdminNotFound
	}
	if err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}
