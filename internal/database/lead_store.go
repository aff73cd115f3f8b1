package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"solarcatalog/internal/models"
)

type LeadStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewLeadStore(db *mongo.Database) *LeadStore {
	return &LeadStore{collection: db.Collection(leadsCollection), timeout: defaultTimeout}
}

func (s *LeadStore) InsertLead(ctx context.Context, lead models.Lead) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}
