package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/propertyai/agent-platform/internal/infrastructure/db/mongo"
)

// ensureIndexes creates every collection index at startup.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewPropertyRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewDraftRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewLeadRepository(db).EnsureIndexes(ctx)
}
