package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/expensemaster/expense_master_app/internal/core/ports"
)

const (
	companyCollection = "Company"
	userCollection    = "User"
)

// RepositoryProvider bundles the concrete repositories for injection into
// the service layer.
type RepositoryProvider struct {
	CompanyRepo ports.CompanyRepository
	UserRepo    ports.UserRepository
}

// NewRepositoryProvider wires the repositories against the given database.
// storeTimeout bounds every individual store call.
func NewRepositoryProvider(db *mongo.Database, storeTimeout time.Duration) *RepositoryProvider {
	return &RepositoryProvider{
		CompanyRepo: newMongoCompanyRepository(db.Collection(companyCollection), storeTimeout),
		UserRepo:    newMongoUserRepository(db.Collection(userCollection), storeTimeout),
	}
}

// EnsureIndexes creates the unique email indexes both collections rely on
// for duplicate detection. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection(companyCollection).Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("failed to create company email index: %w", err)
	}
	if _, err := db.Collection(userCollection).Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}
	return nil
}
