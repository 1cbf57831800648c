package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/expensemaster/expense_master_app/internal/apperrors"
	"github.com/expensemaster/expense_master_app/internal/core/domain"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/models"
)

// MongoUserRepository persists users in the User collection.
type MongoUserRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func newMongoUserRepository(coll *mongo.Collection, timeout time.Duration) ports.UserRepository {
	return &MongoUserRepository{coll: coll, timeout: timeout}
}

var _ ports.UserRepository = (*MongoUserRepository)(nil)

// opCtx bounds a single store call with the configured timeout.
func (r *MongoUserRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func toModelUser(d domain.User) models.User {
	m := models.User{
		Name:      d.Name,
		Email:     d.Email,
		Role:      string(d.Role),
		CreatedAt: d.CreatedAt,
	}
	if d.JoinRequest != nil {
		m.JoinRequest = &models.JoinRequest{
			CompanyName: d.JoinRequest.CompanyName,
			Status:      string(d.JoinRequest.Status),
		}
	}
	return m
}

func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:    m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Role:      domain.Role(m.Role),
		CreatedAt: m.CreatedAt,
	}
	if m.JoinRequest != nil {
		d.JoinRequest = &domain.JoinRequest{
			CompanyName: m.JoinRequest.CompanyName,
			Status:      domain.JoinStatus(m.JoinRequest.Status),
		}
	}
	return d
}

func toDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = toDomainUser(m)
	}
	return ds
}

func (r *MongoUserRepository) SaveUser(ctx context.Context, user domain.User) (string, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toModelUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.ErrDuplicate
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var model models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}
	user := toDomainUser(model)
	return &user, nil
}

func (r *MongoUserRepository) findMany(ctx context.Context, filter bson.M) ([]domain.User, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var modelUsers []models.User
	if err := cursor.All(ctx, &modelUsers); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return toDomainUserSlice(modelUsers), nil
}

func (r *MongoUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoUserRepository) FindUsersByCompanyName(ctx context.Context, companyName string) ([]domain.User, error) {
	return r.findMany(ctx, bson.M{"joinRequest.companyName": companyName})
}

func (r *MongoUserRepository) SetJoinRequest(ctx context.Context, email string, request domain.JoinRequest) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"joinRequest": models.JoinRequest{
			CompanyName: request.CompanyName,
			Status:      string(request.Status),
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to set join request for %s: %w", email, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) SetJoinStatus(ctx context.Context, userID string, status domain.JoinStatus) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}

	// Only users with an outstanding join request can change state.
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "joinRequest": bson.M{"$exists": true}},
		bson.M{"$set": bson.M{"joinRequest.status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("failed to set join status for %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) SetRole(ctx context.Context, userID string, role domain.Role) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": string(role)}},
	)
	if err != nil {
		return fmt.Errorf("failed to set role for %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, userID string) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
