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

// MongoCompanyRepository persists company aggregates in the Company
// collection. All embedded-array mutations put the element identifier in
// the filter and use the positional operator in the update, so the store
// rewrites only the matched element and concurrent sibling updates never
// lose writes.
type MongoCompanyRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func newMongoCompanyRepository(coll *mongo.Collection, timeout time.Duration) ports.CompanyRepository {
	return &MongoCompanyRepository{coll: coll, timeout: timeout}
}

var _ ports.CompanyRepository = (*MongoCompanyRepository)(nil)

// opCtx bounds a single store call with the configured timeout.
func (r *MongoCompanyRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Helper to convert domain.Company to models.Company (without _id).
func toModelCompany(d domain.Company) models.Company {
	m := models.Company{
		Name:         d.Name,
		Email:        d.Email,
		BalanceSheet: make([]models.BalanceEntry, len(d.BalanceSheet)),
		Ledger:       make(map[string]models.LedgerEntry, len(d.Ledger)),
		Events:       make([]models.Event, len(d.Events)),
		Budgets:      make([]models.Budget, len(d.Budgets)),
		CreatedAt:    d.CreatedAt,
	}
	for i, e := range d.BalanceSheet {
		m.BalanceSheet[i] = models.BalanceEntry(e)
	}
	for k, e := range d.Ledger {
		m.Ledger[k] = models.LedgerEntry(e)
	}
	for i, e := range d.Events {
		m.Events[i] = toModelEvent(e)
	}
	for i, b := range d.Budgets {
		m.Budgets[i] = models.Budget(b)
	}
	return m
}

func toModelEvent(e domain.Event) models.Event {
	return models.Event{
		EventID:        e.EventID,
		Title:          e.Title,
		Start:          e.Start,
		End:            e.End,
		LastNotifiedOn: e.LastNotifiedOn,
	}
}

// Helper to convert models.Company to domain.Company.
func toDomainCompany(m models.Company) domain.Company {
	d := domain.Company{
		CompanyID:    m.ID.Hex(),
		Name:         m.Name,
		Email:        m.Email,
		BalanceSheet: make([]domain.BalanceEntry, len(m.BalanceSheet)),
		Ledger:       make(map[string]domain.LedgerEntry, len(m.Ledger)),
		Events:       make([]domain.Event, len(m.Events)),
		Budgets:      make([]domain.Budget, len(m.Budgets)),
		CreatedAt:    m.CreatedAt,
	}
	for i, e := range m.BalanceSheet {
		d.BalanceSheet[i] = domain.BalanceEntry(e)
	}
	for k, e := range m.Ledger {
		d.Ledger[k] = domain.LedgerEntry(e)
	}
	for i, e := range m.Events {
		d.Events[i] = domain.Event{
			EventID:        e.EventID,
			Title:          e.Title,
			Start:          e.Start,
			End:            e.End,
			LastNotifiedOn: e.LastNotifiedOn,
		}
	}
	for i, b := range m.Budgets {
		d.Budgets[i] = domain.Budget(b)
	}
	return d
}

func (r *MongoCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (string, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	model := toModelCompany(company)
	res, err := r.coll.InsertOne(ctx, model)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.ErrDuplicate
		}
		return "", fmt.Errorf("failed to insert company: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoCompanyRepository) findOne(ctx context.Context, filter bson.M) (*domain.Company, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var model models.Company
	err := r.coll.FindOne(ctx, filter).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	company := toDomainCompany(model)
	return &company, nil
}

func (r *MongoCompanyRepository) FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoCompanyRepository) FindCompanies(ctx context.Context) ([]domain.Company, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	var modelCompanies []models.Company
	if err := cursor.All(ctx, &modelCompanies); err != nil {
		return nil, fmt.Errorf("failed to decode companies: %w", err)
	}

	companies := make([]domain.Company, len(modelCompanies))
	for i, m := range modelCompanies {
		companies[i] = toDomainCompany(m)
	}
	return companies, nil
}

func (r *MongoCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	oid, err := bson.ObjectIDFromHex(companyID)
	if err != nil {
		// A malformed identifier cannot match any document.
		return apperrors.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", companyID, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) SetFinancials(ctx context.Context, email string, dateKey string, entry domain.LedgerEntry, balance []domain.BalanceEntry) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	modelBalance := make([]models.BalanceEntry, len(balance))
	for i, b := range balance {
		modelBalance[i] = models.BalanceEntry(b)
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"ledger." + dateKey: models.LedgerEntry(entry),
			"balanceSheet":      modelBalance,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to set financials for %s: %w", email, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) UpdateLedgerEntry(ctx context.Context, companyID string, dateKey string, entry domain.LedgerEntry) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	oid, err := bson.ObjectIDFromHex(companyID)
	if err != nil {
		return apperrors.ErrNotFound
	}

	// Update-only: the filter requires the dated entry to already exist,
	// so this path never creates new dates.
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "ledger." + dateKey: bson.M{"$exists": true}},
		bson.M{"$set": bson.M{"ledger." + dateKey: models.LedgerEntry(entry)}},
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %s/%s: %w", companyID, dateKey, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) AppendEvent(ctx context.Context, email string, event domain.Event) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"events": toModelEvent(event)}},
	)
	if err != nil {
		return fmt.Errorf("failed to append event for %s: %w", email, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) UpdateEvent(ctx context.Context, email string, event domain.Event) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email, "events.eventId": event.EventID},
		bson.M{"$set": bson.M{
			"events.$.title": event.Title,
			"events.$.start": event.Start,
			"events.$.end":   event.End,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s for %s: %w", event.EventID, email, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) RemoveEvent(ctx context.Context, email string, eventID string) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	// The event id is part of the filter, so a repeat delete matches
	// nothing and reports not found without touching sibling elements.
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email, "events.eventId": eventID},
		bson.M{"$pull": bson.M{"events": bson.M{"eventId": eventID}}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove event %s for %s: %w", eventID, email, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) AppendBudget(ctx context.Context, email string, budget domain.Budget) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"budgets": models.Budget(budget)}},
	)
	if err != nil {
		return fmt.Errorf("failed to append budget for %s: %w", email, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) UpdateBudget(ctx context.Context, email string, budget domain.Budget) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email, "budgets.budgetId": budget.BudgetID},
		bson.M{"$set": bson.M{
			"budgets.$.department":         budget.Department,
			"budgets.$.projectName":        budget.ProjectName,
			"budgets.$.budgetAmount":       budget.BudgetAmount,
			"budgets.$.currentExpenditure": budget.CurrentExpenditure,
			"budgets.$.alertThreshold":     budget.AlertThreshold,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %s for %s: %w", budget.BudgetID, email, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) RemoveBudget(ctx context.Context, email string, budgetID string) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email, "budgets.budgetId": budgetID},
		bson.M{"$pull": bson.M{"budgets": bson.M{"budgetId": budgetID}}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove budget %s for %s: %w", budgetID, email, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) ClaimEventNotification(ctx context.Context, companyID string, eventID string, dateKey string) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	oid, err := bson.ObjectIDFromHex(companyID)
	if err != nil {
		return false, apperrors.ErrNotFound
	}

	// The filter requires the stamp to not already be dateKey, so exactly
	// one caller across all instances wins the claim for a given day.
	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"_id": oid,
			"events": bson.M{"$elemMatch": bson.M{
				"eventId":        eventID,
				"lastNotifiedOn": bson.M{"$ne": dateKey},
			}},
		},
		bson.M{"$set": bson.M{"events.$.lastNotifiedOn": dateKey}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim notification for event %s: %w", eventID, err)
	}
	return res.ModifiedCount == 1, nil
}
