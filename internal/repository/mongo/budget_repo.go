package mongo

import (
	"context"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BudgetRepository implements domain.BudgetRepository using MongoDB
type BudgetRepository struct {
	collection *mongo.Collection
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(db *mongo.Database) *BudgetRepository {
	return &BudgetRepository{collection: db.Collection(budgetsCollection)}
}

type budgetDoc struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Name       string               `bson:"name"`
	Limit      primitive.Decimal128 `bson:"limit"`
	Period     string               `bson:"period"`
	StartDate  *time.Time           `bson:"startDate,omitempty"`
	EndDate    *time.Time           `bson:"endDate,omitempty"`
	CategoryID *primitive.ObjectID  `bson:"categoryId,omitempty"`
	AccountID  *primitive.ObjectID  `bson:"accountId,omitempty"`
	Color      string               `bson:"color"`
	Icon       string               `bson:"icon"`
	CreatedAt  time.Time            `bson:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt"`
}

func budgetToDoc(budget *domain.Budget) (*budgetDoc, error) {
	limit, err := decimalToD128(budget.Limit)
	if err != nil {
		return nil, err
	}
	categoryID, err := oidPtrFromHex(budget.CategoryID, domain.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}
	accountID, err := oidPtrFromHex(budget.AccountID, domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}
	return &budgetDoc{
		Name:       budget.Name,
		Limit:      limit,
		Period:     string(budget.Period),
		StartDate:  budget.StartDate,
		EndDate:    budget.EndDate,
		CategoryID: categoryID,
		AccountID:  accountID,
		Color:      budget.Color,
		Icon:       budget.Icon,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}, nil
}

func budgetToDomain(doc *budgetDoc) (*domain.Budget, error) {
	limit, err := d128ToDecimal(doc.Limit)
	if err != nil {
		return nil, err
	}
	return &domain.Budget{
		ID:         doc.ID.Hex(),
		Name:       doc.Name,
		Limit:      limit,
		Period:     domain.BudgetPeriod(doc.Period),
		StartDate:  doc.StartDate,
		EndDate:    doc.EndDate,
		CategoryID: hexPtr(doc.CategoryID),
		AccountID:  hexPtr(doc.AccountID),
		Color:      doc.Color,
		Icon:       doc.Icon,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}

// Create inserts a new budget
func (r *BudgetRepository) Create(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	now := time.Now().UTC()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	doc, err := budgetToDoc(budget)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return budgetToDomain(doc)
}

// CreateMany inserts a batch of budgets
func (r *BudgetRepository) CreateMany(ctx context.Context, budgets []*domain.Budget) ([]*domain.Budget, error) {
	created := make([]*domain.Budget, 0, len(budgets))
	for _, budget := range budgets {
		doc, err := r.Create(ctx, budget)
		if err != nil {
			return nil, err
		}
		created = append(created, doc)
	}
	return created, nil
}

// GetByID retrieves a budget by its ID
func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*domain.Budget, error) {
	oid, err := oidFromHex(id, domain.ErrBudgetNotFound)
	if err != nil {
		return nil, err
	}

	var doc budgetDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budgetToDomain(&doc)
}

// GetAll retrieves all budgets in creation order
func (r *BudgetRepository) GetAll(ctx context.Context) ([]*domain.Budget, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, optionsFindSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var budgets []*domain.Budget
	for cursor.Next(ctx) {
		var doc budgetDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		budget, err := budgetToDomain(&doc)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, cursor.Err()
}

// Update replaces a budget's fields
func (r *BudgetRepository) Update(ctx context.Context, id string, budget *domain.Budget) (*domain.Budget, error) {
	oid, err := oidFromHex(id, domain.ErrBudgetNotFound)
	if err != nil {
		return nil, err
	}

	budget.UpdatedAt = time.Now().UTC()
	doc, err := budgetToDoc(budget)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"name":      doc.Name,
		"limit":     doc.Limit,
		"period":    doc.Period,
		"color":     doc.Color,
		"icon":      doc.Icon,
		"updatedAt": doc.UpdatedAt,
	}
	unset := bson.M{}
	for field, value := range map[string]interface{}{
		"startDate":  doc.StartDate,
		"endDate":    doc.EndDate,
		"categoryId": doc.CategoryID,
		"accountId":  doc.AccountID,
	} {
		switch v := value.(type) {
		case *time.Time:
			if v != nil {
				set[field] = *v
			} else {
				unset[field] = ""
			}
		case *primitive.ObjectID:
			if v != nil {
				set[field] = *v
			} else {
				unset[field] = ""
			}
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, optionsReturnAfter())

	var updated budgetDoc
	if err := result.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budgetToDomain(&updated)
}

// Delete removes a budget
func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	oid, err := oidFromHex(id, domain.ErrBudgetNotFound)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}
