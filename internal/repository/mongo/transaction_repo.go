package mongo

import (
	"context"
	"regexp"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository implements domain.TransactionRepository using MongoDB
type TransactionRepository struct {
	collection *mongo.Collection
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{collection: db.Collection(transactionsCollection)}
}

type transactionDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Type        string               `bson:"type"`
	AccountID   primitive.ObjectID   `bson:"accountId"`
	ToAccountID *primitive.ObjectID  `bson:"toAccountId,omitempty"`
	CategoryID  *primitive.ObjectID  `bson:"categoryId,omitempty"`
	Description *string              `bson:"description,omitempty"`
	Tags        []string             `bson:"tags,omitempty"`
	Date        time.Time            `bson:"date"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

func transactionToDoc(t *domain.Transaction) (*transactionDoc, error) {
	amount, err := decimalToD128(t.Amount)
	if err != nil {
		return nil, err
	}
	accountID, err := oidFromHex(t.AccountID, domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}
	toAccountID, err := oidPtrFromHex(t.ToAccountID, domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}
	categoryID, err := oidPtrFromHex(t.CategoryID, domain.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}
	return &transactionDoc{
		Amount:      amount,
		Type:        string(t.Type),
		AccountID:   accountID,
		ToAccountID: toAccountID,
		CategoryID:  categoryID,
		Description: t.Description,
		Tags:        t.Tags,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}, nil
}

func transactionToDomain(doc *transactionDoc) (*domain.Transaction, error) {
	amount, err := d128ToDecimal(doc.Amount)
	if err != nil {
		return nil, err
	}
	return &domain.Transaction{
		ID:          doc.ID.Hex(),
		Amount:      amount,
		Type:        domain.TransactionType(doc.Type),
		AccountID:   doc.AccountID.Hex(),
		ToAccountID: hexPtr(doc.ToAccountID),
		CategoryID:  hexPtr(doc.CategoryID),
		Description: doc.Description,
		Tags:        doc.Tags,
		Date:        doc.Date,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

// Create inserts a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	doc, err := transactionToDoc(transaction)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return transactionToDomain(doc)
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	oid, err := oidFromHex(id, domain.ErrTransactionNotFound)
	if err != nil {
		return nil, err
	}

	var doc transactionDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transactionToDomain(&doc)
}

// Update replaces a transaction's mutable fields
func (r *TransactionRepository) Update(ctx context.Context, id string, data *domain.UpdateTransactionData) (*domain.Transaction, error) {
	oid, err := oidFromHex(id, domain.ErrTransactionNotFound)
	if err != nil {
		return nil, err
	}

	amount, err := decimalToD128(data.Amount)
	if err != nil {
		return nil, err
	}
	accountID, err := oidFromHex(data.AccountID, domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}
	toAccountID, err := oidPtrFromHex(data.ToAccountID, domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}
	categoryID, err := oidPtrFromHex(data.CategoryID, domain.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"amount":      amount,
		"type":        string(data.Type),
		"accountId":   accountID,
		"description": data.Description,
		"tags":        data.Tags,
		"date":        data.Date,
		"updatedAt":   time.Now().UTC(),
	}
	unset := bson.M{}
	if toAccountID != nil {
		set["toAccountId"] = *toAccountID
	} else {
		unset["toAccountId"] = ""
	}
	if categoryID != nil {
		set["categoryId"] = *categoryID
	} else {
		unset["categoryId"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, optionsReturnAfter())

	var doc transactionDoc
	if err := result.Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transactionToDomain(&doc)
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	oid, err := oidFromHex(id, domain.ErrTransactionNotFound)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// buildFilter translates domain transaction filters into a Mongo query.
func buildFilter(filters *domain.TransactionFilters) (bson.M, error) {
	query := bson.M{}
	if filters == nil {
		return query, nil
	}

	if filters.Search != nil && *filters.Search != "" {
		query["description"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(*filters.Search),
			Options: "i",
		}}
	}
	if filters.Type != nil {
		query["type"] = string(*filters.Type)
	}
	if filters.CategoryID != nil {
		oid, err := oidFromHex(*filters.CategoryID, domain.ErrCategoryNotFound)
		if err != nil {
			return nil, err
		}
		query["categoryId"] = oid
	}
	if filters.AccountID != nil {
		oid, err := oidFromHex(*filters.AccountID, domain.ErrAccountNotFound)
		if err != nil {
			return nil, err
		}
		query["$or"] = bson.A{
			bson.M{"accountId": oid},
			bson.M{"toAccountId": oid},
		}
	}
	if filters.StartDate != nil || filters.EndDate != nil {
		dateRange := bson.M{}
		if filters.StartDate != nil {
			dateRange["$gte"] = *filters.StartDate
		}
		if filters.EndDate != nil {
			dateRange["$lte"] = *filters.EndDate
		}
		query["date"] = dateRange
	}
	return query, nil
}

// Find retrieves transactions matching the filters, newest first. When a
// page is requested the result is windowed and carries totals; otherwise
// every match is returned.
func (r *TransactionRepository) Find(ctx context.Context, filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	query, err := buildFilter(filters)
	if err != nil {
		return nil, err
	}

	totalItems, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	page := int32(0)
	pageSize := int32(domain.DefaultPageSize)
	if filters != nil && filters.Page > 0 {
		page = filters.Page
		if filters.PageSize > 0 {
			pageSize = filters.PageSize
			if pageSize > domain.MaxPageSize {
				pageSize = domain.MaxPageSize
			}
		}
		findOptions.SetSkip(int64(page-1) * int64(pageSize)).SetLimit(int64(pageSize))
	}

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	transactions := []*domain.Transaction{}
	for cursor.Next(ctx) {
		var doc transactionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		t, err := transactionToDomain(&doc)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	result := &domain.PaginatedTransactions{
		Data:       transactions,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
	}
	if page > 0 {
		result.TotalPages = int32(totalItems / int64(pageSize))
		if totalItems%int64(pageSize) > 0 {
			result.TotalPages++
		}
	} else {
		// Unpaged listing: everything in one window.
		result.Page = 1
		result.PageSize = int32(len(transactions))
		result.TotalPages = 1
	}
	return result, nil
}

// SumExpenses aggregates the total expense amount matching the filter.
func (r *TransactionRepository) SumExpenses(ctx context.Context, filter *domain.ExpenseSumFilter) (decimal.Decimal, error) {
	match := bson.M{
		"type": string(domain.TransactionTypeExpense),
		"date": bson.M{"$gte": filter.StartDate, "$lte": filter.EndDate},
	}
	if filter.CategoryID != nil {
		oid, err := oidFromHex(*filter.CategoryID, domain.ErrCategoryNotFound)
		if err != nil {
			return decimal.Zero, err
		}
		match["categoryId"] = oid
	}
	if filter.AccountID != nil {
		oid, err := oidFromHex(*filter.AccountID, domain.ErrAccountNotFound)
		if err != nil {
			return decimal.Zero, err
		}
		match["accountId"] = oid
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return decimal.Zero, err
	}
	defer cursor.Close(ctx)

	var row struct {
		Total primitive.Decimal128 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&row); err != nil {
			return decimal.Zero, err
		}
		return d128ToDecimal(row.Total)
	}
	if err := cursor.Err(); err != nil {
		return decimal.Zero, err
	}
	return decimal.Zero, nil
}
