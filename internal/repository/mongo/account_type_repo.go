package mongo

import (
	"context"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountTypeRepository implements domain.AccountTypeRepository using MongoDB
type AccountTypeRepository struct {
	collection *mongo.Collection
}

// NewAccountTypeRepository creates a new AccountTypeRepository
func NewAccountTypeRepository(db *mongo.Database) *AccountTypeRepository {
	return &AccountTypeRepository{collection: db.Collection(accountTypesCollection)}
}

type accountTypeDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Code string             `bson:"code"`
}

// GetAll retrieves all account types
func (r *AccountTypeRepository) GetAll(ctx context.Context) ([]*domain.AccountType, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []*domain.AccountType
	for cursor.Next(ctx) {
		var doc accountTypeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		types = append(types, &domain.AccountType{
			ID:   doc.ID.Hex(),
			Name: doc.Name,
			Code: doc.Code,
		})
	}
	return types, cursor.Err()
}

// CreateMany inserts a batch of account types
func (r *AccountTypeRepository) CreateMany(ctx context.Context, types []*domain.AccountType) ([]*domain.AccountType, error) {
	if len(types) == 0 {
		return []*domain.AccountType{}, nil
	}

	docs := make([]interface{}, len(types))
	for i, t := range types {
		docs[i] = &accountTypeDoc{Name: t.Name, Code: t.Code}
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	created := make([]*domain.AccountType, len(types))
	for i, t := range types {
		created[i] = &domain.AccountType{
			ID:   result.InsertedIDs[i].(primitive.ObjectID).Hex(),
			Name: t.Name,
			Code: t.Code,
		}
	}
	return created, nil
}
