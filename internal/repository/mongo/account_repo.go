package mongo

import (
	"context"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRepository implements domain.AccountRepository using MongoDB
type AccountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{collection: db.Collection(accountsCollection)}
}

type accountDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Balance   primitive.Decimal128 `bson:"balance"`
	Color     string               `bson:"color"`
	IsLocked  bool                 `bson:"isLocked"`
	Type      string               `bson:"type"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

func accountToDoc(account *domain.Account) (*accountDoc, error) {
	balance, err := decimalToD128(account.Balance)
	if err != nil {
		return nil, err
	}
	return &accountDoc{
		Name:      account.Name,
		Balance:   balance,
		Color:     account.Color,
		IsLocked:  account.IsLocked,
		Type:      string(account.Type),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}, nil
}

func accountToDomain(doc *accountDoc) (*domain.Account, error) {
	balance, err := d128ToDecimal(doc.Balance)
	if err != nil {
		return nil, err
	}
	return &domain.Account{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Balance:   balance,
		Color:     doc.Color,
		IsLocked:  doc.IsLocked,
		Type:      domain.AccountKind(doc.Type),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	doc, err := accountToDoc(account)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return accountToDomain(doc)
}

// CreateMany inserts a batch of accounts
func (r *AccountRepository) CreateMany(ctx context.Context, accounts []*domain.Account) ([]*domain.Account, error) {
	created := make([]*domain.Account, 0, len(accounts))
	for _, account := range accounts {
		doc, err := r.Create(ctx, account)
		if err != nil {
			return nil, err
		}
		created = append(created, doc)
	}
	return created, nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := oidFromHex(id, domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}

	var doc accountDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return accountToDomain(&doc)
}

// GetAll retrieves all accounts in creation order
func (r *AccountRepository) GetAll(ctx context.Context) ([]*domain.Account, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, optionsFindSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []*domain.Account
	for cursor.Next(ctx) {
		var doc accountDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		account, err := accountToDomain(&doc)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, cursor.Err()
}

// Update patches account metadata fields
func (r *AccountRepository) Update(ctx context.Context, id string, update *domain.AccountUpdate) (*domain.Account, error) {
	oid, err := oidFromHex(id, domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Color != nil {
		set["color"] = *update.Color
	}
	if update.IsLocked != nil {
		set["isLocked"] = *update.IsLocked
	}
	if update.Type != nil {
		set["type"] = string(*update.Type)
	}

	result := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		optionsReturnAfter())

	var doc accountDoc
	if err := result.Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return accountToDomain(&doc)
}

// Delete removes an account
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	oid, err := oidFromHex(id, domain.ErrAccountNotFound)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// IncrementBalance atomically adds delta to the account balance. The delta
// may be negative. Runs inside the caller's unit of work when the context
// carries one.
func (r *AccountRepository) IncrementBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	oid, err := oidFromHex(id, domain.ErrAccountNotFound)
	if err != nil {
		return err
	}

	d128, err := decimalToD128(delta)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$inc": bson.M{"balance": d128},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
