package mongo

import (
	"context"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryRepository implements domain.CategoryRepository using MongoDB
type CategoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection(categoriesCollection)}
}

type categoryDoc struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty"`
	Name     string              `bson:"name"`
	Icon     string              `bson:"icon"`
	Color    string              `bson:"color"`
	Type     string              `bson:"type"`
	ParentID *primitive.ObjectID `bson:"parentId,omitempty"`
	Order    int32               `bson:"order"`
}

func categoryToDomain(doc *categoryDoc) *domain.Category {
	return &domain.Category{
		ID:       doc.ID.Hex(),
		Name:     doc.Name,
		Icon:     doc.Icon,
		Color:    doc.Color,
		Type:     domain.CategoryType(doc.Type),
		ParentID: hexPtr(doc.ParentID),
		Order:    doc.Order,
	}
}

func categoryToDoc(category *domain.Category) (*categoryDoc, error) {
	parentID, err := oidPtrFromHex(category.ParentID, domain.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}
	return &categoryDoc{
		Name:     category.Name,
		Icon:     category.Icon,
		Color:    category.Color,
		Type:     string(category.Type),
		ParentID: parentID,
		Order:    category.Order,
	}, nil
}

// Create inserts a new category
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	doc, err := categoryToDoc(category)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return categoryToDomain(doc), nil
}

// CreateMany inserts a batch of categories preserving order
func (r *CategoryRepository) CreateMany(ctx context.Context, categories []*domain.Category) ([]*domain.Category, error) {
	if len(categories) == 0 {
		return []*domain.Category{}, nil
	}

	docs := make([]interface{}, len(categories))
	for i, category := range categories {
		doc, err := categoryToDoc(category)
		if err != nil {
			return nil, err
		}
		docs[i] = doc
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	created := make([]*domain.Category, len(categories))
	for i, category := range categories {
		c := *category
		c.ID = result.InsertedIDs[i].(primitive.ObjectID).Hex()
		created[i] = &c
	}
	return created, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := oidFromHex(id, domain.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}

	var doc categoryDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return categoryToDomain(&doc), nil
}

// GetAll retrieves all categories sorted by display order
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, optionsFindSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*domain.Category
	for cursor.Next(ctx) {
		var doc categoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, categoryToDomain(&doc))
	}
	return categories, cursor.Err()
}

// DeleteAll removes every category
func (r *CategoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
