package mongo

import (
	"context"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GoalRepository implements domain.GoalRepository using MongoDB
type GoalRepository struct {
	collection *mongo.Collection
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{collection: db.Collection(goalsCollection)}
}

type goalDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Saved     primitive.Decimal128 `bson:"saved"`
	Target    primitive.Decimal128 `bson:"target"`
	Deadline  time.Time            `bson:"deadline"`
	Color     string               `bson:"color"`
	Icon      string               `bson:"icon"`
	Note      *string              `bson:"note,omitempty"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

func goalToDoc(goal *domain.Goal) (*goalDoc, error) {
	saved, err := decimalToD128(goal.Saved)
	if err != nil {
		return nil, err
	}
	target, err := decimalToD128(goal.Target)
	if err != nil {
		return nil, err
	}
	return &goalDoc{
		Name:      goal.Name,
		Saved:     saved,
		Target:    target,
		Deadline:  goal.Deadline,
		Color:     goal.Color,
		Icon:      goal.Icon,
		Note:      goal.Note,
		CreatedAt: goal.CreatedAt,
		UpdatedAt: goal.UpdatedAt,
	}, nil
}

func goalToDomain(doc *goalDoc) (*domain.Goal, error) {
	saved, err := d128ToDecimal(doc.Saved)
	if err != nil {
		return nil, err
	}
	target, err := d128ToDecimal(doc.Target)
	if err != nil {
		return nil, err
	}
	return &domain.Goal{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Saved:     saved,
		Target:    target,
		Deadline:  doc.Deadline,
		Color:     doc.Color,
		Icon:      doc.Icon,
		Note:      doc.Note,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// Create inserts a new goal
func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	doc, err := goalToDoc(goal)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return goalToDomain(doc)
}

// CreateMany inserts a batch of goals
func (r *GoalRepository) CreateMany(ctx context.Context, goals []*domain.Goal) ([]*domain.Goal, error) {
	created := make([]*domain.Goal, 0, len(goals))
	for _, goal := range goals {
		doc, err := r.Create(ctx, goal)
		if err != nil {
			return nil, err
		}
		created = append(created, doc)
	}
	return created, nil
}

// GetByID retrieves a goal by its ID
func (r *GoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	oid, err := oidFromHex(id, domain.ErrGoalNotFound)
	if err != nil {
		return nil, err
	}

	var doc goalDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goalToDomain(&doc)
}

// GetAll retrieves all goals in creation order
func (r *GoalRepository) GetAll(ctx context.Context) ([]*domain.Goal, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, optionsFindSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []*domain.Goal
	for cursor.Next(ctx) {
		var doc goalDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		goal, err := goalToDomain(&doc)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, cursor.Err()
}

// Update replaces a goal's fields
func (r *GoalRepository) Update(ctx context.Context, id string, goal *domain.Goal) (*domain.Goal, error) {
	oid, err := oidFromHex(id, domain.ErrGoalNotFound)
	if err != nil {
		return nil, err
	}

	goal.UpdatedAt = time.Now().UTC()
	doc, err := goalToDoc(goal)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"name":      doc.Name,
		"saved":     doc.Saved,
		"target":    doc.Target,
		"deadline":  doc.Deadline,
		"color":     doc.Color,
		"icon":      doc.Icon,
		"updatedAt": doc.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if doc.Note != nil {
		set["note"] = *doc.Note
	} else {
		update["$unset"] = bson.M{"note": ""}
	}

	result := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, optionsReturnAfter())

	var updated goalDoc
	if err := result.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goalToDomain(&updated)
}

// Delete removes a goal
func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	oid, err := oidFromHex(id, domain.ErrGoalNotFound)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}
