package mongo

import (
	"context"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository implements domain.EventRepository using MongoDB
type EventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{collection: db.Collection(eventsCollection)}
}

type eventDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	StartTime time.Time          `bson:"startTime"`
	EndTime   time.Time          `bson:"endTime"`
	Notes     *string            `bson:"notes,omitempty"`
	Color     string             `bson:"color"`
	IsAllDay  bool               `bson:"isAllDay"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func eventToDoc(event *domain.Event) *eventDoc {
	return &eventDoc{
		Title:     event.Title,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Notes:     event.Notes,
		Color:     event.Color,
		IsAllDay:  event.IsAllDay,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
}

func eventToDomain(doc *eventDoc) *domain.Event {
	return &domain.Event{
		ID:        doc.ID.Hex(),
		Title:     doc.Title,
		StartTime: doc.StartTime,
		EndTime:   doc.EndTime,
		Notes:     doc.Notes,
		Color:     doc.Color,
		IsAllDay:  doc.IsAllDay,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	doc := eventToDoc(event)
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return eventToDomain(doc), nil
}

// GetByID retrieves an event by its ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := oidFromHex(id, domain.ErrEventNotFound)
	if err != nil {
		return nil, err
	}

	var doc eventDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return eventToDomain(&doc), nil
}

// Find retrieves events optionally windowed by start time, ascending
func (r *EventRepository) Find(ctx context.Context, filters *domain.EventFilters) ([]*domain.Event, error) {
	query := bson.M{}
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		query["startTime"] = bson.M{
			"$gte": *filters.StartDate,
			"$lte": *filters.EndDate,
		}
	}

	cursor, err := r.collection.Find(ctx, query, optionsFindSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []*domain.Event{}
	for cursor.Next(ctx) {
		var doc eventDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		events = append(events, eventToDomain(&doc))
	}
	return events, cursor.Err()
}

// Update replaces an event's fields
func (r *EventRepository) Update(ctx context.Context, id string, event *domain.Event) (*domain.Event, error) {
	oid, err := oidFromHex(id, domain.ErrEventNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"title":     event.Title,
		"startTime": event.StartTime,
		"endTime":   event.EndTime,
		"color":     event.Color,
		"isAllDay":  event.IsAllDay,
		"updatedAt": time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if event.Notes != nil {
		set["notes"] = *event.Notes
	} else {
		update["$unset"] = bson.M{"notes": ""}
	}

	result := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, optionsReturnAfter())

	var doc eventDoc
	if err := result.Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return eventToDomain(&doc), nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := oidFromHex(id, domain.ErrEventNotFound)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
