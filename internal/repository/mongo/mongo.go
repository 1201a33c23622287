// Package mongo implements the domain repositories on top of MongoDB.
package mongo

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	accountsCollection     = "accounts"
	accountTypesCollection = "account_types"
	transactionsCollection = "transactions"
	categoriesCollection   = "categories"
	budgetsCollection      = "budgets"
	goalsCollection        = "goals"
	eventsCollection       = "events"
)

// decimalToD128 converts a decimal amount to its stored representation.
func decimalToD128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("invalid decimal %q: %w", d.String(), err)
	}
	return v, nil
}

// d128ToDecimal converts a stored Decimal128 back to a decimal amount.
func d128ToDecimal(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid stored decimal %q: %w", v.String(), err)
	}
	return d, nil
}

// oidFromHex parses an id string; notFound is returned for malformed ids so
// a bogus id behaves like a missing document.
func oidFromHex(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}

// oidPtrFromHex parses an optional id reference.
func oidPtrFromHex(id *string, notFound error) (*primitive.ObjectID, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	oid, err := oidFromHex(*id, notFound)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

// hexPtr renders an optional ObjectID reference back to its string form.
func hexPtr(oid *primitive.ObjectID) *string {
	if oid == nil {
		return nil
	}
	s := oid.Hex()
	return &s
}

func optionsFindSort(sort bson.D) *options.FindOptions {
	return options.Find().SetSort(sort)
}

func optionsReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
