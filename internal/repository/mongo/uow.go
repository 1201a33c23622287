package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// UnitOfWork implements domain.UnitOfWork on a MongoDB session. Repository
// calls made with the context passed to fn run inside the same
// multi-document transaction; fn returning an error aborts everything.
type UnitOfWork struct {
	client *mongo.Client
}

// NewUnitOfWork creates a new UnitOfWork
func NewUnitOfWork(client *mongo.Client) *UnitOfWork {
	return &UnitOfWork{client: client}
}

// Run executes fn inside a MongoDB transaction
func (u *UnitOfWork) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := u.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
