package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Transaction returns a runner that executes fn inside a Mongo transaction.
// The friend service uses it so both sides of a relationship edit commit or
// abort together. Transactions need a replica set or mongos; a standalone
// mongod will reject them.
func Transaction(client *mongo.Client) func(ctx context.Context, fn func(ctx context.Context) error) error {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		session, err := client.StartSession()
		if err != nil {
			return err
		}
		defer session.EndSession(ctx)

		_, err = session.WithTransaction(ctx, func(ctx context.Context) (any, error) {
			return nil, fn(ctx)
		})
		return err
	}
}
