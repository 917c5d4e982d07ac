// Package mongo contains the concrete implementation of the persistence
// layer on the MongoDB document store. Every aggregate lives embedded in a
// single 'users' collection document, so most mutations are single
// field-level update operators against one document.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"flyingpot/config"
	"flyingpot/internal/domain/lifecycle"
	"flyingpot/internal/errors"
)

const usersCollection = "users"

const defaultConnectTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and wires connect/disconnect into
// the application lifecycle.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil {
		return nil, errors.New("mongo config must be provided")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			pingCtx, pingCancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer pingCancel()

			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return client.Database(cfg.Database), nil
}

// users returns the one collection the whole data model lives in.
func users(db *mongo.Database) *mongo.Collection {
	return db.Collection(usersCollection)
}
