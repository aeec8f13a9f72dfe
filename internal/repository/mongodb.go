// Package repository provides the catalog gateways and the log store.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names of the Mongo catalog and the audit trail.
const (
	boxModelsCollection = "box_models"
	boxStockCollection  = "box_stock"
	productsCollection  = "products"
	logsCollection      = "logs"
)

const (
	logsTTLIndex     = "timestamp_ttl"
	mongoPingTimeout = 2 * time.Second
	// mongoIndexNotFound is the server code collMod returns for a missing index.
	mongoIndexNotFound = 27
)

// MongoConfig holds the driver pool and timeout settings.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	// EnableCompression negotiates zstd, snappy or zlib with the server.
	EnableCompression bool
}

// DefaultMongoConfig sizes the pool for a single service replica.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

func (c MongoConfig) clientOptions(uri string) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(c.MaxPoolSize).
		SetMinPoolSize(c.MinPoolSize).
		SetMaxConnIdleTime(c.MaxConnIdleTime).
		SetConnectTimeout(c.ConnectTimeout).
		SetServerSelectionTimeout(c.ServerSelectionTimeout).
		SetSocketTimeout(c.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if c.EnableCompression {
		opts.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}
	return opts
}

// catalogIndexes lists the indexes each collection needs. The TTL index on
// logs is owned by SetLogsTTL.
func catalogIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		boxModelsCollection: {{
			Keys:    bson.D{{Key: "site_id", Value: 1}, {Key: "model_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("site_model"),
		}},
		boxStockCollection: {{
			Keys:    bson.D{{Key: "site_id", Value: 1}, {Key: "model_id", Value: 1}, {Key: "state", Value: 1}},
			Options: options.Index().SetName("site_model_state"),
		}},
		productsCollection: {{
			Keys:    bson.D{{Key: "site_id", Value: 1}, {Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("site_code"),
		}},
		logsCollection: {
			{
				Keys:    bson.D{{Key: "request_id", Value: 1}},
				Options: options.Index().SetName("request_id"),
			},
			{
				Keys:    bson.D{{Key: "site_id", Value: 1}, {Key: "action_type", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("site_action_time"),
			},
		},
	}
}

// MongoDB holds the client and the collections the service reads and writes.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	BoxModels *mongo.Collection
	BoxStock  *mongo.Collection
	Products  *mongo.Collection
	Logs      *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures the collection indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:    client,
		Database:  db,
		BoxModels: db.Collection(boxModelsCollection),
		BoxStock:  db.Collection(boxStockCollection),
		Products:  db.Collection(productsCollection),
		Logs:      db.Collection(logsCollection),
	}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return m, nil
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	for name, indexes := range catalogIndexes() {
		if _, err := m.Database.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	return nil
}

// SetLogsTTL makes log entries expire ttl after their timestamp. An existing
// TTL index is changed in place with collMod so no window without expiry opens.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	seconds := int32(ttl / time.Second)

	err := m.Database.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: logsCollection},
		{Key: "index", Value: bson.D{
			{Key: "name", Value: logsTTLIndex},
			{Key: "expireAfterSeconds", Value: seconds},
		}},
	}).Err()
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) || (cmdErr.Code != mongoIndexNotFound && cmdErr.Name != "NamespaceNotFound") {
		return fmt.Errorf("update logs ttl: %w", err)
	}

	_, err = m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetName(logsTTLIndex).SetExpireAfterSeconds(seconds),
	})
	if err != nil {
		return fmt.Errorf("create logs ttl index: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary within mongoPingTimeout.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mongoPingTimeout)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
