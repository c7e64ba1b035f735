package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/description"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	usersCollection       = "users"
	slotsCollection       = "bookslots"
	communitiesCollection = "communities"
	sportsCollection      = "sports"

	// mongo's own default when neither config nor URI name a database
	defaultDatabase = "test"
)

type Options struct {
	URI                    string
	Database               string
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	MaxPoolSize            uint64
	Connect                retry.Strategy
}

// Store owns the mongo client. It is opened once in app.New and closed on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, opts Options, log logger.Logger) (*Store, error) {
	dbName, err := databaseName(opts.URI, opts.Database)
	if err != nil {
		return nil, err
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(opts.ServerSelectionTimeout).
		SetSocketTimeout(opts.SocketTimeout).
		SetServerMonitor(newServerMonitor(log)).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	err = retry.Do(func() error {
		return client.Ping(ctx, readpref.Primary())
	}, opts.Connect)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// NewStore wraps an already connected database.
func NewStore(db *mongo.Database) *Store {
	return &Store{client: db.Client(), db: db}
}

func (s *Store) DB() *mongo.Database {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup index on users.phNum. It is not unique:
// the admin add path may store duplicate phone numbers.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phNum", Value: 1}},
		Options: options.Index().SetName("phNum_1"),
	})
	if err != nil {
		return fmt.Errorf("create users.phNum index: %w", err)
	}
	return nil
}

func databaseName(uri, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("parse mongo uri: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return defaultDatabase, nil
}

// newServerMonitor logs connected, error and disconnected transitions of the deployment.
func newServerMonitor(log logger.Logger) *event.ServerMonitor {
	return &event.ServerMonitor{
		TopologyDescriptionChanged: func(e *event.TopologyDescriptionChangedEvent) {
			was, is := hasAvailableServer(e.PreviousDescription), hasAvailableServer(e.NewDescription)
			switch {
			case !was && is:
				log.Info("mongodb connected")
			case was && !is:
				log.Warn("mongodb disconnected")
			}
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			log.Error("mongodb connection error",
				logger.String("connection_id", e.ConnectionID),
				logger.Any("error", e.Failure),
			)
		},
	}
}

func hasAvailableServer(t description.Topology) bool {
	for _, s := range t.Servers {
		if s.Kind != description.Unknown {
			return true
		}
	}
	return false
}

// CollectionCounts returns the estimated document count of every entity collection.
func (s *Store) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, 4)
	for _, name := range []string{usersCollection, slotsCollection, communitiesCollection, sportsCollection} {
		n, err := s.db.Collection(name).EstimatedDocumentCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
