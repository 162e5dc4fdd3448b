package mongostore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

// Config holds document store connection settings
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// FromAppConfig extracts the document store settings from the application config
func FromAppConfig(appConfig *config.Config) Config {
	return Config{
		URI:            appConfig.Mongo.URI,
		Database:       appConfig.Mongo.Database,
		ConnectTimeout: appConfig.Mongo.ConnectTimeout,
	}
}

// Validate checks the settings before connecting
func (c Config) Validate() error {
	if !strings.HasPrefix(c.URI, "mongodb://") && !strings.HasPrefix(c.URI, "mongodb+srv://") {
		return fmt.Errorf("mongo uri must start with mongodb:// or mongodb+srv://")
	}
	if c.Database == "" {
		return fmt.Errorf("mongo database is required")
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("mongo connect timeout must be positive")
	}
	return nil
}

type contextKey string

const sessionKey contextKey = "mongo-session"

// sessionState is the open session transaction carried in the context
type sessionState struct {
	session mongo.Session
	done    bool
}

// Store is a ledger store backed by MongoDB. Units of work run as
// multi-document transactions, which need a replica set or sharded cluster.
type Store struct {
	client       *mongo.Client
	accounts     *mongo.Collection
	transactions *mongo.Collection
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ persistence.UnitOfWork = (*Store)(nil)

// Connect dials the cluster, verifies it answers and makes sure the indexes exist
func Connect(
	ctx context.Context,
	cfg Config,
	logger coreport.Logger,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongo configuration: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	store := &Store{
		client:       client,
		accounts:     db.Collection(accountsCollection),
		transactions: db.Collection(transactionsCollection),
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "mongo"}),
	}

	if err := store.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	store.logger.Info("Connected to mongo", map[string]any{"database": cfg.Database})
	return store, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.accounts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("ux_accounts_email"),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("ux_accounts_phone"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create account indexes: %w", err)
	}

	_, err = s.transactions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "account_id", Value: 1},
				{Key: "created_at", Value: -1},
				{Key: "_id", Value: -1},
			},
			Options: options.Index().SetName("ix_transactions_account_created"),
		},
		{
			Keys: bson.D{
				{Key: "account_id", Value: 1},
				{Key: "idempotency_key", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("ux_transactions_idempotency").
				SetPartialFilterExpression(bson.D{{Key: "idempotency_key", Value: bson.D{{Key: "$exists", Value: true}}}}),
		},
		{
			Keys:    bson.D{{Key: "counterparty_account_id", Value: 1}},
			Options: options.Index().SetSparse(true).SetName("ix_transactions_counterparty"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}
	return nil
}

// Begin starts a session with a snapshot transaction and returns a context carrying it
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(sessionKey).(*sessionState); ok {
		return ctx, errors.New("nested unit of work")
	}

	session, err := s.client.StartSession()
	if err != nil {
		s.logger.Error("Failed to start session", map[string]any{"error": err.Error()})
		return ctx, toDomainError(err, nil, nil)
	}

	txOptions := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority()).
		SetReadPreference(readpref.Primary())
	if err := session.StartTransaction(txOptions); err != nil {
		session.EndSession(ctx)
		s.logger.Error("Failed to start transaction", map[string]any{"error": err.Error()})
		return ctx, toDomainError(err, nil, nil)
	}

	sessionCtx := mongo.NewSessionContext(ctx, session)
	return context.WithValue(sessionCtx, sessionKey, &sessionState{session: session}), nil
}

// Commit commits the session transaction and ends the session
func (s *Store) Commit(ctx context.Context) error {
	state, ok := ctx.Value(sessionKey).(*sessionState)
	if !ok || state.done {
		return fmt.Errorf("no transaction found in context")
	}
	state.done = true
	defer state.session.EndSession(context.WithoutCancel(ctx))

	if err := state.session.CommitTransaction(ctx); err != nil {
		mapped := commitError(err)
		s.logger.Error("Failed to commit transaction", map[string]any{
			"error":  err.Error(),
			"mapped": mapped.Error(),
		})
		return mapped
	}
	return nil
}

// Rollback aborts the session transaction; it is a no-op once the transaction ended
func (s *Store) Rollback(ctx context.Context) error {
	state, ok := ctx.Value(sessionKey).(*sessionState)
	if !ok || state.done {
		return nil
	}
	state.done = true
	defer state.session.EndSession(context.WithoutCancel(ctx))

	if err := state.session.AbortTransaction(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn("Failed to abort transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to abort transaction: %w", err)
	}
	return nil
}

// Accounts returns an account repository; operations join the session carried by their context
func (s *Store) Accounts(ctx context.Context) persistence.AccountRepository {
	return &accountRepository{collection: s.accounts, logger: s.logger}
}

// Transactions returns a transaction repository; operations join the session carried by their context
func (s *Store) Transactions(ctx context.Context) persistence.TransactionRepository {
	return &transactionRepository{
		collection:   s.transactions,
		accounts:     s.accounts,
		idGenerator:  s.idGenerator,
		timeProvider: s.timeProvider,
		logger:       s.logger,
	}
}

// Ping checks that the primary answers
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	s.logger.Info("Mongo connection closed", nil)
	return nil
}
