package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// newestFirst breaks created_at ties by ID so pages are stable
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

type transactionRepository struct {
	collection   *mongo.Collection
	accounts     *mongo.Collection
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

func (r *transactionRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	count, err := r.accounts.CountDocuments(ctx, bson.D{{Key: "_id", Value: transaction.AccountID}}, options.Count().SetLimit(1))
	if err != nil {
		return toDomainError(err, nil, nil)
	}
	if count == 0 {
		return errs.ErrAccountNotFound
	}

	if transaction.ID == "" {
		transaction.ID = r.idGenerator.NewID()
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = r.timeProvider.Now()
	}
	// BSON dates hold milliseconds
	transaction.CreatedAt = transaction.CreatedAt.UTC().Truncate(time.Millisecond)

	if _, err := r.collection.InsertOne(ctx, newTransactionDocument(transaction)); err != nil {
		return toDomainError(err, nil, errs.ErrDuplicateTransaction)
	}
	return nil
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]*entity.Transaction, error) {
	findOptions := options.Find().SetSort(newestFirst)
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.D{{Key: "account_id", Value: accountID}}, findOptions)
}

func (r *transactionRepository) ListByAccountBetween(ctx context.Context, accountID string, dateRange entity.DateRange) ([]*entity.Transaction, error) {
	filter := bson.D{{Key: "account_id", Value: accountID}}

	// A zero bound leaves that side open
	var createdAt bson.D
	if !dateRange.From.IsZero() {
		createdAt = append(createdAt, bson.E{Key: "$gte", Value: dateRange.From})
	}
	if !dateRange.To.IsZero() {
		createdAt = append(createdAt, bson.E{Key: "$lt", Value: dateRange.To})
	}
	if len(createdAt) > 0 {
		filter = append(filter, bson.E{Key: "created_at", Value: createdAt})
	}
	return r.find(ctx, filter, options.Find().SetSort(newestFirst))
}

func (r *transactionRepository) GetByIdempotencyKey(ctx context.Context, accountID, key string) (*entity.Transaction, error) {
	if key == "" {
		return nil, errs.ErrTransactionNotFound
	}

	var doc transactionDocument
	err := r.collection.FindOne(ctx, bson.D{
		{Key: "account_id", Value: accountID},
		{Key: "idempotency_key", Value: key},
	}).Decode(&doc)
	if err != nil {
		return nil, toDomainError(err, errs.ErrTransactionNotFound, nil)
	}
	return doc.toEntity()
}

func (r *transactionRepository) find(ctx context.Context, filter bson.D, findOptions *options.FindOptions) ([]*entity.Transaction, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, toDomainError(err, nil, nil)
	}

	var docs []transactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, toDomainError(err, nil, nil)
	}

	transactions := make([]*entity.Transaction, 0, len(docs))
	for i := range docs {
		transaction, err := docs[i].toEntity()
		if err != nil {
			r.logger.Error("Stored transaction has an unknown kind", map[string]any{
				"transaction_id": docs[i].ID,
				"kind":           docs[i].Kind,
			})
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
