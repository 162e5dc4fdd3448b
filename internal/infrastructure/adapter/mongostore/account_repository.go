package mongostore

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

type accountRepository struct {
	collection *mongo.Collection
	logger     coreport.Logger
}

func (r *accountRepository) findOne(ctx context.Context, filter bson.D) (*entity.Account, error) {
	var doc accountDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, toDomainError(err, errs.ErrAccountNotFound, nil)
	}
	return doc.toEntity(), nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// GetForUpdate reads inside the session snapshot. A concurrent writer is
// detected as a write conflict when the balance is updated.
func (r *accountRepository) GetForUpdate(ctx context.Context, id string) (*entity.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: entity.NormalizeEmail(email)}})
}

func (r *accountRepository) GetByPhone(ctx context.Context, phone string) (*entity.Account, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errs.ErrAccountNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "phone", Value: phone}})
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if _, err := r.collection.InsertOne(ctx, newAccountDocument(account)); err != nil {
		mapped := toDomainError(err, nil, errs.ErrDuplicateAccount)
		if mapped == errs.ErrDuplicateAccount {
			r.logger.Warn("Account already registered", map[string]any{"account_id": account.ID})
		}
		return mapped
	}
	return nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, account *entity.Account, expectedVersion int64) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: account.ID}, {Key: "version", Value: expectedVersion}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "balance", Value: account.Balance()},
			{Key: "version", Value: account.Version},
			{Key: "updated_at", Value: account.UpdatedAt},
		}}},
	)
	if err != nil {
		return toDomainError(err, nil, nil)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.D{{Key: "_id", Value: account.ID}}, options.Count().SetLimit(1))
	if err != nil {
		return toDomainError(err, nil, nil)
	}
	if count == 0 {
		return errs.ErrAccountNotFound
	}
	r.logger.Debug("Balance update lost compare-and-swap", map[string]any{
		"account_id":       account.ID,
		"expected_version": expectedVersion,
	})
	return errs.ErrConcurrentUpdate
}
