package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/ledger"
)

// DefaultOpeningBalance is credited to every newly provisioned account
const DefaultOpeningBalance = "5000.00"

// Config holds provisioning settings
type Config struct {
	OpeningBalance string
}

// AccountUseCase handles account provisioning and explicit funding operations
type AccountUseCase struct {
	accountRepo  persistence.AccountRepository
	poster       *ledger.Poster
	idempotency  *ledger.IdempotencyHandler
	idGenerator  coreport.IDGenerator
	publisher    messaging.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	accountRepo persistence.AccountRepository,
	poster *ledger.Poster,
	idGenerator coreport.IDGenerator,
	publisher messaging.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *AccountUseCase {
	if strings.TrimSpace(config.OpeningBalance) == "" {
		config.OpeningBalance = DefaultOpeningBalance
	}
	return &AccountUseCase{
		accountRepo:  accountRepo,
		poster:       poster,
		idempotency:  ledger.NewIdempotencyHandler(),
		idGenerator:  idGenerator,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// GetAccount retrieves an account by ID
func (u *AccountUseCase) GetAccount(ctx context.Context, accountID string) (*entity.Account, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, errs.NewValidationError("accountId", errs.ErrInvalidAccountID)
	}
	return u.accountRepo.GetByID(ctx, accountID)
}

// GetAccountByEmail retrieves an account by the identity's email
func (u *AccountUseCase) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	email = entity.NormalizeEmail(email)
	if err := (entity.Identity{Email: email}).Validate(); err != nil {
		return nil, errs.NewValidationError("email", err)
	}
	return u.accountRepo.GetByEmail(ctx, email)
}
