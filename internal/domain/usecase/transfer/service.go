package transfer

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/ledger"
)

// Config holds transfer policy switches
type Config struct {
	// RequireRegisteredCounterparty rejects counterparties that resolve to no account
	// instead of recording them as external payees
	RequireRegisteredCounterparty bool
}

// Service implements usecase.TransferUseCase
type Service struct {
	poster       *ledger.Poster
	validator    *TransferValidator
	idempotency  *ledger.IdempotencyHandler
	publisher    messaging.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.TransferUseCase = (*Service)(nil)

// NewTransferService creates a new transfer service
func NewTransferService(
	poster *ledger.Poster,
	publisher messaging.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	return &Service{
		poster:       poster,
		validator:    NewTransferValidator(),
		idempotency:  ledger.NewIdempotencyHandler(),
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// ValidateTransferRequest validates the request without touching the store
func (s *Service) ValidateTransferRequest(senderAccountID string, req usecase.TransferRequest) error {
	_, err := s.validator.ValidateTransfer(senderAccountID, req)
	return err
}

// transferCommand is a validated transfer request
type transferCommand struct {
	senderAccountID string
	counterparty    string
	amountInCents   int64
	description     string
	category        string
	idempotencyKey  string
}

// Transfer moves funds from the sender to the counterparty.
// The debit, the ledger entries and any recipient credit commit together or not at all.
func (s *Service) Transfer(ctx context.Context, senderAccountID string, req usecase.TransferRequest) (*usecase.TransferResult, error) {
	amountInCents, err := s.validator.ValidateTransfer(senderAccountID, req)
	if err != nil {
		s.logger.Warn("Rejected invalid transfer request", map[string]any{
			"account_id": senderAccountID,
			"error":      err.Error(),
		})
		return nil, err
	}

	cmd := transferCommand{
		senderAccountID: strings.TrimSpace(senderAccountID),
		counterparty:    normalizeCounterparty(req.Counterparty),
		amountInCents:   amountInCents,
		description:     strings.TrimSpace(req.Note),
		category:        strings.TrimSpace(req.Category),
		idempotencyKey:  strings.TrimSpace(req.IdempotencyKey),
	}
	if cmd.description == "" {
		cmd.description = entity.NewTransferDescription(cmd.counterparty)
	}
	if cmd.category == "" {
		cmd.category = entity.CategoryTransfer
	}

	var (
		result *usecase.TransferResult
		event  *messaging.LedgerEvent
	)
	err = s.poster.Post(ctx, cmd.senderAccountID, func(ctx context.Context, scope ledger.Scope) error {
		var applyErr error
		result, event, applyErr = s.apply(ctx, scope, cmd)
		return applyErr
	})

	// Another process appended the same key between our check and our write
	if errors.Is(err, errs.ErrDuplicateTransaction) && cmd.idempotencyKey != "" {
		result, err = s.replay(ctx, cmd)
		event = nil
	}

	if err != nil {
		reason := "transfer not applied"
		if errors.Is(err, errs.ErrInconsistentLedgerState) {
			reason = "transfer outcome unknown"
		}
		transferErr := &errs.TransferError{
			AccountID:      cmd.senderAccountID,
			Counterparty:   cmd.counterparty,
			Amount:         entity.FormatAmount(amountInCents),
			IdempotencyKey: cmd.idempotencyKey,
			Reason:         reason,
			Err:            err,
		}
		s.logFailure(transferErr, err)
		return nil, transferErr
	}

	if event != nil {
		s.publish(ctx, *event)
	}

	s.logger.Info("Transfer completed", map[string]any{
		"account_id":              cmd.senderAccountID,
		"transaction_id":          result.TransactionID,
		"counterparty_account_id": result.CounterpartyAccountID,
		"amount":                  entity.FormatAmount(amountInCents),
		"new_balance":             result.NewBalance,
		"replayed":                result.Replayed,
	})
	return result, nil
}

// apply performs the transfer inside one unit of work
func (s *Service) apply(
	ctx context.Context,
	scope ledger.Scope,
	cmd transferCommand,
) (*usecase.TransferResult, *messaging.LedgerEvent, error) {
	existing, found, err := s.idempotency.CheckIdempotency(ctx, scope.Transactions, cmd.senderAccountID, cmd.idempotencyKey,
		cmd.matches)
	if err != nil {
		return nil, nil, err
	}
	if found {
		return replayResult(existing), nil, nil
	}

	recipient, err := s.resolveCounterparty(ctx, scope.Accounts, cmd.counterparty)
	if err != nil {
		return nil, nil, err
	}
	if recipient != nil && recipient.ID == cmd.senderAccountID {
		return nil, nil, errs.NewValidationError("counterparty", errs.ErrSelfTransfer)
	}
	if recipient == nil && s.config.RequireRegisteredCounterparty {
		return nil, nil, errs.ErrCounterpartyNotFound
	}

	sender, recipient, err := s.lockAccounts(ctx, scope.Accounts, cmd.senderAccountID, recipient)
	if err != nil {
		return nil, nil, err
	}

	now := s.timeProvider.Now()

	senderVersion := sender.Version
	if err := sender.Debit(cmd.amountInCents, s.timeProvider); err != nil {
		return nil, nil, err
	}

	send, err := entity.NewTransaction(sender.ID, entity.KindSend, cmd.amountInCents)
	if err != nil {
		return nil, nil, err
	}
	send.Counterparty = cmd.counterparty
	send.Description = cmd.description
	send.Category = cmd.category
	send.IdempotencyKey = cmd.idempotencyKey
	send.BalanceAfter = sender.Balance()
	send.CreatedAt = now
	if recipient != nil {
		send.CounterpartyAccountID = recipient.ID
	}

	if err := scope.Transactions.Append(ctx, send); err != nil {
		return nil, nil, err
	}
	if err := scope.Accounts.UpdateBalance(ctx, sender, senderVersion); err != nil {
		return nil, nil, err
	}

	if recipient != nil {
		if err := s.credit(ctx, scope, sender, recipient, cmd, now); err != nil {
			return nil, nil, err
		}
	}

	result := &usecase.TransferResult{
		TransactionID:         send.ID,
		NewBalance:            sender.GetBalance(),
		CounterpartyAccountID: send.CounterpartyAccountID,
	}
	event := &messaging.LedgerEvent{
		Type:                  messaging.EventTransferCompleted,
		TransactionID:         send.ID,
		AccountID:             sender.ID,
		CounterpartyAccountID: send.CounterpartyAccountID,
		Counterparty:          send.Counterparty,
		Amount:                send.Amount(),
		BalanceAfter:          result.NewBalance,
		OccurredAt:            now,
	}
	return result, event, nil
}

// credit records the receiving side of a transfer between registered accounts
func (s *Service) credit(
	ctx context.Context,
	scope ledger.Scope,
	sender *entity.Account,
	recipient *entity.Account,
	cmd transferCommand,
	now time.Time,
) error {
	recipientVersion := recipient.Version
	if err := recipient.Credit(cmd.amountInCents, s.timeProvider); err != nil {
		return err
	}

	receive, err := entity.NewTransaction(recipient.ID, entity.KindReceive, cmd.amountInCents)
	if err != nil {
		return err
	}
	receive.Counterparty = sender.Email
	receive.CounterpartyAccountID = sender.ID
	receive.Description = entity.NewReceiptDescription(sender.Email)
	receive.Category = cmd.category
	receive.BalanceAfter = recipient.Balance()
	receive.CreatedAt = now

	if err := scope.Transactions.Append(ctx, receive); err != nil {
		return err
	}
	return scope.Accounts.UpdateBalance(ctx, recipient, recipientVersion)
}

// resolveCounterparty finds the account behind an email or phone identifier.
// A nil account with a nil error means an external payee.
func (s *Service) resolveCounterparty(
	ctx context.Context,
	accounts persistence.AccountRepository,
	counterparty string,
) (*entity.Account, error) {
	if strings.Contains(counterparty, "@") {
		account, err := accounts.GetByEmail(ctx, entity.NormalizeEmail(counterparty))
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, errs.ErrAccountNotFound) {
			return nil, err
		}
	}

	account, err := accounts.GetByPhone(ctx, counterparty)
	if err == nil {
		return account, nil
	}
	if errors.Is(err, errs.ErrAccountNotFound) {
		return nil, nil
	}
	return nil, err
}

// lockAccounts loads the sender and recipient for update in ID order so that
// opposite transfers between the same pair cannot deadlock
func (s *Service) lockAccounts(
	ctx context.Context,
	accounts persistence.AccountRepository,
	senderID string,
	recipient *entity.Account,
) (*entity.Account, *entity.Account, error) {
	ids := []string{senderID}
	if recipient != nil {
		ids = append(ids, recipient.ID)
	}
	sort.Strings(ids)

	locked := make(map[string]*entity.Account, len(ids))
	for _, id := range ids {
		account, err := accounts.GetForUpdate(ctx, id)
		if err != nil {
			if id != senderID && errors.Is(err, errs.ErrAccountNotFound) {
				return nil, nil, errs.ErrCounterpartyNotFound
			}
			return nil, nil, err
		}
		locked[id] = account
	}

	if recipient == nil {
		return locked[senderID], nil, nil
	}
	return locked[senderID], locked[recipient.ID], nil
}

// replay returns the stored outcome of an earlier request with the same key
func (s *Service) replay(ctx context.Context, cmd transferCommand) (*usecase.TransferResult, error) {
	var result *usecase.TransferResult
	err := s.poster.Read(ctx, func(ctx context.Context, scope ledger.Scope) error {
		existing, found, err := s.idempotency.CheckIdempotency(ctx, scope.Transactions, cmd.senderAccountID,
			cmd.idempotencyKey, cmd.matches)
		if err != nil {
			return err
		}
		if !found {
			return errs.ErrDuplicateTransaction
		}
		result = replayResult(existing)
		return nil
	})
	return result, err
}

// matches reports whether a stored transaction was created by an identical request
func (c transferCommand) matches(txn *entity.Transaction) bool {
	return txn.Kind == entity.KindSend &&
		txn.AmountInCents == c.amountInCents &&
		normalizeCounterparty(txn.Counterparty) == c.counterparty
}

// normalizeCounterparty lower-cases email identifiers the way account lookup does
func normalizeCounterparty(counterparty string) string {
	counterparty = strings.TrimSpace(counterparty)
	if strings.Contains(counterparty, "@") {
		return entity.NormalizeEmail(counterparty)
	}
	return counterparty
}

func replayResult(txn *entity.Transaction) *usecase.TransferResult {
	return &usecase.TransferResult{
		TransactionID:         txn.ID,
		NewBalance:            entity.FormatAmount(txn.BalanceAfter),
		CounterpartyAccountID: txn.CounterpartyAccountID,
		Replayed:              true,
	}
}

func (s *Service) publish(ctx context.Context, event messaging.LedgerEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish ledger event", map[string]any{
			"event_type":     event.Type,
			"transaction_id": event.TransactionID,
			"error":          err.Error(),
		})
	}
}

func (s *Service) logFailure(transferErr *errs.TransferError, cause error) {
	fields := transferErr.LogFields()

	var ife *errs.InsufficientFundsError
	switch {
	case errors.As(cause, &ife):
		for k, v := range ife.LogFields() {
			fields[k] = v
		}
		s.logger.Info("Transfer rejected", fields)
	case errs.IsValidationError(cause), errs.IsNotFoundError(cause), errs.IsConflictError(cause):
		s.logger.Info("Transfer rejected", fields)
	default:
		s.logger.Error("Transfer failed", fields)
	}
}
