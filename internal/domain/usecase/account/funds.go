package account

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/ledger"
)

// defaultFundingMethod is recorded when the caller names none
const defaultFundingMethod = "card"

type fundsCommand struct {
	accountID      string
	kind           entity.TransactionKind
	amountInCents  int64
	method         string
	idempotencyKey string
}

func (c fundsCommand) matches(txn *entity.Transaction) bool {
	return txn.Kind == c.kind && txn.AmountInCents == c.amountInCents && txn.Counterparty == c.method
}

// Deposit credits the account from an external funding method
func (u *AccountUseCase) Deposit(ctx context.Context, accountID string, req usecase.FundsRequest) (*usecase.FundsResult, error) {
	return u.applyFunds(ctx, accountID, entity.KindDeposit, req)
}

// Withdraw debits the account to an external funding method
func (u *AccountUseCase) Withdraw(ctx context.Context, accountID string, req usecase.FundsRequest) (*usecase.FundsResult, error) {
	return u.applyFunds(ctx, accountID, entity.KindWithdraw, req)
}

func (u *AccountUseCase) applyFunds(
	ctx context.Context,
	accountID string,
	kind entity.TransactionKind,
	req usecase.FundsRequest,
) (*usecase.FundsResult, error) {
	cmd, err := newFundsCommand(accountID, kind, req)
	if err != nil {
		return nil, err
	}

	var (
		result *usecase.FundsResult
		event  *messaging.LedgerEvent
	)
	err = u.poster.Post(ctx, cmd.accountID, func(ctx context.Context, scope ledger.Scope) error {
		var applyErr error
		result, event, applyErr = u.postFunds(ctx, scope, cmd)
		return applyErr
	})

	if errors.Is(err, errs.ErrDuplicateTransaction) && cmd.idempotencyKey != "" {
		result, err = u.replayFunds(ctx, cmd)
		event = nil
	}

	if err != nil {
		fields := map[string]any{
			"account_id": cmd.accountID,
			"kind":       string(kind),
			"amount":     entity.FormatAmount(cmd.amountInCents),
			"error":      err.Error(),
			"error_code": errs.ErrorCode(err),
		}
		if errs.IsInsufficientFundsError(err) || errs.IsNotFoundError(err) || errs.IsConflictError(err) {
			u.logger.Info("Funds operation rejected", fields)
		} else {
			u.logger.Error("Funds operation failed", fields)
		}
		return nil, err
	}

	if event != nil {
		if pubErr := u.publisher.Publish(ctx, *event); pubErr != nil {
			u.logger.Warn("Failed to publish ledger event", map[string]any{
				"event_type":     event.Type,
				"transaction_id": event.TransactionID,
				"error":          pubErr.Error(),
			})
		}
	}

	u.logger.Info("Funds operation completed", map[string]any{
		"account_id":     cmd.accountID,
		"kind":           string(kind),
		"transaction_id": result.TransactionID,
		"new_balance":    result.NewBalance,
		"replayed":       result.Replayed,
	})
	return result, nil
}

func newFundsCommand(accountID string, kind entity.TransactionKind, req usecase.FundsRequest) (fundsCommand, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return fundsCommand{}, errs.NewValidationError("accountId", errs.ErrInvalidAccountID)
	}

	amountInCents, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return fundsCommand{}, errs.NewValidationError("amount", err)
	}

	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = defaultFundingMethod
	}

	return fundsCommand{
		accountID:      accountID,
		kind:           kind,
		amountInCents:  amountInCents,
		method:         method,
		idempotencyKey: strings.TrimSpace(req.IdempotencyKey),
	}, nil
}

func (u *AccountUseCase) postFunds(
	ctx context.Context,
	scope ledger.Scope,
	cmd fundsCommand,
) (*usecase.FundsResult, *messaging.LedgerEvent, error) {
	existing, found, err := u.idempotency.CheckIdempotency(ctx, scope.Transactions, cmd.accountID, cmd.idempotencyKey, cmd.matches)
	if err != nil {
		return nil, nil, err
	}
	if found {
		return replayFundsResult(existing), nil, nil
	}

	account, err := scope.Accounts.GetForUpdate(ctx, cmd.accountID)
	if err != nil {
		return nil, nil, err
	}

	expectedVersion := account.Version
	txn, err := entity.NewTransaction(account.ID, cmd.kind, cmd.amountInCents)
	if err != nil {
		return nil, nil, err
	}

	eventType := messaging.EventDepositCompleted
	if cmd.kind == entity.KindDeposit {
		err = account.Credit(cmd.amountInCents, u.timeProvider)
		txn.Description = "Deposit via " + cmd.method
		txn.Category = entity.CategoryDeposit
	} else {
		err = account.Debit(cmd.amountInCents, u.timeProvider)
		txn.Description = "Withdrawal to " + cmd.method
		txn.Category = entity.CategoryWithdraw
		eventType = messaging.EventWithdrawCompleted
	}
	if err != nil {
		return nil, nil, err
	}

	txn.Counterparty = cmd.method
	txn.IdempotencyKey = cmd.idempotencyKey
	txn.BalanceAfter = account.Balance()
	txn.CreatedAt = account.UpdatedAt

	if err := scope.Transactions.Append(ctx, txn); err != nil {
		return nil, nil, err
	}
	if err := scope.Accounts.UpdateBalance(ctx, account, expectedVersion); err != nil {
		return nil, nil, err
	}

	result := &usecase.FundsResult{
		TransactionID: txn.ID,
		NewBalance:    account.GetBalance(),
	}
	event := &messaging.LedgerEvent{
		Type:          eventType,
		TransactionID: txn.ID,
		AccountID:     account.ID,
		Counterparty:  cmd.method,
		Amount:        txn.Amount(),
		BalanceAfter:  result.NewBalance,
		OccurredAt:    txn.CreatedAt,
	}
	return result, event, nil
}

func (u *AccountUseCase) replayFunds(ctx context.Context, cmd fundsCommand) (*usecase.FundsResult, error) {
	var result *usecase.FundsResult
	err := u.poster.Read(ctx, func(ctx context.Context, scope ledger.Scope) error {
		existing, found, err := u.idempotency.CheckIdempotency(ctx, scope.Transactions, cmd.accountID, cmd.idempotencyKey, cmd.matches)
		if err != nil {
			return err
		}
		if !found {
			return errs.ErrDuplicateTransaction
		}
		result = replayFundsResult(existing)
		return nil
	})
	return result, err
}

func replayFundsResult(txn *entity.Transaction) *usecase.FundsResult {
	return &usecase.FundsResult{
		TransactionID: txn.ID,
		NewBalance:    entity.FormatAmount(txn.BalanceAfter),
		Replayed:      true,
	}
}
