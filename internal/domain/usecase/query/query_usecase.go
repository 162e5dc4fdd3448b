package query

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

const (
	// DefaultRecentLimit is used when the caller asks for a non-positive count
	DefaultRecentLimit = 10
	// MaxRecentLimit caps a single page of recent activity
	MaxRecentLimit = 100
)

// uncategorized names transactions recorded without a category
const uncategorized = "Other"

// QueryUseCase provides read-only views over the ledger
type QueryUseCase struct {
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
}

var _ usecase.QueryUseCase = (*QueryUseCase)(nil)

// NewQueryUseCase creates a new QueryUseCase
func NewQueryUseCase(transactionRepo persistence.TransactionRepository, logger coreport.Logger) *QueryUseCase {
	return &QueryUseCase{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// RecentTransactions returns at most n transactions of the account, newest first
func (u *QueryUseCase) RecentTransactions(ctx context.Context, accountID string, n int) ([]*entity.Transaction, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, errs.NewValidationError("accountId", errs.ErrInvalidAccountID)
	}

	if n <= 0 {
		n = DefaultRecentLimit
	}
	if n > MaxRecentLimit {
		n = MaxRecentLimit
	}

	transactions, err := u.transactionRepo.ListByAccount(ctx, accountID, n)
	if err != nil {
		return nil, err
	}
	if len(transactions) > n {
		transactions = transactions[:n]
	}

	u.logger.Debug("Listed recent transactions", map[string]any{
		"account_id": accountID,
		"limit":      n,
		"count":      len(transactions),
	})
	return transactions, nil
}

// CategoryTotals sums transaction amounts per category inside the range.
// No activity yields an empty map, not an error.
func (u *QueryUseCase) CategoryTotals(ctx context.Context, accountID string, dateRange entity.DateRange) (map[string]int64, error) {
	transactions, err := u.listBetween(ctx, accountID, dateRange)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64)
	for _, t := range transactions {
		totals[categoryOf(t)] += t.AmountInCents
	}
	return totals, nil
}

// Summary computes income, expenses, savings and expense category shares inside the range
func (u *QueryUseCase) Summary(ctx context.Context, accountID string, dateRange entity.DateRange) (*usecase.Summary, error) {
	transactions, err := u.listBetween(ctx, accountID, dateRange)
	if err != nil {
		return nil, err
	}

	summary := &usecase.Summary{Categories: []usecase.CategoryShare{}}
	expenses := make(map[string]int64)
	for _, t := range transactions {
		if t.Kind.IsCredit() {
			summary.IncomeInCents += t.AmountInCents
			continue
		}
		summary.ExpensesInCents += t.AmountInCents
		expenses[categoryOf(t)] += t.AmountInCents
	}
	summary.SavingsInCents = summary.IncomeInCents - summary.ExpensesInCents

	for name, amount := range expenses {
		summary.Categories = append(summary.Categories, usecase.CategoryShare{
			Name:          name,
			AmountInCents: amount,
			Percentage:    percentage(amount, summary.ExpensesInCents),
		})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		a, b := summary.Categories[i], summary.Categories[j]
		if a.AmountInCents != b.AmountInCents {
			return a.AmountInCents > b.AmountInCents
		}
		return a.Name < b.Name
	})

	return summary, nil
}

func (u *QueryUseCase) listBetween(ctx context.Context, accountID string, dateRange entity.DateRange) ([]*entity.Transaction, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, errs.NewValidationError("accountId", errs.ErrInvalidAccountID)
	}
	if err := dateRange.Validate(); err != nil {
		return nil, err
	}
	return u.transactionRepo.ListByAccountBetween(ctx, accountID, dateRange)
}

func categoryOf(t *entity.Transaction) string {
	if c := strings.TrimSpace(t.Category); c != "" {
		return c
	}
	return uncategorized
}

// percentage rounds part/total to two decimals
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}
