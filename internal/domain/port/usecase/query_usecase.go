package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// CategoryShare is one slice of the expense breakdown
type CategoryShare struct {
	Name          string
	AmountInCents int64
	Percentage    float64
}

// Summary aggregates an account's activity over a date range
type Summary struct {
	IncomeInCents   int64
	ExpensesInCents int64
	SavingsInCents  int64
	Categories      []CategoryShare // expense categories, largest first
}

// QueryUseCase provides read-only views over the ledger
type QueryUseCase interface {
	// RecentTransactions returns at most n transactions, newest first
	RecentTransactions(ctx context.Context, accountID string, n int) ([]*entity.Transaction, error)

	// CategoryTotals sums transaction amounts per category inside the range
	CategoryTotals(ctx context.Context, accountID string, dateRange entity.DateRange) (map[string]int64, error)

	// Summary computes income, expenses, savings and expense shares inside the range
	Summary(ctx context.Context, accountID string, dateRange entity.DateRange) (*Summary, error)
}
