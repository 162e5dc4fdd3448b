package dto

import (
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// TransactionResponse represents one ledger entry
type TransactionResponse struct {
	ID                    string    `json:"id"`
	Kind                  string    `json:"kind"`
	Amount                string    `json:"amount"`
	Counterparty          string    `json:"counterparty"`
	CounterpartyAccountID string    `json:"counterpartyAccountId,omitempty"`
	Description           string    `json:"description,omitempty"`
	Category              string    `json:"category,omitempty"`
	BalanceAfter          string    `json:"balanceAfter"`
	CreatedAt             time.Time `json:"createdAt"`
}

// TransactionListResponse wraps a page of recent activity
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// NewTransactionListResponse maps entries to their API form, keeping their order
func NewTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, TransactionResponse{
			ID:                    t.ID,
			Kind:                  string(t.Kind),
			Amount:                entity.FormatAmount(t.AmountInCents),
			Counterparty:          t.Counterparty,
			CounterpartyAccountID: t.CounterpartyAccountID,
			Description:           t.Description,
			Category:              t.Category,
			BalanceAfter:          entity.FormatAmount(t.BalanceAfter),
			CreatedAt:             t.CreatedAt,
		})
	}
	return TransactionListResponse{Transactions: items}
}

// CategoryTotalsResponse holds per-category sums over a range
type CategoryTotalsResponse struct {
	From       *time.Time        `json:"from,omitempty"`
	To         *time.Time        `json:"to,omitempty"`
	Categories map[string]string `json:"categories"`
}

// NewCategoryTotalsResponse formats the totals as decimal strings
func NewCategoryTotalsResponse(dateRange entity.DateRange, totals map[string]int64) CategoryTotalsResponse {
	categories := make(map[string]string, len(totals))
	for name, cents := range totals {
		categories[name] = entity.FormatAmount(cents)
	}
	from, to := rangeBounds(dateRange)
	return CategoryTotalsResponse{From: from, To: to, Categories: categories}
}

// CategoryShareResponse is one slice of the expense breakdown
type CategoryShareResponse struct {
	Name       string  `json:"name"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// SummaryResponse aggregates income and expenses over a range
type SummaryResponse struct {
	From       *time.Time              `json:"from,omitempty"`
	To         *time.Time              `json:"to,omitempty"`
	Income     string                  `json:"income"`
	Expenses   string                  `json:"expenses"`
	Savings    string                  `json:"savings"`
	Categories []CategoryShareResponse `json:"categories"`
}

// NewSummaryResponse maps a summary to its API form
func NewSummaryResponse(dateRange entity.DateRange, summary *usecase.Summary) SummaryResponse {
	categories := make([]CategoryShareResponse, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		categories = append(categories, CategoryShareResponse{
			Name:       c.Name,
			Amount:     entity.FormatAmount(c.AmountInCents),
			Percentage: c.Percentage,
		})
	}
	from, to := rangeBounds(dateRange)
	return SummaryResponse{
		From:       from,
		To:         to,
		Income:     entity.FormatAmount(summary.IncomeInCents),
		Expenses:   entity.FormatAmount(summary.ExpensesInCents),
		Savings:    entity.FormatAmount(summary.SavingsInCents),
		Categories: categories,
	}
}

func rangeBounds(r entity.DateRange) (from, to *time.Time) {
	if !r.From.IsZero() {
		from = &r.From
	}
	if !r.To.IsZero() {
		to = &r.To
	}
	return from, to
}
