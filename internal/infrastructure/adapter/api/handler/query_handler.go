package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

const dateOnly = "2006-01-02"

// QueryHandler serves read-only views of the caller's ledger
type QueryHandler struct {
	accountResolver
	queryUseCase usecase.QueryUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewQueryHandler creates a new query handler instance
func NewQueryHandler(
	queryUseCase usecase.QueryUseCase,
	accountUseCase usecase.AccountUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *QueryHandler {
	return &QueryHandler{
		accountResolver: accountResolver{accounts: accountUseCase, logger: logger},
		queryUseCase:    queryUseCase,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// RecentTransactions handles GET /v1/accounts/me/transactions?limit=n
func (h *QueryHandler) RecentTransactions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			middleware.AbortWithError(c, errs.NewValidationError("limit", err))
			return
		}
		limit = n
	}

	account, ok := h.resolve(c)
	if !ok {
		return
	}

	transactions, err := h.queryUseCase.RecentTransactions(c.Request.Context(), account.ID, limit)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// CategoryTotals handles GET /v1/accounts/me/categories?from=&to=
func (h *QueryHandler) CategoryTotals(c *gin.Context) {
	dateRange, account, ok := h.rangeAndAccount(c)
	if !ok {
		return
	}

	totals, err := h.queryUseCase.CategoryTotals(c.Request.Context(), account.ID, dateRange)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryTotalsResponse(dateRange, totals))
}

// Summary handles GET /v1/accounts/me/summary?from=&to=
func (h *QueryHandler) Summary(c *gin.Context) {
	dateRange, account, ok := h.rangeAndAccount(c)
	if !ok {
		return
	}

	summary, err := h.queryUseCase.Summary(c.Request.Context(), account.ID, dateRange)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSummaryResponse(dateRange, summary))
}

func (h *QueryHandler) rangeAndAccount(c *gin.Context) (entity.DateRange, *entity.Account, bool) {
	dateRange, err := ParseDateRange(c.Query("from"), c.Query("to"), h.timeProvider.Now())
	if err != nil {
		middleware.AbortWithError(c, err)
		return entity.DateRange{}, nil, false
	}

	account, ok := h.resolve(c)
	if !ok {
		return entity.DateRange{}, nil, false
	}
	return dateRange, account, true
}

// ParseDateRange reads RFC3339 or YYYY-MM-DD bounds. A date-only "to" includes
// that whole day. Without either bound the current calendar month is used.
func ParseDateRange(from, to string, now time.Time) (entity.DateRange, error) {
	if from == "" && to == "" {
		return entity.MonthRange(now), nil
	}

	var dateRange entity.DateRange
	var err error
	if from != "" {
		if dateRange.From, _, err = parseBound(from); err != nil {
			return entity.DateRange{}, errs.NewValidationError("from", err)
		}
	}
	if to != "" {
		var dayOnly bool
		if dateRange.To, dayOnly, err = parseBound(to); err != nil {
			return entity.DateRange{}, errs.NewValidationError("to", err)
		}
		if dayOnly {
			dateRange.To = dateRange.To.AddDate(0, 0, 1)
		}
	}

	if err := dateRange.Validate(); err != nil {
		return entity.DateRange{}, err
	}
	return dateRange, nil
}

func parseBound(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), false, nil
	}
	t, err := time.Parse(dateOnly, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
