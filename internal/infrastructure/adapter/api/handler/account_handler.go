package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountResolver
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountResolver: accountResolver{accounts: accountUseCase, logger: logger},
		accountUseCase:  accountUseCase,
		logger:          logger,
	}
}

// EnsureAccount handles POST /v1/accounts/me
func (h *AccountHandler) EnsureAccount(c *gin.Context) {
	account, ok := h.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// GetAccount handles GET /v1/accounts/me
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, ok := h.resolve(c)
	if !ok {
		return
	}

	// Re-read so the balance reflects commits made after provisioning
	current, err := h.accountUseCase.GetAccount(c.Request.Context(), account.ID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponse(current))
}

// Deposit handles POST /v1/accounts/me/deposits
func (h *AccountHandler) Deposit(c *gin.Context) {
	h.applyFunds(c, "deposit", h.accountUseCase.Deposit)
}

// Withdraw handles POST /v1/accounts/me/withdrawals
func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.applyFunds(c, "withdraw", h.accountUseCase.Withdraw)
}

type fundsOperation func(ctx context.Context, accountID string, req usecase.FundsRequest) (*usecase.FundsResult, error)

func (h *AccountHandler) applyFunds(c *gin.Context, operation string, apply fundsOperation) {
	var req dto.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid funds request format", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		bindError(c, err)
		return
	}

	account, ok := h.resolve(c)
	if !ok {
		return
	}

	result, err := apply(c.Request.Context(), account.ID, usecase.FundsRequest{
		Amount:         req.Amount,
		Method:         req.Method,
		IdempotencyKey: c.GetHeader(HeaderIdempotencyKey),
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FundsResponse{
		TransactionID: result.TransactionID,
		NewBalance:    result.NewBalance,
		Replayed:      result.Replayed,
	})
}
