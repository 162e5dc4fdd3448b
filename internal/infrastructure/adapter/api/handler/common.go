package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// HeaderIdempotencyKey carries the caller's request id for money-moving calls
const HeaderIdempotencyKey = "Idempotency-Key"

// accountResolver turns the authenticated identity into the caller's account
type accountResolver struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// resolve provisions the account on first touch; it writes the error response and returns false on failure
func (r accountResolver) resolve(c *gin.Context) (*entity.Account, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		middleware.AbortWithError(c, errs.ErrUnauthenticated)
		return nil, false
	}

	account, err := r.accounts.EnsureAccount(c.Request.Context(), identity)
	if err != nil {
		r.logger.Error("Failed to resolve account for identity", map[string]any{
			"subject":    identity.Subject,
			"request_id": middleware.RequestID(c),
			"error":      err.Error(),
		})
		middleware.AbortWithError(c, err)
		return nil, false
	}
	return account, true
}

// bindError reports a malformed body as a validation failure
func bindError(c *gin.Context, err error) {
	middleware.AbortWithError(c, errs.NewValidationError("body", err))
}
