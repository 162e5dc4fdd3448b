package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestID(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.CodeInternal,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated), errors.Is(err, errs.ErrInvalidIdentity):
		return http.StatusUnauthorized
	case errs.IsInsufficientFundsError(err):
		return http.StatusPaymentRequired
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccountLocked):
		return http.StatusLocked
	case errs.IsConflictError(err):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrInconsistentLedgerState), errors.Is(err, errs.ErrInternal):
		return http.StatusInternalServerError
	case isClientInputError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isClientInputError(err error) bool {
	return errs.IsValidationError(err) ||
		errors.Is(err, errs.ErrInvalidAmount) ||
		errors.Is(err, errs.ErrNonPositiveAmount) ||
		errors.Is(err, errs.ErrAmountOverflow) ||
		errors.Is(err, errs.ErrEmptyCounterparty) ||
		errors.Is(err, errs.ErrInvalidAccountID) ||
		errors.Is(err, errs.ErrInvalidIdempotencyKey) ||
		errors.Is(err, errs.ErrSelfTransfer) ||
		errors.Is(err, errs.ErrInvalidDateRange) ||
		errors.Is(err, errs.ErrInvalidTransactionKind)
}

// NewErrorResponse builds the body for err. Server-side failures never expose their cause.
func NewErrorResponse(err error) dto.ErrorResponse {
	status := StatusCode(err)
	response := dto.ErrorResponse{Code: errs.ErrorCode(err)}

	switch {
	case status == http.StatusServiceUnavailable:
		response.Message = "Service temporarily unavailable, please retry"
	case status >= http.StatusInternalServerError:
		response.Code = internalCode(err)
		response.Message = "Internal server error"
	default:
		response.Message = clientMessage(err)
	}

	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		response.Field = validationErr.Field
	}
	return response
}

func internalCode(err error) int {
	if errors.Is(err, errs.ErrInconsistentLedgerState) {
		return errs.CodeInconsistentLedger
	}
	return errs.CodeInternal
}

// clientMessage drops the transfer context, which only belongs in logs
func clientMessage(err error) string {
	var transferErr *errs.TransferError
	if errors.As(err, &transferErr) && transferErr.Err != nil {
		return transferErr.Err.Error()
	}
	return err.Error()
}

// AbortWithError writes the mapped error response and stops the chain
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(StatusCode(err), NewErrorResponse(err))
}
