package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", errs.NewValidationError("amount", errs.ErrInvalidAmount), http.StatusBadRequest},
		{"Bare amount error", errs.ErrNonPositiveAmount, http.StatusBadRequest},
		{"Self transfer", errs.ErrSelfTransfer, http.StatusBadRequest},
		{"Unauthenticated", errs.ErrUnauthenticated, http.StatusUnauthorized},
		{"Insufficient funds", errs.NewInsufficientFundsError("acc-1", "10.00", "5.00"), http.StatusPaymentRequired},
		{"Account not found", errs.ErrAccountNotFound, http.StatusNotFound},
		{"Counterparty not found", errs.ErrCounterpartyNotFound, http.StatusNotFound},
		{"Idempotency conflict", errs.ErrIdempotencyConflict, http.StatusConflict},
		{"Concurrent update", errs.ErrConcurrentUpdate, http.StatusConflict},
		{"Locked", errs.ErrAccountLocked, http.StatusLocked},
		{"Store unavailable", fmt.Errorf("%w: dial tcp", errs.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"Inconsistent ledger", errs.ErrInconsistentLedgerState, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
		{
			"Wrapped in a transfer error",
			errs.NewTransferError("acc-1", "bob", "10.00", "", "debit", errs.NewInsufficientFundsError("acc-1", "10.00", "5.00")),
			http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("Validation names the field", func(t *testing.T) {
		response := NewErrorResponse(errs.NewValidationError("amount", errs.ErrInvalidAmount))
		assert.Equal(t, errs.CodeInvalidAmount, response.Code)
		assert.Equal(t, "amount", response.Field)
	})

	t.Run("Transfer context stays out of the message", func(t *testing.T) {
		err := errs.NewTransferError("acc-1", "bob", "10.00", "key", "debit", errs.NewInsufficientFundsError("acc-1", "10.00", "5.00"))
		response := NewErrorResponse(err)
		assert.Equal(t, errs.CodeInsufficientFunds, response.Code)
		assert.NotContains(t, response.Message, "key")
		assert.Contains(t, response.Message, "insufficient funds")
	})

	t.Run("Server errors hide their cause", func(t *testing.T) {
		response := NewErrorResponse(fmt.Errorf("%w: pq: relation missing", errs.ErrInconsistentLedgerState))
		assert.Equal(t, errs.CodeInconsistentLedger, response.Code)
		assert.Equal(t, "Internal server error", response.Message)

		response = NewErrorResponse(fmt.Errorf("%w: dial tcp 10.0.0.1", errs.ErrStoreUnavailable))
		assert.Equal(t, errs.CodeStoreUnavailable, response.Code)
		assert.NotContains(t, response.Message, "10.0.0.1")
	})
}

func TestAuthenticate(t *testing.T) {
	newRouter := func() *gin.Engine {
		router := gin.New()
		router.GET("/me", Authenticate(logger.NewNoopLogger()), func(c *gin.Context) {
			identity, ok := IdentityFrom(c)
			assert.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"email": identity.Email, "name": identity.DisplayName})
		})
		return router
	}

	t.Run("Missing email is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(HeaderAuthSubject, "user-1")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprint(errs.CodeUnauthenticated))
	})

	t.Run("Identity is normalized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(HeaderAuthEmail, " Jane@Example.COM ")
		req.Header.Set(HeaderAuthName, "Jane")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"email":"jane@example.com","name":"Jane"}`, w.Body.String())
	})

	t.Run("No identity outside the middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		identity, ok := IdentityFrom(c)
		assert.False(t, ok)
		assert.Equal(t, entity.Identity{}, identity)
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestRequestIDMiddleware(t *testing.T) {
	ids := mockcore.NewMockIDGenerator(t)
	ids.EXPECT().NewID().Return("generated-id").Once()

	router := gin.New()
	router.Use(RequestIDMiddleware(ids))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "generated-id", w.Body.String())
	assert.Equal(t, "generated-id", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "caller-id")
	router.ServeHTTP(w, req)
	assert.Equal(t, "caller-id", w.Body.String())
}
