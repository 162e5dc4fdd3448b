package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// TransferHandler handles transfer HTTP requests
type TransferHandler struct {
	accountResolver
	transferUseCase usecase.TransferUseCase
	logger          coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(
	transferUseCase usecase.TransferUseCase,
	accountUseCase usecase.AccountUseCase,
	logger coreport.Logger,
) *TransferHandler {
	return &TransferHandler{
		accountResolver: accountResolver{accounts: accountUseCase, logger: logger},
		transferUseCase: transferUseCase,
		logger:          logger,
	}
}

// Transfer handles the POST /v1/transfers endpoint
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid transfer request format", map[string]any{
			"error": err.Error(),
		})
		bindError(c, err)
		return
	}

	transferReq := usecase.TransferRequest{
		Counterparty:   req.Counterparty,
		Amount:         req.Amount,
		Note:           req.Note,
		Category:       req.Category,
		IdempotencyKey: c.GetHeader(HeaderIdempotencyKey),
	}

	account, ok := h.resolve(c)
	if !ok {
		return
	}

	result, err := h.transferUseCase.Transfer(c.Request.Context(), account.ID, transferReq)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		TransactionID:         result.TransactionID,
		NewBalance:            result.NewBalance,
		CounterpartyAccountID: result.CounterpartyAccountID,
		Replayed:              result.Replayed,
	})
}
