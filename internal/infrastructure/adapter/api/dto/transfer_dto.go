package dto

// TransferRequest represents the API request for sending funds
type TransferRequest struct {
	Counterparty string `json:"counterparty" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Note         string `json:"note"`
	Category     string `json:"category"`
}

// TransferResponse represents the API response for a completed transfer
type TransferResponse struct {
	TransactionID         string `json:"transactionId"`
	NewBalance            string `json:"newBalance"`
	CounterpartyAccountID string `json:"counterpartyAccountId,omitempty"`
	Replayed              bool   `json:"replayed,omitempty"`
}
