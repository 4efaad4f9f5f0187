package domain

import "time"

// TransactionKind classifies wallet movements.
type TransactionKind string

const (
	TxCredit   TransactionKind = "credit"
	TxDebit    TransactionKind = "debit"
	TxReward   TransactionKind = "reward"
	TxReferral TransactionKind = "referral"
)

// Transaction is a wallet history entry.
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Kind          string    `json:"kind"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ValidTransactionKind reports whether s is a known transaction kind.
func ValidTransactionKind(s string) bool {
	switch TransactionKind(s) {
	case TxCredit, TxDebit, TxReward, TxReferral:
		return true
	}
	return false
}
