package m_transaction

import (
	"math/big"
	"time"
)

// Data represents the database model for the transactions table.
type Data struct {
	TransactionID string    `spanner:"transaction_id"`
	UserID        string    `spanner:"user_id"`
	Kind          string    `spanner:"kind"`
	Description   string    `spanner:"description"`
	Amount        big.Rat   `spanner:"amount"`
	Status        string    `spanner:"status"`
	CreatedAt     time.Time `spanner:"created_at"`
}
