package m_transaction

// Field name constants for the transactions table.
const (
	TableName = "transactions"

	TransactionID = "transaction_id"
	UserID        = "user_id"
	Kind          = "kind"
	Description   = "description"
	Amount        = "amount"
	Status        = "status"
	CreatedAt     = "created_at"
)

// Columns lists the columns read into Data, in struct order.
var Columns = []string{
	TransactionID, UserID, Kind, Description, Amount, Status, CreatedAt,
}
