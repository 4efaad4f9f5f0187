package m_raffle

// Field name constants for the raffles table.
const (
	TableName = "raffles"

	RaffleID     = "raffle_id"
	Title        = "title"
	Prize        = "prize"
	Category     = "category"
	TicketPrice  = "ticket_price"
	TicketsTotal = "tickets_total"
	TicketsSold  = "tickets_sold"
	EndsAt       = "ends_at"
	Status       = "status"
	Featured     = "featured"
	CreatedAt    = "created_at"
)

// Columns lists the columns read into Data, in struct order.
var Columns = []string{
	RaffleID, Title, Prize, Category, TicketPrice,
	TicketsTotal, TicketsSold, EndsAt, Status, Featured, CreatedAt,
}
