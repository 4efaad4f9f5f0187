package m_raffle

import (
	"math/big"
	"time"
)

// Data represents the database model for the raffles table.
type Data struct {
	RaffleID     string    `spanner:"raffle_id"`
	Title        string    `spanner:"title"`
	Prize        string    `spanner:"prize"`
	Category     string    `spanner:"category"`
	TicketPrice  big.Rat   `spanner:"ticket_price"`
	TicketsTotal int64     `spanner:"tickets_total"`
	TicketsSold  int64     `spanner:"tickets_sold"`
	EndsAt       time.Time `spanner:"ends_at"`
	Status       string    `spanner:"status"`
	Featured     bool      `spanner:"featured"`
	CreatedAt    time.Time `spanner:"created_at"`
}
