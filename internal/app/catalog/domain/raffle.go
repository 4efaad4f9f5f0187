package domain

import "time"

// RaffleStatus is the lifecycle of a raffle.
type RaffleStatus string

const (
	RaffleOpen   RaffleStatus = "open"
	RaffleClosed RaffleStatus = "closed"
	RaffleDrawn  RaffleStatus = "drawn"
)

// Raffle is a prize draw customers buy tickets for.
type Raffle struct {
	RaffleID     string    `json:"raffle_id"`
	Title        string    `json:"title"`
	Prize        string    `json:"prize"`
	Category     string    `json:"category"`
	TicketPrice  float64   `json:"ticket_price"`
	TicketsTotal int64     `json:"tickets_total"`
	TicketsSold  int64     `json:"tickets_sold"`
	EndsAt       time.Time `json:"ends_at"`
	Status       string    `json:"status"`
	Featured     bool      `json:"featured"`
}

// TicketsLeft returns the unsold tickets, never negative.
func (r Raffle) TicketsLeft() int64 {
	return max(r.TicketsTotal-r.TicketsSold, 0)
}

// ValidRaffleStatus reports whether s is a known raffle status.
func ValidRaffleStatus(s string) bool {
	switch RaffleStatus(s) {
	case RaffleOpen, RaffleClosed, RaffleDrawn:
		return true
	}
	return false
}
