package m_ad

import (
	"math/big"
	"time"
)

// Data represents the database model for the ads table.
type Data struct {
	AdID          string    `spanner:"ad_id"`
	AdvertiserID  string    `spanner:"advertiser_id"`
	Title         string    `spanner:"title"`
	Category      string    `spanner:"category"`
	Status        string    `spanner:"status"`
	Budget        big.Rat   `spanner:"budget"`
	RewardPerView big.Rat   `spanner:"reward_per_view"`
	Priority      bool      `spanner:"priority"`
	CreatedAt     time.Time `spanner:"created_at"`
}
