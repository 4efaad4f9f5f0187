package domain

import "time"

// AdStatus tracks a campaign through moderation and delivery.
type AdStatus string

const (
	AdPending  AdStatus = "pending"
	AdApproved AdStatus = "approved"
	AdRejected AdStatus = "rejected"
	AdActive   AdStatus = "active"
	AdPaused   AdStatus = "paused"
)

// Ad is an advertiser campaign.
type Ad struct {
	AdID          string    `json:"ad_id"`
	AdvertiserID  string    `json:"advertiser_id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	Budget        float64   `json:"budget"`
	RewardPerView float64   `json:"reward_per_view"`
	Priority      bool      `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
}

// ValidAdStatus reports whether s is a known ad status.
func ValidAdStatus(s string) bool {
	switch AdStatus(s) {
	case AdPending, AdApproved, AdRejected, AdActive, AdPaused:
		return true
	}
	return false
}
