package m_ad

// Field name constants for the ads table.
const (
	TableName = "ads"

	AdID          = "ad_id"
	AdvertiserID  = "advertiser_id"
	Title         = "title"
	Category      = "category"
	Status        = "status"
	Budget        = "budget"
	RewardPerView = "reward_per_view"
	Priority      = "priority"
	CreatedAt     = "created_at"
)

// Columns lists the columns read into Data, in struct order.
var Columns = []string{
	AdID, AdvertiserID, Title, Category, Status, Budget, RewardPerView, Priority, CreatedAt,
}
