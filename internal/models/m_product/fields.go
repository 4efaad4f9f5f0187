package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID            = "product_id"
	Name                 = "name"
	Description          = "description"
	Category             = "category"
	BasePriceNumerator   = "base_price_numerator"
	BasePriceDenominator = "base_price_denominator"
	DiscountPercent      = "discount_percent"
	DiscountStartDate    = "discount_start_date"
	DiscountEndDate      = "discount_end_date"
	Rating               = "rating"
	Featured             = "featured"
	Status               = "status"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
	ArchivedAt           = "archived_at"
)

// Columns lists the columns read into Data, in struct order.
var Columns = []string{
	ProductID, Name, Description, Category,
	BasePriceNumerator, BasePriceDenominator,
	DiscountPercent, DiscountStartDate, DiscountEndDate,
	Rating, Featured, Status, CreatedAt, UpdatedAt, ArchivedAt,
}
