package repo

import (
	"fmt"
	"math/big"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_ad"
	"github.com/light-bringer/storefront-service/internal/models/m_plan"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_raffle"
	"github.com/light-bringer/storefront-service/internal/models/m_transaction"
)

func amount(r *big.Rat) float64 {
	return domain.NewMoneyFromRat(r).Float64()
}

// productFromData converts a products row, applying a discount valid at now.
func productFromData(data *m_product.Data, now time.Time) (domain.Product, error) {
	basePrice, err := domain.NewMoney(data.BasePriceNumerator, data.BasePriceDenominator)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: invalid base price: %w", data.ProductID, err)
	}

	p := domain.Product{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Rating:      data.Rating,
		Featured:    data.Featured,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
	}

	var discount *domain.Discount
	if data.DiscountPercent.Valid {
		// A malformed discount row prices the product at its base price.
		discount, _ = domain.NewDiscount(
			data.DiscountPercent.Int64,
			data.DiscountStartDate.Time,
			data.DiscountEndDate.Time,
		)
	}
	domain.PriceProduct(&p, basePrice, discount, now)

	return p, nil
}

func raffleFromData(data *m_raffle.Data) domain.Raffle {
	return domain.Raffle{
		RaffleID:     data.RaffleID,
		Title:        data.Title,
		Prize:        data.Prize,
		Category:     data.Category,
		TicketPrice:  amount(&data.TicketPrice),
		TicketsTotal: data.TicketsTotal,
		TicketsSold:  data.TicketsSold,
		EndsAt:       data.EndsAt,
		Status:       data.Status,
		Featured:     data.Featured,
	}
}

func planFromData(data *m_plan.Data) domain.Plan {
	return domain.Plan{
		PlanID:       data.PlanID,
		Name:         data.Name,
		Operator:     data.Operator,
		Kind:         data.Kind,
		Price:        amount(&data.Price),
		DataGB:       data.DataGB,
		ValidityDays: data.ValidityDays,
		Popular:      data.Popular,
	}
}

func adFromData(data *m_ad.Data) domain.Ad {
	return domain.Ad{
		AdID:          data.AdID,
		AdvertiserID:  data.AdvertiserID,
		Title:         data.Title,
		Category:      data.Category,
		Status:        data.Status,
		Budget:        amount(&data.Budget),
		RewardPerView: amount(&data.RewardPerView),
		Priority:      data.Priority,
		CreatedAt:     data.CreatedAt,
	}
}

func transactionFromData(data *m_transaction.Data) domain.Transaction {
	return domain.Transaction{
		TransactionID: data.TransactionID,
		UserID:        data.UserID,
		Kind:          data.Kind,
		Description:   data.Description,
		Amount:        amount(&data.Amount),
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
	}
}
