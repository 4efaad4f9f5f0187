package repo

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"gopkg.in/yaml.v3"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_ad"
	"github.com/light-bringer/storefront-service/internal/models/m_plan"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_raffle"
	"github.com/light-bringer/storefront-service/internal/models/m_transaction"
)

// Fixtures is the YAML document describing a catalog. Amounts are decimal
// strings so they survive the trip to NUMERIC columns exactly.
type Fixtures struct {
	Products     []ProductFixture     `yaml:"products"`
	Raffles      []RaffleFixture      `yaml:"raffles"`
	Plans        []PlanFixture        `yaml:"plans"`
	Ads          []AdFixture          `yaml:"ads"`
	Transactions []TransactionFixture `yaml:"transactions"`
}

type DiscountFixture struct {
	Percent int64     `yaml:"percent"`
	Start   time.Time `yaml:"start"`
	End     time.Time `yaml:"end"`
}

type ProductFixture struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Category    string           `yaml:"category"`
	Price       string           `yaml:"price"`
	Discount    *DiscountFixture `yaml:"discount,omitempty"`
	Rating      float64          `yaml:"rating"`
	Featured    bool             `yaml:"featured"`
	Status      string           `yaml:"status"`
	CreatedAt   time.Time        `yaml:"created_at"`
	ArchivedAt  *time.Time       `yaml:"archived_at,omitempty"`
}

type RaffleFixture struct {
	ID           string    `yaml:"id"`
	Title        string    `yaml:"title"`
	Prize        string    `yaml:"prize"`
	Category     string    `yaml:"category"`
	TicketPrice  string    `yaml:"ticket_price"`
	TicketsTotal int64     `yaml:"tickets_total"`
	TicketsSold  int64     `yaml:"tickets_sold"`
	EndsAt       time.Time `yaml:"ends_at"`
	Status       string    `yaml:"status"`
	Featured     bool      `yaml:"featured"`
	CreatedAt    time.Time `yaml:"created_at"`
}

type PlanFixture struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Operator     string  `yaml:"operator"`
	Kind         string  `yaml:"kind"`
	Price        string  `yaml:"price"`
	DataGB       float64 `yaml:"data_gb"`
	ValidityDays int64   `yaml:"validity_days"`
	Popular      bool    `yaml:"popular"`
	// Inactive plans are stored but never listed.
	Inactive bool `yaml:"inactive"`
}

type AdFixture struct {
	ID            string    `yaml:"id"`
	AdvertiserID  string    `yaml:"advertiser_id"`
	Title         string    `yaml:"title"`
	Category      string    `yaml:"category"`
	Status        string    `yaml:"status"`
	Budget        string    `yaml:"budget"`
	RewardPerView string    `yaml:"reward_per_view"`
	Priority      bool      `yaml:"priority"`
	CreatedAt     time.Time `yaml:"created_at"`
}

type TransactionFixture struct {
	ID          string    `yaml:"id"`
	UserID      string    `yaml:"user_id"`
	Kind        string    `yaml:"kind"`
	Description string    `yaml:"description"`
	Amount      string    `yaml:"amount"`
	Status      string    `yaml:"status"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// LoadFixtures reads and validates a fixture file.
func LoadFixtures(path string) (*Rows, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	return ParseFixtures(f)
}

// ParseFixtures decodes a fixture document and converts it to table rows.
// Every invalid record is reported, not only the first.
func ParseFixtures(r io.Reader) (*Rows, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return fx.Rows()
}

// Rows validates the fixtures and converts them to table rows.
func (fx *Fixtures) Rows() (*Rows, error) {
	rows := &Rows{}
	var errs []error

	for _, p := range fx.Products {
		data, err := p.data()
		if err != nil {
			errs = append(errs, fmt.Errorf("product %q: %w", p.ID, err))
			continue
		}
		rows.Products = append(rows.Products, data)
	}
	for _, r := range fx.Raffles {
		data, err := r.data()
		if err != nil {
			errs = append(errs, fmt.Errorf("raffle %q: %w", r.ID, err))
			continue
		}
		rows.Raffles = append(rows.Raffles, data)
	}
	for _, p := range fx.Plans {
		data, err := p.data()
		if err != nil {
			errs = append(errs, fmt.Errorf("plan %q: %w", p.ID, err))
			continue
		}
		rows.Plans = append(rows.Plans, data)
	}
	for _, a := range fx.Ads {
		data, err := a.data()
		if err != nil {
			errs = append(errs, fmt.Errorf("ad %q: %w", a.ID, err))
			continue
		}
		rows.Ads = append(rows.Ads, data)
	}
	for _, t := range fx.Transactions {
		data, err := t.data()
		if err != nil {
			errs = append(errs, fmt.Errorf("transaction %q: %w", t.ID, err))
			continue
		}
		rows.Transactions = append(rows.Transactions, data)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseAmount(field, s string) (big.Rat, error) {
	m, err := domain.ParseMoney(s)
	if err != nil {
		return big.Rat{}, fmt.Errorf("%s: %w", field, err)
	}
	return *m.Rat(), nil
}

func (p ProductFixture) data() (m_product.Data, error) {
	if p.ID == "" {
		return m_product.Data{}, domain.ErrEmptyID
	}
	price, err := domain.ParseMoney(p.Price)
	if err != nil {
		return m_product.Data{}, fmt.Errorf("price: %w", err)
	}
	status := p.Status
	if status == "" {
		status = string(domain.StatusActive)
	}
	switch domain.ProductStatus(status) {
	case domain.StatusActive, domain.StatusInactive, domain.StatusArchived:
	default:
		return m_product.Data{}, fmt.Errorf("%w: %s", domain.ErrInvalidState, status)
	}

	data := m_product.Data{
		ProductID:            p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Category:             p.Category,
		BasePriceNumerator:   price.Numerator(),
		BasePriceDenominator: price.Denominator(),
		Rating:               p.Rating,
		Featured:             p.Featured,
		Status:               status,
		CreatedAt:            p.CreatedAt.UTC(),
	}
	if p.Discount != nil {
		if _, err := domain.NewDiscount(p.Discount.Percent, p.Discount.Start, p.Discount.End); err != nil {
			return m_product.Data{}, err
		}
		data.DiscountPercent = spanner.NullInt64{Int64: p.Discount.Percent, Valid: true}
		data.DiscountStartDate = spanner.NullTime{Time: p.Discount.Start.UTC(), Valid: true}
		data.DiscountEndDate = spanner.NullTime{Time: p.Discount.End.UTC(), Valid: true}
	}
	if p.ArchivedAt != nil {
		data.ArchivedAt = spanner.NullTime{Time: p.ArchivedAt.UTC(), Valid: true}
	}
	return data, nil
}

func (r RaffleFixture) data() (m_raffle.Data, error) {
	if r.ID == "" {
		return m_raffle.Data{}, domain.ErrEmptyID
	}
	if !domain.ValidRaffleStatus(r.Status) {
		return m_raffle.Data{}, fmt.Errorf("%w: %s", domain.ErrInvalidState, r.Status)
	}
	price, err := parseAmount("ticket_price", r.TicketPrice)
	if err != nil {
		return m_raffle.Data{}, err
	}
	return m_raffle.Data{
		RaffleID:     r.ID,
		Title:        r.Title,
		Prize:        r.Prize,
		Category:     r.Category,
		TicketPrice:  price,
		TicketsTotal: r.TicketsTotal,
		TicketsSold:  r.TicketsSold,
		EndsAt:       r.EndsAt.UTC(),
		Status:       r.Status,
		Featured:     r.Featured,
		CreatedAt:    r.CreatedAt.UTC(),
	}, nil
}

func (p PlanFixture) data() (m_plan.Data, error) {
	if p.ID == "" {
		return m_plan.Data{}, domain.ErrEmptyID
	}
	if !domain.ValidPlanKind(p.Kind) {
		return m_plan.Data{}, fmt.Errorf("%w: %s", domain.ErrInvalidKind, p.Kind)
	}
	price, err := parseAmount("price", p.Price)
	if err != nil {
		return m_plan.Data{}, err
	}
	return m_plan.Data{
		PlanID:       p.ID,
		Name:         p.Name,
		Operator:     p.Operator,
		Kind:         p.Kind,
		Price:        price,
		DataGB:       p.DataGB,
		ValidityDays: p.ValidityDays,
		Popular:      p.Popular,
		Active:       !p.Inactive,
	}, nil
}

func (a AdFixture) data() (m_ad.Data, error) {
	if a.ID == "" || a.AdvertiserID == "" {
		return m_ad.Data{}, domain.ErrEmptyID
	}
	if !domain.ValidAdStatus(a.Status) {
		return m_ad.Data{}, fmt.Errorf("%w: %s", domain.ErrInvalidState, a.Status)
	}
	budget, err := parseAmount("budget", a.Budget)
	if err != nil {
		return m_ad.Data{}, err
	}
	reward, err := parseAmount("reward_per_view", a.RewardPerView)
	if err != nil {
		return m_ad.Data{}, err
	}
	return m_ad.Data{
		AdID:          a.ID,
		AdvertiserID:  a.AdvertiserID,
		Title:         a.Title,
		Category:      a.Category,
		Status:        a.Status,
		Budget:        budget,
		RewardPerView: reward,
		Priority:      a.Priority,
		CreatedAt:     a.CreatedAt.UTC(),
	}, nil
}

func (t TransactionFixture) data() (m_transaction.Data, error) {
	if t.ID == "" || t.UserID == "" {
		return m_transaction.Data{}, domain.ErrEmptyID
	}
	if !domain.ValidTransactionKind(t.Kind) {
		return m_transaction.Data{}, fmt.Errorf("%w: %s", domain.ErrInvalidKind, t.Kind)
	}
	amt, err := parseAmount("amount", t.Amount)
	if err != nil {
		return m_transaction.Data{}, err
	}
	return m_transaction.Data{
		TransactionID: t.ID,
		UserID:        t.UserID,
		Kind:          t.Kind,
		Description:   t.Description,
		Amount:        amt,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt.UTC(),
	}, nil
}
