package domain

import "time"

type PriceTrend string

const (
	TrendRising  PriceTrend = "rising"
	TrendStable  PriceTrend = "stable"
	TrendFalling PriceTrend = "falling"
)

type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

type DataSource string

const (
	SourceStatic DataSource = "static"
	SourceLive   DataSource = "live"
)

// CoinFact holds what is known about one coin for the duration of a request.
// Static facts carry the discrete trend/tier/energy enums; live facts carry
// market numbers and have the enums derived from them.
type CoinFact struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Symbol string     `json:"symbol"`
	Source DataSource `json:"source"`

	PriceTrend    PriceTrend `json:"price_trend"`
	MarketCapTier Tier       `json:"market_cap_tier"`
	EnergyUse     Tier       `json:"energy_use,omitempty"`

	CurrentPrice      float64   `json:"current_price,omitempty"`
	PriceChangePct24h float64   `json:"price_change_pct_24h,omitempty"`
	MarketCap         float64   `json:"market_cap,omitempty"`
	MarketCapRank     int       `json:"market_cap_rank,omitempty"`
	TotalVolume       float64   `json:"total_volume,omitempty"`
	High24h           float64   `json:"high_24h,omitempty"`
	Low24h            float64   `json:"low_24h,omitempty"`
	LastUpdated       time.Time `json:"last_updated,omitempty"`

	SustainabilityScore int `json:"sustainability_score"`
}

// IsLive reports whether the fact came from the market-data API.
func (c CoinFact) IsLive() bool {
	return c.Source == SourceLive
}

// Label renders the coin as "Name (SYMBOL)".
func (c CoinFact) Label() string {
	return c.Name + " (" + c.Symbol + ")"
}

// RankedCoin is one entry of a recommendation ranking.
type RankedCoin struct {
	CoinID              string   `json:"coin_id"`
	Fact                CoinFact `json:"fact"`
	Score               float64  `json:"score"`
	SustainabilityScore int      `json:"sustainability_score"`
}

// TierFromRank derives a market-cap tier from a market-cap rank.
// A zero rank means the API did not report one.
func TierFromRank(rank int) Tier {
	switch {
	case rank <= 0:
		return TierLow
	case rank <= 10:
		return TierHigh
	case rank <= 50:
		return TierMedium
	default:
		return TierLow
	}
}

// TrendFromChange derives a price trend from the 24h percentage change.
func TrendFromChange(changePct float64) PriceTrend {
	switch {
	case changePct > 1:
		return TrendRising
	case changePct < -1:
		return TrendFalling
	default:
		return TrendStable
	}
}
