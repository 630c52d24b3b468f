package recommend

import "cryptobuddy/internal/domain"

const (
	// staticHighCapWeight exceeds the largest sustainability score.
	staticHighCapWeight  = 11
	staticSustainableMin = 7
	staticBalancedMin    = 5
)

// staticProfit keeps rising coins with a high or medium cap. High-cap coins
// always outrank medium ones; sustainability breaks ties within a tier.
func staticProfit(f domain.CoinFact) (float64, bool) {
	if f.PriceTrend != domain.TrendRising {
		return 0, false
	}
	if f.MarketCapTier != domain.TierHigh && f.MarketCapTier != domain.TierMedium {
		return 0, false
	}
	var tierFlag float64
	if f.MarketCapTier == domain.TierHigh {
		tierFlag = 1
	}
	return tierFlag*staticHighCapWeight + float64(f.SustainabilityScore), true
}

func staticSustainability(f domain.CoinFact) (float64, bool) {
	if f.EnergyUse != domain.TierLow || f.SustainabilityScore < staticSustainableMin {
		return 0, false
	}
	return float64(f.SustainabilityScore), true
}

func staticBalanced(f domain.CoinFact) (float64, bool) {
	if f.PriceTrend != domain.TrendRising && f.PriceTrend != domain.TrendStable {
		return 0, false
	}
	if f.SustainabilityScore < staticBalancedMin {
		return 0, false
	}
	return staticProfitPoints(f.PriceTrend) + staticMarketPoints(f.MarketCapTier) + float64(f.SustainabilityScore), true
}

func staticProfitPoints(trend domain.PriceTrend) float64 {
	switch trend {
	case domain.TrendRising:
		return 3
	case domain.TrendStable:
		return 1
	default:
		return 0
	}
}

func staticMarketPoints(tier domain.Tier) float64 {
	switch tier {
	case domain.TierHigh:
		return 3
	case domain.TierMedium:
		return 2
	default:
		return 1
	}
}
