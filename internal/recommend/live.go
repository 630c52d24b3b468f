package recommend

import "cryptobuddy/internal/domain"

const (
	liveRankCeiling      = 50
	liveSustainableMin   = 6
	liveSustainWeight    = 0.6
	liveProfitWeight     = 0.4
	liveProfitNormOffset = 5
)

// liveProfit keeps coins up over 24h and rewards a small market-cap rank.
// A missing rank counts as the ceiling.
func liveProfit(f domain.CoinFact) (float64, bool) {
	if f.PriceChangePct24h <= 0 {
		return 0, false
	}
	rank := f.MarketCapRank
	if rank <= 0 || rank > liveRankCeiling {
		rank = liveRankCeiling
	}
	return f.PriceChangePct24h + float64(liveRankCeiling-rank), true
}

func liveSustainability(f domain.CoinFact) (float64, bool) {
	if f.SustainabilityScore < liveSustainableMin {
		return 0, false
	}
	return float64(f.SustainabilityScore) + f.PriceChangePct24h/10, true
}

func liveBalanced(f domain.CoinFact) (float64, bool) {
	profitNorm := clamp(f.PriceChangePct24h+liveProfitNormOffset, 0, 10)
	return float64(f.SustainabilityScore)*liveSustainWeight + profitNorm*liveProfitWeight, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
