package recommend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cryptobuddy/internal/domain"
)

// ErrNoMatch is returned by Best when no coin passes the ranking's filter.
var ErrNoMatch = errors.New("no coin matches")

// ErrUnknownKind is returned by ParseKind for unsupported ranking names.
var ErrUnknownKind = errors.New("unknown recommendation kind")

type Kind string

const (
	KindProfit         Kind = "profit"
	KindSustainability Kind = "sustainability"
	KindBalanced       Kind = "balanced"
)

// Kinds lists the supported rankings.
var Kinds = []Kind{KindProfit, KindSustainability, KindBalanced}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// KindForIntent maps a recommendation intent to its ranking.
func KindForIntent(intent domain.Intent) (Kind, bool) {
	switch intent {
	case domain.IntentProfit:
		return KindProfit, true
	case domain.IntentSustainability:
		return KindSustainability, true
	case domain.IntentBalanced:
		return KindBalanced, true
	default:
		return "", false
	}
}

type scorer func(domain.CoinFact) (float64, bool)

// Rank filters and scores facts for the given mode and kind. The result is
// sorted by score descending; ties keep the input order. It is nil when no
// coin passes the filter.
func Rank(mode domain.DataSource, kind Kind, facts []domain.CoinFact) []domain.RankedCoin {
	score := scorerFor(mode, kind)
	if score == nil {
		return nil
	}

	var ranked []domain.RankedCoin
	for _, f := range facts {
		s, ok := score(f)
		if !ok {
			continue
		}
		ranked = append(ranked, domain.RankedCoin{
			CoinID:              f.ID,
			Fact:                f,
			Score:               s,
			SustainabilityScore: f.SustainabilityScore,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Best returns the top-ranked coin or ErrNoMatch.
func Best(mode domain.DataSource, kind Kind, facts []domain.CoinFact) (domain.RankedCoin, error) {
	ranked := Rank(mode, kind, facts)
	if len(ranked) == 0 {
		return domain.RankedCoin{}, fmt.Errorf("%s ranking: %w", kind, ErrNoMatch)
	}
	return ranked[0], nil
}

// BalancedScore scores a single coin on the balanced formula for its mode,
// ignoring the filter. Comparisons use it.
func BalancedScore(f domain.CoinFact) float64 {
	if f.IsLive() {
		s, _ := liveBalanced(f)
		return s
	}
	return staticProfitPoints(f.PriceTrend) + staticMarketPoints(f.MarketCapTier) + float64(f.SustainabilityScore)
}

func scorerFor(mode domain.DataSource, kind Kind) scorer {
	if mode == domain.SourceLive {
		switch kind {
		case KindProfit:
			return liveProfit
		case KindSustainability:
			return liveSustainability
		case KindBalanced:
			return liveBalanced
		}
		return nil
	}
	switch kind {
	case KindProfit:
		return staticProfit
	case KindSustainability:
		return staticSustainability
	case KindBalanced:
		return staticBalanced
	}
	return nil
}
