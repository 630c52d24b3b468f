package advisor

import (
	"testing"
	"time"

	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/nlp"
	"cryptobuddy/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveBitcoin() domain.CoinFact {
	return domain.CoinFact{
		ID:                  "bitcoin",
		Name:                "Bitcoin",
		Symbol:              "BTC",
		Source:              domain.SourceLive,
		CurrentPrice:        64123.45,
		PriceChangePct24h:   2.5,
		MarketCap:           1.26e12,
		MarketCapRank:       1,
		TotalVolume:         3.2e10,
		High24h:             65000,
		Low24h:              62000,
		LastUpdated:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		SustainabilityScore: 3,
	}
}

func TestComposeLivePriceBlock(t *testing.T) {
	reply := NewComposer().Compose(domain.IntentPrice, domain.Entities{}, ComposeData{
		Coins: []domain.CoinFact{liveBitcoin()},
	})

	assert.Equal(t, domain.IntentPrice, reply.Intent)
	assert.Equal(t, "💰 Information about Bitcoin (BTC):", reply.Headline)
	assert.Contains(t, reply.Detail, "• Price: $64,123.45")
	assert.Contains(t, reply.Detail, "• 24h change: +2.50%")
	assert.Contains(t, reply.Detail, "• Market cap: $1.26T (rank #1)")
	assert.Contains(t, reply.Detail, "• 24h volume: $32.00B")
	assert.Contains(t, reply.Detail, "• 24h range: $62,000.00 - $65,000.00")
	assert.Contains(t, reply.Detail, "• Sustainability score: 3/10")
}

func TestComposeComparisonNeedsTwoCoins(t *testing.T) {
	reply := NewComposer().Compose(domain.IntentComparison, domain.Entities{MentionedCoins: []string{"bitcoin"}}, ComposeData{
		Coins: []domain.CoinFact{liveBitcoin()},
	})

	assert.Equal(t, domain.IntentComparison, reply.Intent)
	assert.Contains(t, reply.Headline, "at least two coins")
}

func TestComposeEmptyRankings(t *testing.T) {
	c := NewComposer()

	assert.Contains(t, c.Compose(domain.IntentProfit, domain.Entities{}, ComposeData{}).Headline, "No highly profitable coins found")
	assert.Contains(t, c.Compose(domain.IntentSustainability, domain.Entities{}, ComposeData{}).Headline, "No highly sustainable coins found")
	assert.Contains(t, c.Compose(domain.IntentBalanced, domain.Entities{}, ComposeData{}).Headline, "Couldn't find a balanced recommendation")
}

func TestComposeRunnersUpCappedAtTwo(t *testing.T) {
	var ranking []domain.RankedCoin
	for _, c := range domain.StaticCoins {
		ranking = append(ranking, domain.RankedCoin{CoinID: c.ID, Fact: domain.CoinFact{ID: c.ID, Name: c.Name, Symbol: c.Symbol}})
	}

	reply := NewComposer().Compose(domain.IntentBalanced, domain.Entities{}, ComposeData{Ranking: ranking})
	assert.Contains(t, reply.Detail, "Also worth a look: Ethereum (ETH), Cardano (ADA)")
	assert.NotContains(t, reply.Detail, "Solana (SOL)")
}

func TestComposeUrgencyLines(t *testing.T) {
	c := NewComposer()

	positive := c.Compose(domain.IntentHelp, domain.Entities{Urgency: domain.UrgencyPositive}, ComposeData{})
	assert.Contains(t, positive.Detail, "Love the enthusiasm")

	normal := c.Compose(domain.IntentHelp, domain.Entities{Urgency: domain.UrgencyNormal}, ComposeData{})
	assert.NotContains(t, normal.Detail, "Take a breath")
	assert.NotContains(t, normal.Detail, "Love the enthusiasm")
}

func TestComposeUnknownIntentFallsBack(t *testing.T) {
	reply := NewComposer().Compose(domain.IntentNone, domain.Entities{}, ComposeData{})
	assert.Equal(t, domain.IntentFallback, reply.Intent)
	assert.Contains(t, reply.Detail, "type 'help'")
}

// A recommendation headline fed back through the extractor names the same coin.
func TestRecommendationHeadlineRoundTrip(t *testing.T) {
	extractor := nlp.NewExtractor(domain.LiveCoins)
	c := NewComposer()

	for _, coin := range domain.LiveCoins {
		fact := domain.CoinFact{ID: coin.ID, Name: coin.Name, Symbol: coin.Symbol}
		for _, kind := range recommend.Kinds {
			intent := domain.Intent(kind)
			reply := c.Compose(intent, domain.Entities{}, ComposeData{
				Ranking: []domain.RankedCoin{{CoinID: coin.ID, Fact: fact}},
			})
			got := extractor.Extract(reply.Headline).MentionedCoins
			require.Contains(t, got, coin.ID, "headline %q", reply.Headline)
		}
	}
}
