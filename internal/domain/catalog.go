package domain

// Coin is a catalog entry: the identity of a coin and every textual form that
// refers to it in a user message.
type Coin struct {
	ID      string
	Name    string
	Symbol  string
	Aliases []string
}

// StaticCoins are the coins of the built-in dataset, in declared order.
var StaticCoins = []Coin{
	{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", Aliases: []string{"bitcoin", "btc", "xbt"}},
	{ID: "ethereum", Name: "Ethereum", Symbol: "ETH", Aliases: []string{"ethereum", "eth", "ether"}},
	{ID: "cardano", Name: "Cardano", Symbol: "ADA", Aliases: []string{"cardano", "ada"}},
	{ID: "solana", Name: "Solana", Symbol: "SOL", Aliases: []string{"solana", "sol"}},
	{ID: "polkadot", Name: "Polkadot", Symbol: "DOT", Aliases: []string{"polkadot", "dot"}},
}

// LiveCoins are the coins tracked against the market-data API, in declared order.
// IDs are CoinGecko identifiers.
var LiveCoins = append(append([]Coin(nil), StaticCoins...),
	Coin{ID: "ripple", Name: "XRP", Symbol: "XRP", Aliases: []string{"xrp", "ripple"}},
	Coin{ID: "dogecoin", Name: "Dogecoin", Symbol: "DOGE", Aliases: []string{"dogecoin", "doge"}},
	Coin{ID: "avalanche-2", Name: "Avalanche", Symbol: "AVAX", Aliases: []string{"avalanche", "avax"}},
	Coin{ID: "chainlink", Name: "Chainlink", Symbol: "LINK", Aliases: []string{"chainlink", "link"}},
	Coin{ID: "matic-network", Name: "Polygon", Symbol: "MATIC", Aliases: []string{"polygon", "matic"}},
)

// DefaultSustainabilityScore applies to coins missing from SustainabilityScores.
const DefaultSustainabilityScore = 5

// SustainabilityScores rates each coin's energy and environmental profile on 0-10.
var SustainabilityScores = map[string]int{
	"bitcoin":       3,
	"ethereum":      6,
	"cardano":       8,
	"solana":        7,
	"polkadot":      9,
	"ripple":        7,
	"dogecoin":      3,
	"avalanche-2":   7,
	"chainlink":     6,
	"matic-network": 8,
}

// SustainabilityScore looks up a coin's score, defaulting to 5 and clamping to [0,10].
func SustainabilityScore(coinID string) int {
	score, ok := SustainabilityScores[coinID]
	if !ok {
		return DefaultSustainabilityScore
	}
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// StaticFacts is the built-in dataset keyed by coin id.
var StaticFacts = map[string]CoinFact{
	"bitcoin":  {PriceTrend: TrendRising, MarketCapTier: TierHigh, EnergyUse: TierHigh},
	"ethereum": {PriceTrend: TrendStable, MarketCapTier: TierHigh, EnergyUse: TierMedium},
	"cardano":  {PriceTrend: TrendRising, MarketCapTier: TierMedium, EnergyUse: TierLow},
	"solana":   {PriceTrend: TrendRising, MarketCapTier: TierMedium, EnergyUse: TierLow},
	"polkadot": {PriceTrend: TrendStable, MarketCapTier: TierMedium, EnergyUse: TierLow},
}

// FindCoin returns the catalog entry with the given id.
func FindCoin(coins []Coin, id string) (Coin, bool) {
	for _, c := range coins {
		if c.ID == id {
			return c, true
		}
	}
	return Coin{}, false
}

// CoinIDs lists the ids of coins in order.
func CoinIDs(coins []Coin) []string {
	ids := make([]string, 0, len(coins))
	for _, c := range coins {
		ids = append(ids, c.ID)
	}
	return ids
}
