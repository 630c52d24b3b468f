package advisor

import (
	"fmt"
	"strings"

	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/recommend"
)

const (
	highlySustainableMin = 7
	sustainConcernMax    = 4
	maxRunnersUp         = 2
)

// ComposeData is what the composer may draw on for one reply. Ranking is set
// for recommendation intents, Coins for price and comparison.
type ComposeData struct {
	Ranking []domain.RankedCoin
	Coins   []domain.CoinFact
	Catalog []domain.Coin
}

// Composer turns a resolved intent and its data into reply text. It does no I/O.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

func (c *Composer) Compose(intent domain.Intent, ent domain.Entities, data ComposeData) domain.Reply {
	var reply domain.Reply
	switch intent {
	case domain.IntentProfit, domain.IntentSustainability, domain.IntentBalanced:
		reply = composeRecommendation(intent, data)
	case domain.IntentPrice:
		reply = composePrice(data)
	case domain.IntentComparison:
		reply = composeComparison(data)
	case domain.IntentHelp:
		reply = composeHelp(ent, data.Catalog)
	default:
		reply = composeFallback()
	}
	reply.Detail = paragraphs(reply.Detail, urgencyLine(ent.Urgency))
	return reply
}

func composeRecommendation(intent domain.Intent, data ComposeData) domain.Reply {
	reply := domain.Reply{Intent: intent}
	if len(data.Ranking) == 0 {
		switch intent {
		case domain.IntentProfit:
			reply.Headline = "No highly profitable coins found in current market conditions. Consider balanced options instead."
		case domain.IntentSustainability:
			reply.Headline = "No highly sustainable coins found right now."
		default:
			reply.Headline = "Couldn't find a balanced recommendation at this time."
		}
		return reply
	}

	top := data.Ranking[0]
	label := top.Fact.Label()
	var note string
	switch intent {
	case domain.IntentProfit:
		reply.Headline = fmt.Sprintf("📈 For maximum profitability, consider %s!", label)
		note = "💡 Remember: high profit potential often comes with higher risk!"
	case domain.IntentSustainability:
		reply.Headline = fmt.Sprintf("🌱 For sustainability, I recommend %s!", label)
		note = "🌍 Great choice for environmentally conscious investing!"
	default:
		reply.Headline = fmt.Sprintf("⚖️ For a balanced approach, I suggest %s!", label)
		note = "🎯 This coin offers a good risk, reward and sustainability balance."
	}

	reply.Detail = paragraphs(
		"Why "+label+":\n"+bullets(factors(intent, top)...),
		runnersUp(data.Ranking),
		note,
	)
	return reply
}

func factors(intent domain.Intent, top domain.RankedCoin) []string {
	f := top.Fact
	sust := "Sustainability score: " + formatScore(f.SustainabilityScore)
	if f.IsLive() {
		change := "24h change: " + formatPercent(f.PriceChangePct24h)
		price := "Price: " + formatUSD(f.CurrentPrice)
		capLine := "Market cap: " + formatUSDCompact(f.MarketCap) + " (" + formatRank(f.MarketCapRank) + ")"
		switch intent {
		case domain.IntentProfit:
			return []string{change, capLine, price, sust}
		case domain.IntentSustainability:
			return []string{sust, change, price}
		default:
			return []string{"Good balance of momentum and sustainability", sust, change, capLine}
		}
	}

	trend := "Price trend: " + upper(f.PriceTrend)
	capLine := "Market cap: " + upper(f.MarketCapTier)
	energy := "Energy use: " + upper(f.EnergyUse)
	switch intent {
	case domain.IntentProfit:
		return []string{trend, capLine, sust}
	case domain.IntentSustainability:
		return []string{energy, sust, trend, capLine}
	default:
		return []string{"Good balance of profit and sustainability", trend, capLine, sust, energy}
	}
}

func runnersUp(ranking []domain.RankedCoin) string {
	if len(ranking) < 2 {
		return ""
	}
	rest := ranking[1:]
	if len(rest) > maxRunnersUp {
		rest = rest[:maxRunnersUp]
	}
	labels := make([]string, 0, len(rest))
	for _, r := range rest {
		labels = append(labels, r.Fact.Label())
	}
	return "Also worth a look: " + strings.Join(labels, ", ")
}

func composePrice(data ComposeData) domain.Reply {
	if len(data.Coins) == 0 {
		return composeFallback()
	}

	labels := make([]string, 0, len(data.Coins))
	blocks := make([]string, 0, len(data.Coins))
	for _, f := range data.Coins {
		labels = append(labels, f.Label())
		blocks = append(blocks, coinBlock(f))
	}
	return domain.Reply{
		Intent:   domain.IntentPrice,
		Headline: "💰 Information about " + strings.Join(labels, ", ") + ":",
		Detail:   paragraphs(blocks...),
	}
}

func coinBlock(f domain.CoinFact) string {
	header := f.Label() + " details:\n"
	if f.IsLive() {
		return header + bullets(
			"Price: "+formatUSD(f.CurrentPrice),
			"24h change: "+formatPercent(f.PriceChangePct24h),
			"Market cap: "+formatUSDCompact(f.MarketCap)+" ("+formatRank(f.MarketCapRank)+")",
			"24h volume: "+formatUSDCompact(f.TotalVolume),
			"24h range: "+formatUSD(f.Low24h)+" - "+formatUSD(f.High24h),
			"Sustainability score: "+formatScore(f.SustainabilityScore),
		)
	}
	block := header + bullets(
		"Price trend: "+upper(f.PriceTrend),
		"Market cap: "+upper(f.MarketCapTier),
		"Energy use: "+upper(f.EnergyUse),
		"Sustainability score: "+formatScore(f.SustainabilityScore),
	)
	if note := sustainabilityNote(f.SustainabilityScore); note != "" {
		block += "\n" + note
	}
	return block
}

func sustainabilityNote(score int) string {
	switch {
	case score >= highlySustainableMin:
		return "🌟 Highly sustainable!"
	case score <= sustainConcernMax:
		return "⚠️ Has sustainability concerns."
	default:
		return ""
	}
}

func composeComparison(data ComposeData) domain.Reply {
	if len(data.Coins) < 2 {
		return domain.Reply{
			Intent:   domain.IntentComparison,
			Headline: "🔍 I need at least two coins to compare.",
			Detail:   `Try something like "compare bitcoin and cardano".`,
		}
	}

	labels := make([]string, 0, len(data.Coins))
	lines := make([]string, 0, len(data.Coins))
	best := 0
	bestScore := recommend.BalancedScore(data.Coins[0])
	for i, f := range data.Coins {
		labels = append(labels, f.Label())
		lines = append(lines, comparisonLine(f))
		if s := recommend.BalancedScore(f); s > bestScore {
			best, bestScore = i, s
		}
	}

	verdict := fmt.Sprintf("🏆 %s scores best on the balanced formula (%.1f).", data.Coins[best].Label(), bestScore)
	return domain.Reply{
		Intent:   domain.IntentComparison,
		Headline: "⚖️ " + strings.Join(labels, " vs "),
		Detail:   paragraphs(bullets(lines...), verdict),
	}
}

func comparisonLine(f domain.CoinFact) string {
	if f.IsLive() {
		return fmt.Sprintf("%s: %s, %s 24h, %s, sustainability %s",
			f.Label(), formatUSD(f.CurrentPrice), formatPercent(f.PriceChangePct24h),
			formatRank(f.MarketCapRank), formatScore(f.SustainabilityScore))
	}
	return fmt.Sprintf("%s: trend %s, cap %s, energy %s, sustainability %s",
		f.Label(), upper(f.PriceTrend), upper(f.MarketCapTier), upper(f.EnergyUse),
		formatScore(f.SustainabilityScore))
}

func composeHelp(ent domain.Entities, catalog []domain.Coin) domain.Reply {
	if ent.Greeting {
		return domain.Reply{
			Intent:   domain.IntentHelp,
			Headline: "👋 Hello! I'm CryptoBuddy, your crypto sidekick!",
			Detail: "I can help you find profitable and sustainable cryptocurrencies. Try asking me about:\n" +
				bullets("Profitable coins 📈", "Sustainable coins 🌱", "Balanced recommendations ⚖️", "Specific coins like Bitcoin or Ethereum"),
		}
	}

	detail := "Available commands:\n" + bullets(
		"Profitable coins: find trending cryptocurrencies",
		"Sustainable or eco-friendly: find green cryptocurrencies",
		"Balanced recommendations: best overall options",
		"Coin info: ask about a coin by name or ticker",
		"Compare: e.g. \"compare bitcoin vs cardano\"",
		"Help: show this message",
	)
	if len(catalog) > 0 {
		names := make([]string, 0, len(catalog))
		for _, c := range catalog {
			names = append(names, c.Name+" ("+c.Symbol+")")
		}
		detail = paragraphs(detail, "Coins I know: "+strings.Join(names, ", "))
	}
	return domain.Reply{
		Intent:   domain.IntentHelp,
		Headline: "💬 I can help you with:",
		Detail:   detail,
	}
}

func composeFallback() domain.Reply {
	return domain.Reply{
		Intent:   domain.IntentFallback,
		Headline: "🤔 I'm not sure I understand. Try asking me about:",
		Detail: bullets(
			"Profitable cryptocurrencies 📈",
			"Sustainable or eco-friendly coins 🌱",
			"Balanced investment options ⚖️",
			"Specific coins like Bitcoin or Ethereum",
			"Or type 'help' for more options",
		),
	}
}

func urgencyLine(u domain.Urgency) string {
	switch u {
	case domain.UrgencyHigh:
		return "⏸️ Take a breath: crypto markets move fast, so avoid rushed decisions and never invest more than you can afford to lose."
	case domain.UrgencyPositive:
		return "😊 Love the enthusiasm! Keep diversifying and stay curious."
	default:
		return ""
	}
}
