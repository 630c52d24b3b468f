package nlp

import (
	"strings"

	"cryptobuddy/internal/domain"
)

const (
	highUrgencyPolarity     = -0.3
	positiveUrgencyPolarity = 0.5
)

// Extractor turns a free-text message into entities. Matching is plain
// substring search on the lowercased text, so short aliases can fire inside
// unrelated words.
type Extractor struct {
	coins []domain.Coin
}

func NewExtractor(coins []domain.Coin) *Extractor {
	return &Extractor{coins: coins}
}

func (e *Extractor) Extract(text string) domain.Entities {
	lower := strings.ToLower(text)
	polarity := Polarity(lower)

	return domain.Entities{
		MentionedCoins:    e.mentionedCoins(lower),
		Intent:            classifyIntent(lower),
		SentimentPolarity: polarity,
		Urgency:           classifyUrgency(lower, polarity),
		Greeting:          isGreeting(lower),
	}
}

func (e *Extractor) mentionedCoins(lower string) []string {
	ids := []string{}
	for _, c := range e.coins {
		for _, alias := range coinAliases(c) {
			if strings.Contains(lower, alias) {
				ids = append(ids, c.ID)
				break
			}
		}
	}
	return ids
}

func coinAliases(c domain.Coin) []string {
	aliases := make([]string, 0, len(c.Aliases)+2)
	aliases = append(aliases, strings.ToLower(c.Name), strings.ToLower(c.Symbol))
	for _, a := range c.Aliases {
		aliases = append(aliases, strings.ToLower(a))
	}
	return aliases
}

func classifyIntent(lower string) domain.Intent {
	for _, row := range intentTable {
		if containsAny(lower, row.keywords) {
			return row.intent
		}
	}
	return domain.IntentNone
}

func classifyUrgency(lower string, polarity float64) domain.Urgency {
	switch {
	case containsAny(lower, urgencyKeywords) || polarity < highUrgencyPolarity:
		return domain.UrgencyHigh
	case polarity > positiveUrgencyPolarity:
		return domain.UrgencyPositive
	default:
		return domain.UrgencyNormal
	}
}

func isGreeting(lower string) bool {
	for _, tok := range tokenize(lower) {
		if greetingWords[tok] {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// ResolveIntent picks the intent to serve when none was recognized: a message
// naming coins is a price question, anything else gets the help text.
func ResolveIntent(ent domain.Entities) domain.Intent {
	if ent.Intent != domain.IntentNone {
		return ent.Intent
	}
	if len(ent.MentionedCoins) > 0 {
		return domain.IntentPrice
	}
	return domain.IntentHelp
}
