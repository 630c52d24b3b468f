package nlp

import "cryptobuddy/internal/domain"

type intentKeywords struct {
	intent   domain.Intent
	keywords []string
}

// intentTable is checked top to bottom; the first intent with any keyword
// contained in the message wins.
var intentTable = []intentKeywords{
	{domain.IntentProfit, []string{"profit", "make money", "trending", "rising", "gain", "returns"}},
	{domain.IntentSustainability, []string{"sustainab", "eco", "green", "environment", "energy efficient", "carbon"}},
	{domain.IntentBalanced, []string{"balanced", "best", "recommend", "advice", "suggest"}},
	{domain.IntentPrice, []string{"price", "worth", "cost", "how much", "value", "info", "about"}},
	{domain.IntentComparison, []string{"compare", "versus", "vs", "difference", "better than"}},
	{domain.IntentHelp, []string{"help", "hello", "hey", "what can you do", "commands"}},
}

var urgencyKeywords = []string{"now", "immediately", "urgent", "asap", "quick"}

// greetingWords match whole tokens only.
var greetingWords = map[string]bool{
	"hi":        true,
	"hello":     true,
	"hey":       true,
	"greetings": true,
}
