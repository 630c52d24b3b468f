package domain

import "time"

type Intent string

const (
	IntentNone           Intent = ""
	IntentProfit         Intent = "profit"
	IntentSustainability Intent = "sustainability"
	IntentBalanced       Intent = "balanced"
	IntentPrice          Intent = "price"
	IntentComparison     Intent = "comparison"
	IntentHelp           Intent = "help"
	IntentFallback       Intent = "fallback"
)

type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyHigh     Urgency = "high"
	UrgencyPositive Urgency = "positive"
)

// Entities is the parse of a single user message.
type Entities struct {
	MentionedCoins    []string `json:"mentioned_coins"`
	Intent            Intent   `json:"intent"`
	SentimentPolarity float64  `json:"sentiment_polarity"`
	Urgency           Urgency  `json:"urgency"`
	Greeting          bool     `json:"greeting"`
}

// Reply is the composed bot answer.
type Reply struct {
	Intent   Intent `json:"intent"`
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
}

// Exchange is one user message together with the reply it produced.
type Exchange struct {
	UserMessage string    `json:"user_message"`
	Reply       Reply     `json:"reply"`
	Entities    Entities  `json:"entities"`
	Timestamp   time.Time `json:"timestamp"`
}
