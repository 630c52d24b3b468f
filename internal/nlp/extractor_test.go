package nlp

import (
	"encoding/json"
	"testing"

	"cryptobuddy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIntentPriority(t *testing.T) {
	e := NewExtractor(domain.StaticCoins)

	tests := []struct {
		text string
		want domain.Intent
	}{
		{"show me profitable and green coins", domain.IntentProfit},
		{"Which coin is trending up?", domain.IntentProfit},
		{"what's the most sustainable crypto", domain.IntentSustainability},
		{"I hate green tea", domain.IntentSustainability},
		{"give me your best advice", domain.IntentBalanced},
		{"how much is bitcoin worth", domain.IntentPrice},
		{"tell me about cardano", domain.IntentPrice},
		{"compare btc and eth", domain.IntentComparison},
		{"solana versus polkadot", domain.IntentComparison},
		{"help", domain.IntentHelp},
		{"what can you do", domain.IntentHelp},
		{"cardano", domain.IntentNone},
		{"", domain.IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).Intent)
		})
	}
}

func TestExtractCoinMentions(t *testing.T) {
	e := NewExtractor(domain.StaticCoins)

	for _, text := range []string{"BTC", "bitcoin", "Bitcoin!!", "xbt please"} {
		assert.Equal(t, []string{"bitcoin"}, e.Extract(text).MentionedCoins, text)
	}

	got := e.Extract("polkadot or eth or Ethereum or bitcoin").MentionedCoins
	assert.Equal(t, []string{"bitcoin", "ethereum", "polkadot"}, got)

	assert.Empty(t, e.Extract("what should I buy").MentionedCoins)
}

func TestExtractSubstringFalsePositive(t *testing.T) {
	e := NewExtractor(domain.StaticCoins)

	assert.Equal(t, []string{"cardano"}, e.Extract("I live in canada").MentionedCoins)
}

func TestExtractLiveCatalog(t *testing.T) {
	e := NewExtractor(domain.LiveCoins)

	got := e.Extract("is doge or avax better than polygon?")
	assert.Equal(t, []string{"dogecoin", "avalanche-2", "matic-network"}, got.MentionedCoins)
	assert.Equal(t, domain.IntentComparison, got.Intent)
}

func TestExtractUrgency(t *testing.T) {
	e := NewExtractor(domain.StaticCoins)

	tests := []struct {
		text string
		want domain.Urgency
	}{
		{"should I buy bitcoin now", domain.UrgencyHigh},
		{"URGENT: sell?", domain.UrgencyHigh},
		{"I am so scared", domain.UrgencyHigh},
		{"that is not good", domain.UrgencyHigh},
		{"this is great", domain.UrgencyPositive},
		{"tell me about cardano", domain.UrgencyNormal},
		{"not bad at all", domain.UrgencyNormal},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).Urgency)
		})
	}
}

func TestExtractGreetingIsWholeWord(t *testing.T) {
	e := NewExtractor(domain.StaticCoins)

	assert.True(t, e.Extract("Hi there").Greeting)
	assert.True(t, e.Extract("hey, greetings!").Greeting)
	assert.False(t, e.Extract("this coin").Greeting)
	assert.False(t, e.Extract("which one").Greeting)
}

func TestResolveIntent(t *testing.T) {
	assert.Equal(t, domain.IntentPrice, ResolveIntent(domain.Entities{MentionedCoins: []string{"solana"}}))
	assert.Equal(t, domain.IntentHelp, ResolveIntent(domain.Entities{}))
	assert.Equal(t, domain.IntentProfit, ResolveIntent(domain.Entities{Intent: domain.IntentProfit}))
}

func TestExtractNoMentionsEncodesEmptyList(t *testing.T) {
	e := NewExtractor(domain.StaticCoins)
	ent := e.Extract("what should I buy")

	assert.NotNil(t, ent.MentionedCoins)
	raw, err := json.Marshal(ent)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"mentioned_coins":[]`)
}
