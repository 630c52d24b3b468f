package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cryptobuddy/internal/domain"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	coingeckoBaseURL    = "https://api.coingecko.com/api/v3"
	defaultFetchTimeout = 10 * time.Second
)

// ErrUnknownCoin is returned when the API has no coin with the requested id.
var ErrUnknownCoin = errors.New("unknown coin")

// CoinGeckoProvider fetches per-coin market data from the CoinGecko API.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewCoinGeckoProvider creates a provider with retries and built-in rate limiting.
// Bursts of 10 requests are allowed, refilled at one every 6 seconds, which
// stays inside the public API's per-minute allowance.
func NewCoinGeckoProvider(tracer trace.Tracer, baseURL, apiKey string, timeout time.Duration) *CoinGeckoProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = coingeckoBaseURL
	}
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &CoinGeckoProvider{
		client:  newRetryClient(timeout).StandardClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		tracer:  tracer,
		limiter: NewRateLimiter(10, 6*time.Second),
	}
}

func newRetryClient(timeout time.Duration) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 2
	c.RetryWaitMin = 500 * time.Millisecond
	c.RetryWaitMax = 3 * time.Second
	c.HTTPClient.Timeout = timeout
	c.Logger = nil
	return c
}

type coinResponse struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MarketCapRank int    `json:"market_cap_rank"`
	MarketData    struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
		MarketCap                map[string]float64 `json:"market_cap"`
		MarketCapRank            int                `json:"market_cap_rank"`
		TotalVolume              map[string]float64 `json:"total_volume"`
		High24h                  map[string]float64 `json:"high_24h"`
		Low24h                   map[string]float64 `json:"low_24h"`
		LastUpdated              time.Time          `json:"last_updated"`
	} `json:"market_data"`
}

// FetchCoin fetches current market data for one coin id. The returned fact has
// no sustainability score; that is the repository's concern.
func (p *CoinGeckoProvider) FetchCoin(ctx context.Context, coinID string) (*domain.CoinFact, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.fetch-coin")
	defer span.End()
	span.SetAttributes(attribute.String("coin_id", coinID))

	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("market_data", "true")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")
	q.Set("sparkline", "false")
	endpoint := fmt.Sprintf("%s/coins/%s?%s", p.baseURL, url.PathEscape(coinID), q.Encode())

	body, err := p.doRequest(ctx, endpoint)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("fetch coin %s: %w", coinID, err)
	}

	var raw coinResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse coin %s: %w", coinID, err)
	}

	return coinFactFromResponse(coinID, raw), nil
}

func coinFactFromResponse(coinID string, raw coinResponse) *domain.CoinFact {
	md := raw.MarketData
	rank := raw.MarketCapRank
	if rank == 0 {
		rank = md.MarketCapRank
	}
	id := raw.ID
	if id == "" {
		id = coinID
	}

	return &domain.CoinFact{
		ID:                id,
		Name:              raw.Name,
		Symbol:            strings.ToUpper(raw.Symbol),
		Source:            domain.SourceLive,
		PriceTrend:        domain.TrendFromChange(md.PriceChangePercentage24h),
		MarketCapTier:     domain.TierFromRank(rank),
		CurrentPrice:      md.CurrentPrice["usd"],
		PriceChangePct24h: md.PriceChangePercentage24h,
		MarketCap:         md.MarketCap["usd"],
		MarketCapRank:     rank,
		TotalVolume:       md.TotalVolume["usd"],
		High24h:           md.High24h["usd"],
		Low24h:            md.Low24h["usd"],
		LastUpdated:       md.LastUpdated,
	}
}

func (p *CoinGeckoProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUnknownCoin
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
