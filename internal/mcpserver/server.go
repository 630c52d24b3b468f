package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/recommend"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	serverName    = "cryptobuddy"
	serverVersion = "1.0.0"
)

// Advisor is the chat and ranking surface exposed as MCP tools.
type Advisor interface {
	Ask(ctx context.Context, userMessage string) (*domain.Exchange, error)
	Recommend(ctx context.Context, kind recommend.Kind) ([]domain.RankedCoin, error)
}

type AskInput struct {
	Message string `json:"message" jsonschema:"the question to ask CryptoBuddy"`
}

type AskOutput struct {
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
	Intent   string `json:"intent"`
}

type RecommendInput struct {
	Kind string `json:"kind" jsonschema:"ranking kind: profit, sustainability or balanced"`
}

type RankedCoin struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Symbol              string  `json:"symbol"`
	Score               float64 `json:"score"`
	SustainabilityScore int     `json:"sustainability_score"`
}

type RecommendOutput struct {
	Kind            string       `json:"kind"`
	Recommendations []RankedCoin `json:"recommendations"`
}

// Server wraps an mcp.Server with the CryptoBuddy tools registered.
type Server struct {
	tracer  trace.Tracer
	advisor Advisor
	logger  logrus.FieldLogger
	mcp     *mcp.Server
}

func New(tracer trace.Tracer, advisor Advisor, logger logrus.FieldLogger) *Server {
	s := &Server{
		tracer:  tracer,
		advisor: advisor,
		logger:  logger.WithField("component", "mcp"),
		mcp:     mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil),
	}
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "ask_cryptobuddy",
		Description: "Ask CryptoBuddy a question about cryptocurrencies: profitability, sustainability, prices or comparisons.",
	}, s.handleAsk)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "recommend",
		Description: "Rank known coins by profit, sustainability or a balanced score.",
	}, s.handleRecommend)
	return s
}

func (s *Server) handleAsk(ctx context.Context, _ *mcp.CallToolRequest, in AskInput) (*mcp.CallToolResult, AskOutput, error) {
	ctx, span := s.tracer.Start(ctx, "mcp.ask")
	defer span.End()

	ex, err := s.advisor.Ask(ctx, in.Message)
	if err != nil {
		span.RecordError(err)
		return nil, AskOutput{}, fmt.Errorf("ask: %w", err)
	}
	span.SetAttributes(attribute.String("intent", string(ex.Reply.Intent)))
	return nil, AskOutput{
		Headline: ex.Reply.Headline,
		Detail:   ex.Reply.Detail,
		Intent:   string(ex.Reply.Intent),
	}, nil
}

func (s *Server) handleRecommend(ctx context.Context, _ *mcp.CallToolRequest, in RecommendInput) (*mcp.CallToolResult, RecommendOutput, error) {
	ctx, span := s.tracer.Start(ctx, "mcp.recommend")
	defer span.End()

	kind, err := recommend.ParseKind(in.Kind)
	if err != nil {
		return nil, RecommendOutput{}, err
	}
	ranked, err := s.advisor.Recommend(ctx, kind)
	if err != nil {
		span.RecordError(err)
		return nil, RecommendOutput{}, fmt.Errorf("recommend: %w", err)
	}

	out := RecommendOutput{Kind: string(kind), Recommendations: make([]RankedCoin, 0, len(ranked))}
	for _, r := range ranked {
		out.Recommendations = append(out.Recommendations, RankedCoin{
			ID:                  r.CoinID,
			Name:                r.Fact.Name,
			Symbol:              r.Fact.Symbol,
			Score:               r.Score,
			SustainabilityScore: r.SustainabilityScore,
		})
	}
	return nil, out, nil
}

// RunStdio serves the tools over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.Info("mcp server on stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPServer returns an http.Server serving the streamable HTTP transport on bind:port.
func (s *Server) HTTPServer(bind string, port int) *http.Server {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.mcp }, nil)
	return &http.Server{
		Addr:    net.JoinHostPort(bind, strconv.Itoa(port)),
		Handler: handler,
	}
}
