package handler

import (
	"context"

	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/recommend"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// ChatService answers free-text messages.
type ChatService interface {
	Ask(ctx context.Context, message string) (*domain.Exchange, error)
}

// CoinLookup reads coin facts.
type CoinLookup interface {
	Get(ctx context.Context, coinID string) (*domain.CoinFact, error)
	GetAll(ctx context.Context) ([]domain.CoinFact, error)
	Mode() domain.DataSource
}

// Recommender ranks coins for a recommendation kind.
type Recommender interface {
	Recommend(ctx context.Context, kind recommend.Kind) ([]domain.RankedCoin, error)
}

type Handler struct {
	tracer      trace.Tracer
	chat        ChatService
	coins       CoinLookup
	recommender Recommender
	logger      logrus.FieldLogger
}

func New(tracer trace.Tracer, chat ChatService, coins CoinLookup, recommender Recommender, logger logrus.FieldLogger) *Handler {
	return &Handler{
		tracer:      tracer,
		chat:        chat,
		coins:       coins,
		recommender: recommender,
		logger:      logger.WithField("component", "http"),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.POST("/send_message", h.SendMessage)

	api := r.Group("/api")
	api.POST("/chat", h.SendMessage)
	api.GET("/coins", h.ListCoins)
	api.GET("/coins/:id", h.GetCoin)
	api.GET("/recommendations/:kind", h.GetRecommendations)

	r.GET("/ws/chat", h.ChatSocket)
}
