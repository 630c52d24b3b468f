package handler

import (
	"errors"
	"net/http"
	"strings"

	"cryptobuddy/internal/recommend"
	"cryptobuddy/internal/repository"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// ListCoins godoc
// @Summary      List coins
// @Description  Returns facts for every coin that could be resolved, in catalog order
// @Tags         coins
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/coins [get]
func (h *Handler) ListCoins(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.list-coins")
	defer span.End()

	facts, err := h.coins.GetAll(ctx)
	if err != nil {
		h.logger.WithError(err).Warn("list coins failed")
		c.JSON(http.StatusOK, gin.H{"coins": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coins": facts})
}

// GetCoin godoc
// @Summary      Get one coin
// @Description  Returns the facts for a coin id (e.g. bitcoin, cardano)
// @Tags         coins
// @Produce      json
// @Param        id  path  string  true  "Coin id"
// @Success      200  {object}  domain.CoinFact
// @Failure      404  {object}  map[string]string
// @Router       /api/coins/{id} [get]
func (h *Handler) GetCoin(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-coin")
	defer span.End()

	id := strings.ToLower(strings.TrimSpace(c.Param("id")))
	span.SetAttributes(attribute.String("coin_id", id))

	fact, err := h.coins.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDataUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "data for " + id + " is currently unavailable"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown coin: " + id})
		return
	}
	c.JSON(http.StatusOK, fact)
}

// GetRecommendations godoc
// @Summary      Rank coins
// @Description  Ranks coins by profit, sustainability or a balanced score; the list is empty when nothing qualifies
// @Tags         coins
// @Produce      json
// @Param        kind  path  string  true  "profit, sustainability or balanced"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/recommendations/{kind} [get]
func (h *Handler) GetRecommendations(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-recommendations")
	defer span.End()

	kind, err := recommend.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           err.Error(),
			"supported_kinds": recommend.Kinds,
		})
		return
	}
	span.SetAttributes(attribute.String("kind", string(kind)))

	ranked, err := h.recommender.Recommend(ctx, kind)
	if err != nil {
		h.logger.WithError(err).WithField("kind", kind).Warn("recommendation failed")
	}
	if ranked == nil {
		c.JSON(http.StatusOK, gin.H{"kind": kind, "recommendations": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind, "recommendations": ranked})
}
