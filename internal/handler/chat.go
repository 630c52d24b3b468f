package handler

import (
	"net/http"

	"cryptobuddy/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

const timestampLayout = "15:04"

// ChatRequest requires the message field to be present. An empty message is
// still answered, with the help reply.
type ChatRequest struct {
	Message *string `json:"message"`
}

// ChatResponse is the reply envelope shared by the HTTP and websocket chat.
type ChatResponse struct {
	UserMessage string          `json:"user_message"`
	BotResponse string          `json:"bot_response"`
	Details     string          `json:"details"`
	Timestamp   string          `json:"timestamp"`
	Intent      domain.Intent   `json:"intent"`
	Entities    domain.Entities `json:"entities"`
	RequestID   string          `json:"request_id,omitempty"`
}

func newChatResponse(ex *domain.Exchange, requestID string) ChatResponse {
	return ChatResponse{
		UserMessage: ex.UserMessage,
		BotResponse: ex.Reply.Headline,
		Details:     ex.Reply.Detail,
		Timestamp:   ex.Timestamp.Format(timestampLayout),
		Intent:      ex.Reply.Intent,
		Entities:    ex.Entities,
		RequestID:   requestID,
	}
}

// SendMessage godoc
// @Summary      Chat with CryptoBuddy
// @Description  Classifies the message and returns a templated answer with the detected entities
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body  ChatRequest  true  "User message"
// @Success      200  {object}  ChatResponse
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /send_message [post]
// @Router       /api/chat [post]
func (h *Handler) SendMessage(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.send-message")
	defer span.End()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a \"message\" field"})
		return
	}

	ex, err := h.chat.Ask(ctx, *req.Message)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request canceled"})
		return
	}
	span.SetAttributes(attribute.String("intent", string(ex.Reply.Intent)))

	c.JSON(http.StatusOK, newChatResponse(ex, requestID(c)))
}
