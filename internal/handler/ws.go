package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsReadLimit   = 4096
	wsWriteWait   = 10 * time.Second
	wsIdleTimeout = 5 * time.Minute
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ChatSocket godoc
// @Summary      Websocket chat
// @Description  Upgrades to a websocket; each text frame {"message": "..."} is answered with the chat envelope
// @Tags         chat
// @Success      101  {string}  string  "Switching Protocols"
// @Router       /ws/chat [get]
func (h *Handler) ChatSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Debug("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	rid := requestID(c)
	conn.SetReadLimit(wsReadLimit)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.WithError(err).Debug("websocket read failed")
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var req ChatRequest
		if err := json.Unmarshal(data, &req); err != nil || req.Message == nil {
			if !h.writeSocket(conn, gin.H{"error": "frame must be JSON with a \"message\" field"}) {
				return
			}
			continue
		}

		ex, err := h.chat.Ask(ctx, *req.Message)
		if err != nil {
			return
		}
		if !h.writeSocket(conn, newChatResponse(ex, rid)) {
			return
		}
	}
}

func (h *Handler) writeSocket(conn *websocket.Conn, v any) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(v); err != nil {
		h.logger.WithError(err).Debug("websocket write failed")
		return false
	}
	return true
}
