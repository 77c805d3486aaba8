package handlers

import (
	"net/http"
	"strings"
	"time"

	"astrid/internal/hub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Write timing and message size limits.
const (
	writeWait  = 10 * time.Second
	maxMsgSize = 1 << 12 // 4 KB
)

// Inbound message types.
const (
	msgUserMessage  = "user_message"
	msgRequestState = "request_state"
)

// inboundMessage is what clients send over the channel.
type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

// wsConn adds a write deadline around every frame so a dead peer fails the
// send instead of blocking a broadcast forever.
type wsConn struct {
	*websocket.Conn
}

func (c wsConn) WriteJSON(v any) error {
	_ = c.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteJSON(v)
}

// wsConnect upgrades the connection, registers it with the hub, sends the
// catch-up state snapshot and then runs the per-connection dispatch loop.
// Every connection gets its own goroutine, so one connection's thinking delay
// never stalls another's messages.
func (h *Handler) wsConnect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)

	client := h.hub.Register(wsConn{conn})
	defer h.hub.Unregister(client)

	// Catch-up sync: this client only.
	if err := client.Send(hub.StateEvent(h.services.State.Get())); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "client_id", client.ID(), "err", err)
		}
		return
	}

	h.dispatchLoop(c, client, conn)
}

// dispatchLoop reads inbound events until the channel closes. Malformed or
// unknown messages are ignored; any read error ends the loop and the deferred
// Unregister drops the channel without touching the others.
func (h *Handler) dispatchLoop(c *gin.Context, client *hub.Client, conn *websocket.Conn) {
	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "client_id", client.ID(), "err", err)
			}
			return
		}

		switch msg.Type {
		case msgUserMessage:
			h.handleUserMessage(c, msg.Text)
		case msgRequestState:
			// Fresh snapshot to the requester only, never a broadcast.
			if err := client.Send(hub.StateEvent(h.services.State.Get())); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "client_id", client.ID(), "err", err)
				}
				return
			}
		default:
			if h.log != nil {
				h.log.Infow("ws_unknown_message_type", "type", msg.Type)
			}
		}
	}
}

// handleUserMessage runs the full pipeline for one user line: record it,
// fan out user_line and clear_center, produce the reply, pause to simulate
// thinking, then fan out bot_reply. The state mutation happens strictly
// before the pause; the final broadcast goes to whatever channels are still
// registered when the pause ends.
func (h *Handler) handleUserMessage(c *gin.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	st := h.services.State.SetLastUserLine(text)
	h.hub.Broadcast(hub.UserLineEvent(st.LastUserLine))
	h.hub.Broadcast(hub.ClearCenterEvent())

	reply, analysis, err := h.services.Controller.Process(c.Request.Context(), text)
	if err != nil && h.log != nil {
		// Reply still goes out; only the history entry was lost.
		h.log.Errorw("history_append_failed", "err", err)
	}
	if h.log != nil {
		h.log.Infow("user_message_processed",
			"intent", analysis.Intent, "confidence", analysis.Confidence)
	}

	time.Sleep(h.thinkDelay)

	h.hub.Broadcast(hub.BotReplyEvent(reply))
}
