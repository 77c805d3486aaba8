package handlers

import (
	"net/http"

	"astrid/internal/hub"
	"astrid/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// BotReplyRequest is the payload for POST /api/bot_reply and
// POST /api/controller/process.
type BotReplyRequest struct {
	Text string `json:"text" binding:"required" example:"Reserve water levels are at 84%."`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Read the full HUD state
// @Tags         state
// @Produce      json
// @Success      200  {object}  models.HudState
// @Router       /api/state [get]
func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.State.Get())
}

// @Summary      Partially update the HUD state
// @Description  Only fields present in the body are overwritten; everything else keeps its prior value. The resulting full snapshot is broadcast to all viewers.
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body   models.StateUpdate  true  "Fields to overwrite"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Router       /api/state [put]
func (h *Handler) updateState(c *gin.Context) {
	var upd models.StateUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	st := h.services.State.ApplyPartial(upd)
	h.hub.Broadcast(hub.StateEvent(st))

	c.JSON(http.StatusOK, gin.H{"status": statusOK, "state": st})
}

// @Summary      Inject a bot reply
// @Description  Pushes a bot_reply event to all viewers without a preceding user message. Nothing is persisted afterward.
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body   BotReplyRequest  true  "Reply text"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/bot_reply [post]
func (h *Handler) injectBotReply(c *gin.Context) {
	var req BotReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	h.services.State.SetPendingReply(req.Text)
	h.hub.Broadcast(hub.BotReplyEvent(req.Text))
	h.services.State.ClearPendingReply()

	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
