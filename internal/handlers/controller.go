package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errLoadHistory = "failed to load conversation history"

// @Summary      Conversation history
// @Description  Most recent exchanges, oldest first, capped at 20.
// @Tags         controller
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, history"
// @Failure      500  {object}  map[string]string
// @Router       /api/controller/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	ctx := c.Request.Context()
	entries, err := h.services.Conversation.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "history_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"history": entries,
	})
}

// @Summary      Controller status
// @Tags         controller
// @Produce      json
// @Success      200  {object}  models.ControllerStatus
// @Router       /api/controller/status [get]
func (h *Handler) getControllerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Controller.Status())
}

// @Summary      Process a message directly
// @Description  Runs the classifier and reply generator synchronously. No broadcast, no thinking delay, no channel state touched.
// @Tags         controller
// @Accept       json
// @Produce      json
// @Param        body  body   BotReplyRequest  true  "Message text"
// @Success      200   {object}  map[string]interface{}  "response, intent"
// @Failure      400   {object}  map[string]string
// @Router       /api/controller/process [post]
func (h *Handler) processMessage(c *gin.Context) {
	var req BotReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	reply, analysis, err := h.services.Controller.Process(c.Request.Context(), req.Text)
	if err != nil && h.log != nil {
		// The reply is still valid; only the history entry was lost.
		h.log.Errorw("history_append_failed", "err", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"response": reply,
		"intent":   analysis,
	})
}
