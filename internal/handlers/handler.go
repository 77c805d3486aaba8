package handlers

import (
	"time"

	_ "astrid/docs"
	"astrid/internal/hub"
	"astrid/internal/logger"
	"astrid/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// defaultThinkDelay is the pause before a bot reply goes out when the config
// does not set one.
const defaultThinkDelay = 1500 * time.Millisecond

// Handler wires the HTTP and websocket layer to services, the hub and logging.
type Handler struct {
	services   *service.Service
	hub        *hub.Hub
	log        *logger.Logger
	thinkDelay time.Duration
}

// NewHandler constructs a handler. A non-positive thinkDelay falls back to the
// default.
func NewHandler(services *service.Service, hb *hub.Hub, log *logger.Logger, thinkDelay time.Duration) *Handler {
	if thinkDelay <= 0 {
		thinkDelay = defaultThinkDelay
	}
	return &Handler{services: services, hub: hb, log: log, thinkDelay: thinkDelay}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// REST surface
	h.registerAPIRoutes(router)

	// Persistent viewer channel (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/state", h.getState)
		api.PUT("/state", h.updateState)
		api.POST("/bot_reply", h.injectBotReply)

		controller := api.Group("/controller")
		{
			controller.GET("/history", h.getHistory)
			controller.GET("/status", h.getControllerStatus)
			controller.POST("/process", h.processMessage)
		}
	}
}
