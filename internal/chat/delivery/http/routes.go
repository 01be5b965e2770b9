package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only POST /chat is rate limited.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)
	r.GET("/chat-history/:session_id", h.History)
	r.DELETE("/chat-history/:session_id", h.Reset)
}
