package speech

import (
	"github.com/gin-gonic/gin"

	pkgLog "multilingual-chatbot/pkg/log"
)

// Handler is the interface for the text-to-speech handler
type Handler interface {
	Synthesize(c *gin.Context)
}

// New creates a new text-to-speech handler
func New(l pkgLog.Logger) Handler {
	return &handler{l: l}
}

// RegisterRoutes mounts the text-to-speech endpoint.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.POST("/text-to-speech", h.Synthesize)
}
