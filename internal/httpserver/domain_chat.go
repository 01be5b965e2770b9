package httpserver

import (
	"context"

	chatHTTP "multilingual-chatbot/internal/chat/delivery/http"
	"multilingual-chatbot/internal/speech"
)

// setupChatDomain registers POST /chat and the /chat-history routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the repository and use case in cmd/api
//  2. Pass the HTTP handler through Config
//  3. Register its routes here
func (srv HTTPServer) setupChatDomain(ctx context.Context) {
	chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler, srv.middleware)
	srv.l.Infof(ctx, "Chat domain registered")
}

// setupSpeechDomain registers POST /text-to-speech.
func (srv HTTPServer) setupSpeechDomain(ctx context.Context) {
	speech.RegisterRoutes(srv.gin, srv.speechHandler)
	srv.l.Infof(ctx, "Speech domain registered")
}
