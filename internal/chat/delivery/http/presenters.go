package http

import (
	"strings"

	"multilingual-chatbot/internal/chat"
	"multilingual-chatbot/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message        string `json:"message"         binding:"required"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	SessionID      string `json:"session_id"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrInvalidRequest
	}
	return nil
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		SessionID:      r.SessionID,
		Message:        r.Message,
		SourceLanguage: r.SourceLanguage,
		TargetLanguage: r.TargetLanguage,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response       string `json:"response"`
	SessionID      string `json:"session_id"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:       out.Response,
		SessionID:      out.SessionID,
		SourceLanguage: out.SourceLanguage,
		TargetLanguage: out.TargetLanguage,
	}
}

type turnResp struct {
	SessionID      string            `json:"session_id"`
	Timestamp      response.DateTime `json:"timestamp" swaggertype:"string"`
	UserInput      string            `json:"user_input"`
	BotResponse    string            `json:"bot_response"`
	SourceLanguage string            `json:"source_language"`
	TargetLanguage string            `json:"target_language"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) []turnResp {
	items := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		items[i] = turnResp{
			SessionID:      out.SessionID,
			Timestamp:      response.DateTime(t.Timestamp),
			UserInput:      t.UserInput,
			BotResponse:    t.BotResponse,
			SourceLanguage: t.SourceLanguage,
			TargetLanguage: t.TargetLanguage,
		}
	}
	return items
}

type resetResp struct {
	SessionID string `json:"session_id"`
	Cleared   bool   `json:"cleared"`
}

func (h *handler) newResetResp(out chat.ResetOutput) resetResp {
	return resetResp{SessionID: out.SessionID, Cleared: out.Cleared}
}
