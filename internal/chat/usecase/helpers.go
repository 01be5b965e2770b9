package usecase

import (
	"strings"

	"multilingual-chatbot/internal/chat"
	"multilingual-chatbot/internal/orchestrator"
)

// normalizeLanguages applies the request defaults: "auto" or empty source
// becomes English, empty target becomes English.
func normalizeLanguages(source, target string) (string, string) {
	source = strings.TrimSpace(source)
	if source == "" || strings.EqualFold(source, chat.LanguageAuto) {
		source = chat.DefaultSourceLanguage
	}
	target = strings.TrimSpace(target)
	if target == "" {
		target = chat.DefaultTargetLanguage
	}
	return source, target
}

// toMemory converts a transcript into orchestrator memory turns.
func toMemory(turns []chat.Turn) []orchestrator.Turn {
	out := make([]orchestrator.Turn, len(turns))
	for i, t := range turns {
		out[i] = orchestrator.Turn{UserInput: t.UserInput, BotResponse: t.BotResponse}
	}
	return out
}
