package redis

import (
	"encoding/json"
	"time"

	"multilingual-chatbot/internal/chat"
)

// turnRecord is the JSON form of a turn stored in the session list.
type turnRecord struct {
	UserInput      string    `json:"user_input"`
	BotResponse    string    `json:"bot_response"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	Timestamp      time.Time `json:"timestamp"`
}

func encodeTurn(t chat.Turn) (string, error) {
	b, err := json.Marshal(turnRecord{
		UserInput:      t.UserInput,
		BotResponse:    t.BotResponse,
		SourceLanguage: t.SourceLanguage,
		TargetLanguage: t.TargetLanguage,
		Timestamp:      t.Timestamp,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTurn(s string) (chat.Turn, error) {
	var rec turnRecord
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		return chat.Turn{}, err
	}
	return chat.Turn{
		UserInput:      rec.UserInput,
		BotResponse:    rec.BotResponse,
		SourceLanguage: rec.SourceLanguage,
		TargetLanguage: rec.TargetLanguage,
		Timestamp:      rec.Timestamp,
	}, nil
}
