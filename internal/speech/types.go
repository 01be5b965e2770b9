package speech

// SynthesizeRequest is the text-to-speech request body. LanguageCode and
// VoiceID are accepted for client compatibility and do not change the output.
type SynthesizeRequest struct {
	Text         string `json:"text"`
	LanguageCode string `json:"language_code"`
	VoiceID      string `json:"voice_id"`
}
