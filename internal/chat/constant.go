package chat

// Language defaults applied when the request leaves them out.
const (
	LanguageAuto          = "auto"
	DefaultSourceLanguage = "en"
	DefaultTargetLanguage = "en"
)
