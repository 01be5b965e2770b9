package response

const (
	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = "2006-01-02T15:04:05.000000Z07:00"

	DefaultErrorMessage = "Internal server error"
)
