package response

import (
	"encoding/json"
	"time"
)

// ErrorResp is the error envelope: {"error": "<message>"}.
type ErrorResp struct {
	Error string `json:"error"`
}

// DateTime is a timestamp that marshals as DateTimeFormat in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
