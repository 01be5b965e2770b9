package orchestrator

import "fmt"

// fallbackReply is the deterministic reply used without a model. It looks
// only at the current message, so memory never changes the output.
func fallbackReply(message, target string) string {
	return fmt.Sprintf(FallbackTemplate, target, message)
}
