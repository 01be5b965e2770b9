package speech

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgLog "multilingual-chatbot/pkg/log"
	"multilingual-chatbot/pkg/response"
)

const (
	contentTypeMPEG = "audio/mpeg"
	id3Header       = "ID3"
)

type handler struct {
	l pkgLog.Logger
}

// Synthesize returns placeholder audio for the given text
// @Summary Text to speech
// @Description Returns deterministic placeholder audio bytes ("ID3" followed by the text). No real synthesis is performed.
// @Tags Speech
// @Accept json
// @Produce audio/mpeg
// @Param request body SynthesizeRequest true "Text to synthesize"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorResp "Invalid request parameters"
// @Router /text-to-speech [post]
func (h *handler) Synthesize(c *gin.Context) {
	ctx := c.Request.Context()

	var req SynthesizeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Debugf(ctx, "internal.speech.Synthesize: bind: %v", err)
			response.BadRequest(c)
			return
		}
	}

	audio := placeholderAudio(req.Text)
	h.l.Debugf(ctx, "internal.speech.Synthesize: %d bytes language=%q voice=%q", len(audio), req.LanguageCode, req.VoiceID)

	c.Data(http.StatusOK, contentTypeMPEG, audio)
}

func placeholderAudio(text string) []byte {
	return append([]byte(id3Header), text...)
}
