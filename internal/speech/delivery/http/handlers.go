package http

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/pkg/response"
)

// Synthesize godoc
// @Summary     Text to speech
// @Description Renders text in the strategist voice. Plain text is prepared for speech first; SSML is sent as is.
// @Tags        Speech
// @Accept      json
// @Produce     json
// @Param       body body synthesizeReq true "Text to speak"
// @Success     200 {object} synthesizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Speech not configured"
// @Router      /api/v1/tts [POST]
func (h *handler) Synthesize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSynthesizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Synthesize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Synthesize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSynthesizeResp(out))
}
