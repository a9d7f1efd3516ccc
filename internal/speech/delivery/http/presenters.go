package http

import "strategy-shop/internal/speech"

type synthesizeReq struct {
	Text string `json:"text" binding:"required"`
}

func (r synthesizeReq) validate() error {
	if len(r.Text) > speech.MaxTextLength {
		return speech.ErrTextTooLong
	}
	return nil
}

func (r synthesizeReq) toInput() speech.SynthesizeInput {
	return speech.SynthesizeInput{Text: r.Text}
}

type synthesizeResp struct {
	AudioURL string `json:"audio_url"`
	Cached   bool   `json:"cached"`
}

func (h *handler) newSynthesizeResp(out speech.SynthesizeOutput) synthesizeResp {
	return synthesizeResp{AudioURL: out.AudioURL, Cached: out.Cached}
}
