package http

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/pkg/response"
)

// Search godoc
// @Summary     Search videos
// @Description Searches for explainer videos. With user_query the results are filtered for relevance and capped at three.
// @Tags        Videos
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Search terms"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Video search not configured"
// @Router      /api/v1/videos/search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(out))
}
