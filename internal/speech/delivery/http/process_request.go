package http

import "github.com/gin-gonic/gin"

func (h *handler) processSynthesizeReq(c *gin.Context) (synthesizeReq, error) {
	var req synthesizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
