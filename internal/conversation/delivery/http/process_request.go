package http

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/internal/middleware"
	"strategy-shop/internal/model"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (model.Scope, chatReq, error) {
	var req chatReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCurrentSessionReq(c *gin.Context) (model.Scope, currentSessionReq, error) {
	var req currentSessionReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}
