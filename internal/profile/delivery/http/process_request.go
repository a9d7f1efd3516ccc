package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"strategy-shop/internal/middleware"
	"strategy-shop/internal/model"
)

var errEmptyUpdate = errors.New("at least one business field is required")

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

// processSaveEmailReq binds and validates the save email request body.
func (h *handler) processSaveEmailReq(c *gin.Context) (model.Scope, saveEmailReq, error) {
	var req saveEmailReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

// processUpdateBusinessReq binds and validates the business info request body.
func (h *handler) processUpdateBusinessReq(c *gin.Context) (model.Scope, updateBusinessReq, error) {
	var req updateBusinessReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}
