package http

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/pkg/response"
)

// Get godoc
// @Summary     Get profile
// @Description Returns the caller's profile, creating it on first access.
// @Tags        Profile
// @Produce     json
// @Param       X-User-ID header string false "Caller id (minted when absent)"
// @Success     200 {object} profileResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// SaveEmail godoc
// @Summary     Save email
// @Description Stores the caller's email and unlocks the bonus conversations.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller id"
// @Param       body body saveEmailReq true "Email"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile/email [POST]
func (h *handler) SaveEmail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSaveEmailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.SaveEmail(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveEmail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// UpdateBusiness godoc
// @Summary     Update business info
// @Description Merges business facts into the profile. Empty fields are left unchanged.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller id"
// @Param       body body updateBusinessReq true "Business facts"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile/business [PUT]
func (h *handler) UpdateBusiness(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateBusinessReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.UpdateBusiness(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateBusiness: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// Metadata godoc
// @Summary     Usage metadata
// @Description Returns conversation usage and profile completion flags.
// @Tags        Profile
// @Produce     json
// @Param       X-User-ID header string false "Caller id"
// @Success     200 {object} metadataResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile/metadata [GET]
func (h *handler) Metadata(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	md, err := h.uc.Metadata(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Metadata: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMetadataResp(md))
}

// Reset godoc
// @Summary     Reset profile
// @Description Deletes the caller's profile and usage counter.
// @Tags        Profile
// @Produce     json
// @Param       X-User-ID header string false "Caller id"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Reset(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
