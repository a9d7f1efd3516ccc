package http

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/internal/model"
	"strategy-shop/pkg/response"
)

// Chat godoc
// @Summary     Talk to the strategist
// @Description Sends the conversation to the model and returns the parsed reply with optional audio and video suggestions.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller id (minted when absent)"
// @Param       body body chatReq true "Conversation"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     402 {object} response.Resp "Free conversations used up (EMAIL_REQUIRED or UPGRADE_REQUIRED)"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Model failure with a friendly message"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(out))
}

// Parse godoc
// @Summary     Parse a model reply
// @Description Extracts markers from raw model text and returns the cleaned display and speech text.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Raw reply"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newParseResp(h.uc.Parse(ctx, req.Text)))
}

// Topics godoc
// @Summary     List topics
// @Description Returns the conversation topics with their greetings.
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} topicsResp
// @Router      /api/v1/topics [GET]
func (h *handler) Topics(c *gin.Context) {
	response.OK(c, h.newTopicsResp(h.uc.Topics(c.Request.Context())))
}

// ListSessions godoc
// @Summary     List sessions
// @Description Returns the caller's sessions from the last day, most recent first.
// @Tags        Sessions
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {object} sessionsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sessions, err := h.uc.ListSessions(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionsResp(sessions))
}

// CurrentSession godoc
// @Summary     Current session
// @Description Returns the most recently active session, optionally for one topic.
// @Tags        Sessions
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       topic query string false "Topic id"
// @Success     200 {object} currentSessionResp
// @Failure     404 {object} response.Resp "No session"
// @Router      /api/v1/sessions/current [GET]
func (h *handler) CurrentSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCurrentSessionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.CurrentSession(ctx, sc, model.Topic(req.Topic))
	if err != nil {
		h.l.Warnf(ctx, "uc.CurrentSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCurrentSessionResp(s))
}

// DeleteSessions godoc
// @Summary     Delete sessions
// @Description Removes all of the caller's sessions.
// @Tags        Sessions
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [DELETE]
func (h *handler) DeleteSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteSessions(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
