package middleware

import (
	"github.com/gin-gonic/gin"

	"strategy-shop/internal/model"
	"strategy-shop/pkg/log"
)

const (
	HeaderUserID = "X-User-ID"
	scopeKey     = "scope"
)

// Identify resolves the caller from X-User-ID. Callers without a usable id
// get a fresh one, echoed back in the same header so the client can keep it.
func (m Middleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderUserID)
		if !model.ValidUserID(id) {
			id = model.NewUserID()
		}
		c.Header(HeaderUserID, id)

		c.Set(scopeKey, model.Scope{UserID: id})
		c.Request = c.Request.WithContext(log.WithUserID(c.Request.Context(), id))
		c.Next()
	}
}

// GetScope returns the scope set by Identify.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
