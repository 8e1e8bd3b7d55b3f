package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CtxSessionID      = "cart_session_id"
	sessionCookieName = "cart_session"
	sessionCookieAge  = 7 * 24 * 60 * 60 // seconds
)

// CartSession gives every visitor a stable cart session id via cookie, so
// the server-side cart survives page loads without requiring login.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookieName, sid, sessionCookieAge, "/", "", false, true)
		}
		c.Set(CtxSessionID, sid)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	if v, ok := c.Get(CtxSessionID); ok {
		return v.(string)
	}
	return ""
}
