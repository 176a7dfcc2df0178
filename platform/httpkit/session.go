// Package httpkit provides HTTP utilities including the shopper session abstraction.
package httpkit

import (
	"context"
	"net/http"
	"strings"

	"storefront/platform/config"
	"storefront/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextSessionIDKey is the gin context key for the shopper session ID.
const ContextSessionIDKey = "sessionID"

// SessionHeader lets non-browser clients pin a session without cookies.
const SessionHeader = "X-Session-ID"

// Session returns middleware that resolves the shopper session from the
// session cookie (or SessionHeader), issuing a fresh one when absent or malformed.
// The session scopes the persisted cart slot, the way a browser origin scopes
// local storage.
func Session(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := readSessionID(c, cfg.GetSessionCookieName())
		if !ok {
			sessionID = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(
			cfg.GetSessionCookieName(),
			sessionID,
			int(cfg.GetSessionTTL().Seconds()),
			"/",
			"",
			cfg.GetSessionCookieSecure(),
			true,
		)

		c.Set(ContextSessionIDKey, sessionID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.SessionIDKey, sessionID))
		c.Next()
	}
}

// GetSessionID extracts the session ID set by the Session middleware.
func GetSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get(ContextSessionIDKey)
	if !ok {
		return "", false
	}
	sessionID, ok := value.(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}

// MustGetSessionID extracts the session ID or aborts with 400 and returns false.
func MustGetSessionID(c *gin.Context) (string, bool) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "missing session"})
		return "", false
	}
	return sessionID, true
}

func readSessionID(c *gin.Context, cookieName string) (string, bool) {
	raw := strings.TrimSpace(c.GetHeader(SessionHeader))
	if raw == "" {
		if cookie, err := c.Cookie(cookieName); err == nil {
			raw = strings.TrimSpace(cookie)
		}
	}
	if raw == "" {
		return "", false
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
