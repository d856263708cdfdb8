package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfarer/pkg/utils"
)

const (
	sessionCookieName = "wayfarer_session"
	sessionTTL        = 2 * time.Hour
)

// SessionMiddleware resolves the caller's session id from a signed cookie.
// A missing, expired or tampered cookie gets a fresh session instead of an
// error; chat history simply starts empty for the new id.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		if cookie, err := c.Cookie(sessionCookieName); err == nil {
			if claims, err := utils.ValidateSessionToken(cookie); err == nil && claims != nil {
				sessionID = claims.SessionID
			}
		}

		if sessionID == "" {
			id := uuid.New()
			token, err := utils.CreateSessionToken(id, sessionTTL)
			if err != nil {
				log.Printf("Error creating session token: %v", err)
				utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
				return
			}
			sessionID = id.String()
			c.SetCookie(sessionCookieName, token, int(sessionTTL.Seconds()), "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
