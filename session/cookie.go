package session

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cookieName   = "boutique_session"
	cookieMaxAge = 60 * 60 * 24 // one day, matches the cart TTL default
)

// SessionID returns the visitor's session id, minting and setting a new
// cookie when the request carries none. Carts are keyed on this id, so two
// tabs of the same browser share one cart. The secure flag follows the
// store's configuration so HTTPS deployments never leak the cookie over
// plain HTTP.
func (s *Store) SessionID(c *gin.Context) string {
	if id, err := c.Cookie(cookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cookieName, id, cookieMaxAge, "/", "", s.secureCookie, true)
	return id
}
