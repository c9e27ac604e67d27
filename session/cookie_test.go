package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func mintCookie(t *testing.T, secure bool) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)

	store := NewStore(nil, time.Minute, secure)
	id := store.SessionID(c)
	require.NotEmpty(t, id)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == cookieName {
			require.Equal(t, id, cookie.Value)
			return cookie
		}
	}
	t.Fatalf("no %s cookie set", cookieName)
	return nil
}

func TestSessionIDCookieFlags(t *testing.T) {
	cookie := mintCookie(t, false)
	require.True(t, cookie.HttpOnly)
	require.False(t, cookie.Secure)

	cookie = mintCookie(t, true)
	require.True(t, cookie.HttpOnly)
	require.True(t, cookie.Secure)
}

func TestSessionIDReusesExistingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookieName, Value: "visitor-1"})

	store := NewStore(nil, time.Minute, true)
	require.Equal(t, "visitor-1", store.SessionID(c))
	require.Empty(t, w.Result().Cookies())
}
