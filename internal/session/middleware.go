package session

import (
	"github.com/gin-gonic/gin"
)

// 会话 Cookie 与上下文键
const (
	CookieName = "review_session"
	contextKey = "review_session_state"
)

// cookieMaxAge 会话 Cookie 有效期（秒）
const cookieMaxAge = 12 * 60 * 60

// Middleware 把请求绑定到会话状态
// 无 Cookie 或会话已失效时新建会话并下发 Cookie。
func Middleware(manager *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(CookieName)

		state := manager.GetOrCreate(id)
		if state.ID != id {
			c.SetCookie(CookieName, state.ID, cookieMaxAge, "/", "", false, true)
		}

		c.Set(contextKey, state)
		c.Next()
	}
}

// FromContext 取请求绑定的会话状态
func FromContext(c *gin.Context) *State {
	value, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	state, _ := value.(*State)
	return state
}
