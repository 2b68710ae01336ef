package handler

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/fdareview/backend/internal/pkg/catalog"
	"github.com/fdareview/backend/internal/service"
	"github.com/fdareview/backend/internal/session"
)

// 测试用目录
const testCatalogYAML = `
agents:
  - name: Predicate Device Matcher
    description: Compares the device to predicates
    category: Clinical & Regulatory
    system_prompt: You compare devices to predicates.
  - name: Biocompatibility Assessor
    description: Reviews ISO 10993 evaluation
    category: Performance & Testing
    system_prompt: You review biocompatibility.
`

// testEnv 一次处理器测试的路由与固定会话
type testEnv struct {
	router *gin.Engine
	state  *session.State
}

// newTestEnv 构建挂好会话中间件的测试路由
// 所有请求通过 do 附带同一个会话 Cookie，命中同一份状态。
func newTestEnv(register func(api *gin.RouterGroup)) *testEnv {
	gin.SetMode(gin.TestMode)

	manager := session.NewManager()
	state := manager.Create()

	router := gin.New()
	api := router.Group("/api")
	api.Use(session.Middleware(manager))
	register(api)

	return &testEnv{router: router, state: state}
}

// do 以固定会话执行一次请求
func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: e.state.ID})
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// newTestAgentService 用内存目录构建 Agent 服务
func newTestAgentService() *service.AgentService {
	cat := catalog.NewWithSource(func() ([]byte, error) {
		return []byte(testCatalogYAML), nil
	})
	return service.NewAgentService(cat)
}
