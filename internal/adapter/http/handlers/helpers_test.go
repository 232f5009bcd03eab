package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"meshguard_api/internal/adapter/http/middleware"
	"meshguard_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	customer = entities.Actor{UserID: "u-1", Email: "amina@example.com", Role: entities.RoleUser}
	admin    = entities.Actor{UserID: "a-1", Email: "admin@example.com", Role: entities.RoleAdmin}
)

// newRouter mounts h at path, behind SetActor when actor is non-nil.
func newRouter(method, path string, actor *entities.Actor, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := []gin.HandlerFunc{}
	if actor != nil {
		chain = append(chain, middleware.SetActor(*actor))
	}
	chain = append(chain, h)
	r.Handle(method, path, chain...)
	return r
}

func doJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
