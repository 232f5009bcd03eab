package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/infrastructure/ratelimit"
	mock_interfaces "meshguard_api/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, tokens *mock_interfaces.MockITokenIssuer, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	r := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(tokens)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.String(http.StatusOK, actor.UserID)
	})
	r.GET("/private", handlers...)
	return r
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newAuthRouter(t, mock_interfaces.NewMockITokenIssuer(ctrl))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		tokens.EXPECT().Parse("bad").Return(entities.Actor{}, errors.New("expired"))
		r := newAuthRouter(t, tokens)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		tokens.EXPECT().Parse("good").Return(entities.Actor{UserID: "u-1", Role: entities.RoleUser}, nil)
		r := newAuthRouter(t, tokens)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "u-1" {
			t.Fatalf("expected 200 u-1, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		name string
		role entities.Role
		want int
	}{
		{"user is forbidden", entities.RoleUser, http.StatusForbidden},
		{"admin passes", entities.RoleAdmin, http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
			tokens.EXPECT().Parse("tok").Return(entities.Actor{UserID: "u-1", Role: tc.role}, nil)
			r := newAuthRouter(t, tokens, RequireRole(entities.RoleAdmin))

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			req.Header.Set("Authorization", "Bearer tok")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return false, 0, errors.New("redis down")
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocks after max", func(t *testing.T) {
		r := gin.New()
		r.POST("/login", RateLimit(ratelimit.NewMemoryLimiter(2, time.Minute, clockwork.NewFakeClock())), func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
			codes = append(codes, w.Code)
			if i == 2 && w.Header().Get("Retry-After") == "" {
				t.Fatalf("expected Retry-After header")
			}
		}
		if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
			t.Fatalf("unexpected codes %v", codes)
		}
	})

	t.Run("fails open", func(t *testing.T) {
		r := gin.New()
		r.POST("/login", RateLimit(brokenLimiter{}), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
