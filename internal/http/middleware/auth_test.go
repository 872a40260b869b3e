package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/ctxutil"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
	"github.com/yungbote/aspirepath-backend/internal/services"
)

type stubAuth struct{}

func (stubAuth) Signup(context.Context, services.SignupInput) (*domain.User, string, error) {
	return nil, "", errors.New("unused")
}

func (stubAuth) Signin(context.Context, string, string) (*domain.User, string, error) {
	return nil, "", errors.New("unused")
}

func (stubAuth) SetContextFromToken(ctx context.Context, token string) (context.Context, error) {
	if token != "good" {
		return ctx, services.ErrInvalidToken
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: "u1"}), nil
}

func (stubAuth) GetAccessTTL() time.Duration { return time.Hour }

func authRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.UserID(c.Request.Context()))
	})
	return r
}

func get(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	am := NewAuthMiddleware(logger.Nop(), stubAuth{})
	r := authRouter(am.RequireAuth())

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer bad").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Basic good").Code)

	rec := get(r, "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	am := NewAuthMiddleware(logger.Nop(), stubAuth{})
	r := authRouter(am.OptionalAuth())

	rec := get(r, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", rec.Body.String())

	rec = get(r, "Bearer bad")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", rec.Body.String())

	rec = get(r, "bearer good")
	assert.Equal(t, "u1", rec.Body.String())
}

func TestAttachTraceContextEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/t", func(c *gin.Context) {
		td := ctxutil.GetTraceData(c.Request.Context())
		c.String(http.StatusOK, td.RequestID)
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Body.String())
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
}
