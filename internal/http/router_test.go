package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/aspirepath-backend/internal/data/repos"
	"github.com/yungbote/aspirepath-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/aspirepath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/aspirepath-backend/internal/http/middleware"
	"github.com/yungbote/aspirepath-backend/internal/modules/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/services"
)

const modelReply = `{"steps":[{"title":"Learn Python","description":"Basics","estimatedDuration":"1 month","resources":[]},{"title":"Ship a project","description":"Portfolio","estimatedDuration":"2 months","resources":[]}]}`

type testServer struct {
	engine      *gin.Engine
	providerErr error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ts := &testServer{}

	userRepo := repos.NewUserRepo(db, log)
	profileRepo := repos.NewProfileRepo(db, log)
	auth := services.NewAuthService(db, log, userRepo, profileRepo, "router-secret", time.Hour)
	roadmaps, err := services.NewRoadmapService(log, services.RoadmapServiceDeps{
		DB:          db,
		RoadmapRepo: repos.NewRoadmapRepo(db, log),
	}, roadmap.GeneratorDeps{
		Requester: roadmap.RequesterFunc(func(context.Context, string) (string, error) {
			if ts.providerErr != nil {
				return "", ts.providerErr
			}
			return modelReply, nil
		}),
	})
	require.NoError(t, err)

	ts.engine = NewRouter(RouterConfig{
		Log:            log,
		AuthMiddleware: httpMW.NewAuthMiddleware(log, auth),
		HealthHandler:  httpH.NewHealthHandler(),
		AuthHandler:    httpH.NewAuthHandler(auth),
		UserHandler:    httpH.NewUserHandler(services.NewProfileService(log, profileRepo), roadmaps),
		RoadmapHandler: httpH.NewRoadmapHandler(log, roadmaps),
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		_ = json.Unmarshal(rec.Body.Bytes(), &out)
	}
	return rec, out
}

func (ts *testServer) signup(t *testing.T, email string) string {
	t.Helper()
	rec, out := ts.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{"email": email, "password": "secret123"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return out["token"].(string)
}

var generateBody = gin.H{
	"profile": gin.H{"educationLevel": "SHS_GRADUATE", "financialStatus": "LOW", "skills": []string{"Maths"}, "location": "Kumasi"},
	"goals":   []gin.H{{"title": "Study nursing", "category": "EDUCATION", "description": "", "timeline": "LONG_TERM"}},
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t)
	rec, _ := ts.do(t, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestGenerateRoadmapAnonymous(t *testing.T) {
	ts := newTestServer(t)
	rec, out := ts.do(t, http.MethodPost, "/api/generate-roadmap", "", generateBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Roadmap generated successfully", out["message"])

	rm := out["roadmap"].(map[string]any)
	assert.Equal(t, "temp", rm["userId"])
	assert.Len(t, rm["steps"], 2)
	assert.EqualValues(t, 0, rm["progress"])
}

func TestGenerateRoadmapErrors(t *testing.T) {
	ts := newTestServer(t)

	rec, out := ts.do(t, http.MethodPost, "/api/generate-roadmap", "", gin.H{"profile": generateBody["profile"], "goals": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Profile and goals are required", out["error"])

	four := []gin.H{}
	for i := 0; i < 4; i++ {
		four = append(four, gin.H{"title": "g", "category": "CAREER", "timeline": "SHORT_TERM"})
	}
	rec, _ = ts.do(t, http.MethodPost, "/api/generate-roadmap", "", gin.H{"profile": generateBody["profile"], "goals": four})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.providerErr = roadmap.ErrEmptyResponse
	rec, out = ts.do(t, http.MethodPost, "/api/generate-roadmap", "", generateBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate roadmap", out["error"])
}

func TestSignedInRoadmapFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.signup(t, "esi@example.com")

	rec, out := ts.do(t, http.MethodPost, "/api/generate-roadmap", token, generateBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rm := out["roadmap"].(map[string]any)
	id := rm["id"].(string)
	assert.NotEqual(t, "temp", rm["userId"])

	rec, out = ts.do(t, http.MethodGet, "/api/user/roadmaps", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, out["roadmaps"], 1)

	rec, _ = ts.do(t, http.MethodGet, "/api/roadmaps/"+id, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, out = ts.do(t, http.MethodPatch, "/api/roadmaps/"+id+"/steps/step_0", token, gin.H{"isCompleted": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 50, out["roadmap"].(map[string]any)["progress"])

	rec, _ = ts.do(t, http.MethodPatch, "/api/roadmaps/"+id+"/steps/step_0", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, out = ts.do(t, http.MethodGet, "/api/user/roadmaps/latest", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, out["roadmap"].(map[string]any)["id"])

	other := ts.signup(t, "kwame@example.com")
	rec, _ = ts.do(t, http.MethodGet, "/api/roadmaps/"+id, other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/api/user/profile", "/api/user/roadmaps", "/api/roadmaps/x"} {
		rec, _ := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestProfileEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.signup(t, "abena@example.com")

	rec, _ := ts.do(t, http.MethodGet, "/api/user/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = ts.do(t, http.MethodPut, "/api/user/profile", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, out := ts.do(t, http.MethodPut, "/api/user/profile", token, gin.H{"profile": generateBody["profile"]})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Profile updated successfully", out["message"])

	rec, out = ts.do(t, http.MethodGet, "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kumasi", out["profile"].(map[string]any)["location"])
}

func TestAuthEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "kojo@example.com")

	rec, _ := ts.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{"email": "kojo@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = ts.do(t, http.MethodPost, "/api/auth/signin", "", gin.H{"email": "kojo@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.do(t, http.MethodPost, "/api/auth/signin", "", gin.H{"email": "kojo@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, out := ts.do(t, http.MethodPost, "/api/auth/signin", "", gin.H{"email": "kojo@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, out["token"])

	rec, out = ts.do(t, http.MethodPost, "/api/auth/signout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["success"])
}
