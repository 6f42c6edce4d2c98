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
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"cybertcm/internal/catalog"
	"cybertcm/internal/service"
)

type stubCredRepo struct {
	hash string
}

func (s *stubCredRepo) GetHash(ctx context.Context) (string, error) {
	if s.hash == "" {
		return "", pgx.ErrNoRows
	}
	return s.hash, nil
}

func (s *stubCredRepo) SetHash(ctx context.Context, hash string) error {
	s.hash = hash
	return nil
}

func newTestAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	jwtSvc := service.NewJWTServiceWithStore("secret", 15*time.Minute, time.Hour, service.NewMemoryRefreshTokenStore())
	adminSvc := service.NewAdminService(&stubCredRepo{}, jwtSvc, logger)
	if err := adminSvc.EnsureDefault(context.Background(), "8888"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	cache := catalog.NewCache(&stubLoader{bundle: catalog.DefaultBundle()}, logger)
	if err := cache.Reload(); err != nil {
		t.Fatalf("catalog reload: %v", err)
	}

	results := &stubResultRepo{}
	statsSvc := service.NewStatsService(results, nil, time.Minute, logger)
	exportSvc := service.NewExportService(results, stubUserRepo{})
	adminH := NewAdminHandler(logger, adminSvc, statsSvc, exportSvc, stubUserRepo{}, cache)

	scoringSvc := service.NewScoringService(cache, stubUserRepo{}, results, logger)
	quizH := NewQuestionnaireHandler(logger, scoringSvc, cache)

	return NewRouter(logger, jwtSvc, quizH, adminH)
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminLoginAndStats(t *testing.T) {
	r := newTestAdminRouter(t)

	rec := postJSON(t, r, "/admin/login", gin.H{"passphrase": "wrong"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong passphrase: expected 401, got %d", rec.Code)
	}

	rec = postJSON(t, r, "/admin/login", gin.H{"passphrase": "8888"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal tokens: %v", err)
	}
	if body.Tokens.AccessToken == "" {
		t.Fatalf("expected access token")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated stats: expected 401, got %d", rec2.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+body.Tokens.AccessToken)
	rec3 := httptest.NewRecorder()
	r.ServeHTTP(rec3, req)
	if rec3.Code != http.StatusOK {
		t.Fatalf("authed stats: expected 200, got %d: %s", rec3.Code, rec3.Body.String())
	}
}

func TestAdminCatalogReload(t *testing.T) {
	r := newTestAdminRouter(t)

	rec := postJSON(t, r, "/admin/login", gin.H{"passphrase": "8888"}, "")
	var body struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal tokens: %v", err)
	}

	rec = postJSON(t, r, "/admin/catalog/reload", gin.H{}, body.Tokens.AccessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("reload: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
