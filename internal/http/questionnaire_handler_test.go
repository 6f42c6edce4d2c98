package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"cybertcm/internal/catalog"
	"cybertcm/internal/domain"
	"cybertcm/internal/repository"
	"cybertcm/internal/service"
)

type stubLoader struct {
	bundle *catalog.Bundle
}

func (s *stubLoader) Load() (*catalog.Bundle, error) {
	return s.bundle, nil
}

type stubUserRepo struct{}

func (stubUserRepo) GetOrCreate(ctx context.Context, nickname string) (domain.User, error) {
	return domain.User{ID: "u1", Nickname: nickname}, nil
}

func (stubUserRepo) GetByNickname(ctx context.Context, nickname string) (domain.User, error) {
	return domain.User{}, pgx.ErrNoRows
}

func (stubUserRepo) List(ctx context.Context) ([]domain.UserSummary, error) {
	return nil, nil
}

type stubResultRepo struct {
	saved []domain.ResultRecord
}

func (s *stubResultRepo) Save(ctx context.Context, record domain.ResultRecord) error {
	s.saved = append(s.saved, record)
	return nil
}

func (s *stubResultRepo) GetByID(ctx context.Context, id string) (domain.ResultRecord, error) {
	return domain.ResultRecord{}, pgx.ErrNoRows
}

func (s *stubResultRepo) ListByUser(ctx context.Context, userID string) ([]domain.ResultSummary, error) {
	return nil, nil
}

func (s *stubResultRepo) Search(ctx context.Context, filter repository.ResultFilter) ([]domain.ResultSummary, error) {
	return nil, nil
}

func (s *stubResultRepo) Stats(ctx context.Context) (domain.Statistics, error) {
	return domain.Statistics{}, nil
}

func (s *stubResultRepo) FindSimilar(ctx context.Context, id string, limit int) ([]domain.SimilarResult, error) {
	return nil, nil
}

func newTestHandler(t *testing.T) *QuestionnaireHandler {
	t.Helper()
	cache := catalog.NewCache(&stubLoader{bundle: catalog.DefaultBundle()}, zap.NewNop())
	if err := cache.Reload(); err != nil {
		t.Fatalf("catalog reload: %v", err)
	}
	svc := service.NewScoringService(cache, stubUserRepo{}, &stubResultRepo{}, zap.NewNop())
	return NewQuestionnaireHandler(zap.NewNop(), svc, cache)
}

func TestQuestionnaireHandler_GetQuestions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler(t)

	r := gin.New()
	r.GET("/catalog/questions", h.GetQuestions)

	req := httptest.NewRequest(http.MethodGet, "/catalog/questions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Eightfold []domain.QuestionItem `json:"eightfold"`
		Ninefold  []domain.QuestionItem `json:"ninefold"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Eightfold) != 28 || len(body.Ninefold) != 33 {
		t.Fatalf("unexpected catalog sizes: %d/%d", len(body.Eightfold), len(body.Ninefold))
	}
}

func TestQuestionnaireHandler_SubmitScoresAndReturnsRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler(t)

	r := gin.New()
	r.POST("/submissions", h.Submit)

	answers := map[string]string{}
	for id := 1; id <= 28; id++ {
		answers[strconv.Itoa(id)] = "A. 从不 (1分)"
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"nickname":  "小明",
		"eightfold": answers,
	})

	req := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Result domain.ResultRecord `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Result.Eightfold == nil {
		t.Fatalf("expected eightfold fragment in response")
	}
	if body.Result.Eightfold.TypeCode != domain.TypeCodeBalanced {
		t.Fatalf("all-weakest answers must yield the balanced code, got %q", body.Result.Eightfold.TypeCode)
	}
}

func TestQuestionnaireHandler_SubmitRejectsMissingNickname(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler(t)

	r := gin.New()
	r.POST("/submissions", h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewReader([]byte(`{"eightfold":{}}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQuestionnaireHandler_GetResultNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler(t)

	r := gin.New()
	r.GET("/results/:id", h.GetResult)

	req := httptest.NewRequest(http.MethodGet, "/results/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
