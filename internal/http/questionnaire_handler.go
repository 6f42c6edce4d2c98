package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"cybertcm/internal/catalog"
	"cybertcm/internal/scoring"
	"cybertcm/internal/service"
)

// QuestionnaireHandler serves the respondent-facing endpoints.
type QuestionnaireHandler struct {
	logger   *zap.Logger
	scoring  *service.ScoringService
	catalogs *catalog.Cache
}

func NewQuestionnaireHandler(logger *zap.Logger, scoringSvc *service.ScoringService, catalogs *catalog.Cache) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		logger:   logger,
		scoring:  scoringSvc,
		catalogs: catalogs,
	}
}

// Health handles GET /health.
func (h *QuestionnaireHandler) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if _, err := h.catalogs.Current(); err != nil {
		status["status"] = "degraded"
		status["catalog"] = "unavailable"
	}
	c.JSON(http.StatusOK, status)
}

// GetQuestions handles GET /catalog/questions.
func (h *QuestionnaireHandler) GetQuestions(c *gin.Context) {
	bundle, err := h.catalogs.Current()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"eightfold": bundle.Eightfold.Questions,
		"ninefold":  bundle.Ninefold.Questions,
	})
}

// Submit handles POST /submissions.
func (h *QuestionnaireHandler) Submit(c *gin.Context) {
	var req struct {
		Nickname  string                  `json:"nickname" binding:"required"`
		Eightfold scoring.AnswerSelection `json:"eightfold"`
		Ninefold  scoring.AnswerSelection `json:"ninefold"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submission request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record, err := h.scoring.Submit(c.Request.Context(), req.Nickname, req.Eightfold, req.Ninefold)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSubmission), errors.Is(err, service.ErrNoAnswers):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, catalog.ErrCatalogUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		default:
			h.logger.Error("submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score submission"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": record})
}

// GetResult handles GET /results/:id.
func (h *QuestionnaireHandler) GetResult(c *gin.Context) {
	record, err := h.scoring.Result(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		h.logger.Error("get result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load result"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": record})
}

// GetSimilar handles GET /results/:id/similar.
func (h *QuestionnaireHandler) GetSimilar(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	similar, err := h.scoring.Similar(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.logger.Error("similarity search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search similar results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"similar": similar})
}

// GetHistory handles GET /users/:nickname/results.
func (h *QuestionnaireHandler) GetHistory(c *gin.Context) {
	summaries, err := h.scoring.History(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("history lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": summaries})
}
