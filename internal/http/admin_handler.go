package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cybertcm/internal/catalog"
	"cybertcm/internal/repository"
	"cybertcm/internal/service"
)

// AdminHandler serves the operator endpoints behind the passphrase login.
type AdminHandler struct {
	logger   *zap.Logger
	admin    *service.AdminService
	stats    *service.StatsService
	export   *service.ExportService
	users    repository.UserRepository
	catalogs *catalog.Cache
}

func NewAdminHandler(
	logger *zap.Logger,
	admin *service.AdminService,
	stats *service.StatsService,
	export *service.ExportService,
	users repository.UserRepository,
	catalogs *catalog.Cache,
) *AdminHandler {
	return &AdminHandler{
		logger:   logger,
		admin:    admin,
		stats:    stats,
		export:   export,
		users:    users,
		catalogs: catalogs,
	}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Passphrase string `json:"passphrase" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.admin.Login(c.Request.Context(), req.Passphrase)
	if err != nil {
		if errors.Is(err, service.ErrBadPassphrase) || errors.Is(err, service.ErrAdminNotSeeded) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "passphrase incorrect"})
			return
		}
		h.logger.Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": pair})
}

// Refresh handles POST /admin/refresh.
func (h *AdminHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.admin.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": pair})
}

// Logout handles POST /admin/logout.
func (h *AdminHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.admin.Logout(req.RefreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// ChangePassphrase handles PUT /admin/passphrase.
func (h *AdminHandler) ChangePassphrase(c *gin.Context) {
	var req struct {
		Current string `json:"current" binding:"required"`
		Next    string `json:"next" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.admin.ChangePassphrase(c.Request.Context(), req.Current, req.Next)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadPassphrase):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "passphrase incorrect"})
		case errors.Is(err, service.ErrWeakPassphrase):
			c.JSON(http.StatusBadRequest, gin.H{"error": "passphrase too short"})
		default:
			h.logger.Error("change passphrase failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not change passphrase"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "changed"})
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Statistics(c.Request.Context())
	if err != nil {
		h.logger.Error("stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load statistics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ExportResults handles GET /admin/export.
func (h *AdminHandler) ExportResults(c *gin.Context) {
	filter := repository.ResultFilter{
		Nickname: c.Query("nickname"),
		TypeCode: c.Query("type_code"),
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.From = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.To = t.Add(24*time.Hour - time.Nanosecond)
		}
	}

	filename := fmt.Sprintf("results_%s.csv", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.export.WriteResultsCSV(c.Request.Context(), c.Writer, filter); err != nil {
		h.logger.Error("export failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}

// ReloadCatalog handles POST /admin/catalog/reload.
func (h *AdminHandler) ReloadCatalog(c *gin.Context) {
	if err := h.catalogs.Reload(); err != nil {
		h.logger.Error("catalog reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog reload failed"})
		return
	}
	h.stats.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
