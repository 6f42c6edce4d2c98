package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cybertcm/internal/service"
)

// NewRouter wires the gin engine with middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	quizH *QuestionnaireHandler,
	adminH *AdminHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/health", quizH.Health)
	r.GET("/catalog/questions", quizH.GetQuestions)
	r.POST("/submissions", quizH.Submit)
	r.GET("/results/:id", quizH.GetResult)
	r.GET("/results/:id/similar", quizH.GetSimilar)
	r.GET("/users/:nickname/results", quizH.GetHistory)

	admin := r.Group("/admin")
	admin.POST("/login", adminH.Login)
	admin.POST("/refresh", adminH.Refresh)
	admin.POST("/logout", adminH.Logout)

	authed := admin.Group("", JWTAuthMiddleware(jwtSvc))
	authed.PUT("/passphrase", adminH.ChangePassphrase)
	authed.GET("/stats", adminH.Stats)
	authed.GET("/users", adminH.ListUsers)
	authed.GET("/export", adminH.ExportResults)
	authed.POST("/catalog/reload", adminH.ReloadCatalog)

	return r
}

// zapLoggerMiddleware logs one line per request with zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
