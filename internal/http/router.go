package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"house-price/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	predictionH *PredictionHandler,
	limiter service.PredictRateLimiter,
) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(loadTemplates())

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/healthz", predictionH.Health)
	r.GET("/", predictionH.ShowForm)
	r.POST("/", rateLimitMiddleware(limiter, predictionH.FormRateLimited), predictionH.SubmitForm)

	api := r.Group("/api", jsonContentTypeMiddleware())
	api.GET("/schema", predictionH.Schema)
	api.POST("/preview", predictionH.Preview)
	api.POST("/predict", rateLimitMiddleware(limiter, rateLimitedJSON), predictionH.Predict)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
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

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// rateLimitMiddleware corta la predicción cuando la IP agotó su cuota y delega la
// respuesta en onLimited. Sin limiter no limita.
func rateLimitMiddleware(limiter service.PredictRateLimiter, onLimited gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.Next()
			return
		}
		onLimited(c)
		c.Abort()
	}
}

func rateLimitedJSON(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
}
