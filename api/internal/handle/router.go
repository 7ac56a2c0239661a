package handle

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router wires the full HTTP surface. templateGlob/staticDir may be empty
// in tests to skip page rendering.
func (h *Handle) Router(templateGlob, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))
	r.Use(cors.Default())

	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
		r.GET("/", h.Home)
		r.GET("/history_page", h.HistoryPage)
		r.GET("/user_guide", h.UserGuide)
		r.GET("/tools", h.Tools)
	}
	if staticDir != "" {
		r.Static("/static", staticDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.POST("/predict", h.Predict)
	r.POST("/get_diagnosis", h.GetDiagnosis)
	r.POST("/translate", h.Translate)
	r.GET("/history", h.History)
	r.POST("/emergency", h.Emergency)

	return r
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
