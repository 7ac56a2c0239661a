package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handle) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"title": "AI Crop Doctor"})
}

func (h *Handle) HistoryPage(c *gin.Context) {
	c.HTML(http.StatusOK, "history.html", gin.H{"title": "Prediction History"})
}

func (h *Handle) UserGuide(c *gin.Context) {
	c.HTML(http.StatusOK, "user_guide.html", gin.H{"title": "User Guide"})
}

func (h *Handle) Tools(c *gin.Context) {
	c.HTML(http.StatusOK, "tools.html", gin.H{"title": "Farming Tools"})
}
