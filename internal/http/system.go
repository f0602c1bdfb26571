package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getSystemStats returns host resource usage for the status strip
func (s *Server) getSystemStats(c *gin.Context) {
	stats, err := s.systemService.GetSystemStats(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
