package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/shared/server/respond"
)

// Handler exposes the health check.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the health route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, h.Svc.Status())
	})
}
