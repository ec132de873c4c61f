package jobparse

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/server/respond"
	"resume-coach/internal/shared/telemetry"
)

// Handler exposes job description parsing over HTTP.
type Handler struct {
	Parser *Parser
}

func NewHandler(parser *Parser) *Handler {
	return &Handler{Parser: parser}
}

// RegisterRoutes attaches job parsing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/parse", h.parse)
}

type parseRequest struct {
	JobDescription string `json:"job_description"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	parsed, err := h.Parser.Parse(c.Request.Context(), req.JobDescription)
	if err != nil {
		telemetry.Error("job parse failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to parse job description", nil)
		return
	}
	metrics.IncJobParse()

	respond.OK(c, parsed)
}
