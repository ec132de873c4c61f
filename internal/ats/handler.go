package ats

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/scores"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/server/respond"
	"resume-coach/internal/shared/telemetry"
)

// Handler exposes ATS optimization over HTTP.
type Handler struct {
	Scores *scores.Service
}

func NewHandler(scoreSvc *scores.Service) *Handler {
	return &Handler{Scores: scoreSvc}
}

// RegisterRoutes attaches ATS routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ats/optimize", h.optimize)
}

type optimizeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

type optimizeResponse struct {
	Result
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
}

func (h *Handler) optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_text is required", nil)
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	start := metrics.NowMillis()
	result := Optimize(req.ResumeText, req.JobDescription)
	metrics.ObserveScoringDurationMs(metrics.NowMillis() - start)
	metrics.IncATSOptimize()

	resp := optimizeResponse{
		Result:         result,
		Recommendation: Recommendation(result.ATSScore),
		Confidence:     Confidence(result.ATSScore),
	}

	if h.Scores != nil {
		if _, err := h.Scores.Record(c.Request.Context(), scores.KindATS, result.ATSScore, resp); err != nil {
			telemetry.Warn("failed to record ats score", map[string]any{"error": err.Error()})
		}
	}

	respond.OK(c, resp)
}
