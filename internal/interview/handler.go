package interview

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/scores"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/server/respond"
	"resume-coach/internal/shared/telemetry"
)

const (
	defaultNumQuestions = 5
	minNumQuestions     = 3
	maxNumQuestions     = 10
)

// Handler exposes interview preparation over HTTP.
type Handler struct {
	Evaluator *Evaluator
	Generator *Generator
	Scores    *scores.Service
}

func NewHandler(evaluator *Evaluator, generator *Generator, scoreSvc *scores.Service) *Handler {
	return &Handler{Evaluator: evaluator, Generator: generator, Scores: scoreSvc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interview/questions", h.questions)
	rg.POST("/interview/evaluate", h.evaluate)
	rg.POST("/interview/score", h.score)
}

type questionsRequest struct {
	JobDescription string `json:"job_description"`
	JobRole        string `json:"job_role"`
	NumQuestions   *int   `json:"num_questions"`
}

func (h *Handler) questions(c *gin.Context) {
	var req questionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	num := defaultNumQuestions
	if req.NumQuestions != nil {
		num = *req.NumQuestions
		if num < minNumQuestions || num > maxNumQuestions {
			respond.Error(c, http.StatusBadRequest, "validation_error", "num_questions must be between 3 and 10", nil)
			return
		}
	}

	generated := h.Generator.Generate(req.JobDescription, req.JobRole, num)
	metrics.IncQuestionGen()

	respond.OK(c, gin.H{
		"questions":       generated,
		"total_questions": len(generated),
	})
}

type evaluateRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}
	if req.Category == "" {
		req.Category = "General"
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	start := metrics.NowMillis()
	evaluation := h.Evaluator.Evaluate(c.Request.Context(), req.Question, req.Answer, req.Category, req.Difficulty)
	metrics.ObserveScoringDurationMs(metrics.NowMillis() - start)
	metrics.IncAnswerEval()

	respond.OK(c, evaluation)
}

type scoreRequest struct {
	Evaluations []ScoredAnswer `json:"evaluations"`
}

func (h *Handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	summary := Aggregate(req.Evaluations)
	metrics.IncInterviewScore()

	if h.Scores != nil && len(req.Evaluations) > 0 {
		if _, err := h.Scores.Record(c.Request.Context(), scores.KindInterview, summary.OverallScore, summary); err != nil {
			telemetry.Warn("failed to record interview score", map[string]any{"error": err.Error()})
		}
	}

	respond.OK(c, summary)
}
