package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/scores"
)

func setupInterviewRouter(scoreSvc *scores.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(
		NewEvaluator(fixtureSentiment{label: "positive"}),
		NewGenerator(rand.New(rand.NewSource(1))),
		scoreSvc,
	)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postInterview(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestQuestionsEndpointDefaults(t *testing.T) {
	router := setupInterviewRouter(nil)

	resp := postInterview(t, router, "/api/v1/interview/questions", map[string]any{
		"job_description": "We need a python developer with aws experience.",
		"job_role":        "Backend Developer",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Questions      []Question `json:"questions"`
		TotalQuestions int        `json:"total_questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.TotalQuestions != 5 || len(out.Questions) != 5 {
		t.Fatalf("expected 5 questions by default, got %d", out.TotalQuestions)
	}
	for i, q := range out.Questions {
		if q.ID != i+1 {
			t.Fatalf("question %d has id %d", i, q.ID)
		}
	}
}

func TestQuestionsEndpointValidation(t *testing.T) {
	router := setupInterviewRouter(nil)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"missing_job", map[string]any{"num_questions": 5}},
		{"too_few", map[string]any{"job_description": "python", "num_questions": 2}},
		{"too_many", map[string]any{"job_description": "python", "num_questions": 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postInterview(t, router, "/api/v1/interview/questions", tc.payload)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
		})
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	router := setupInterviewRouter(nil)

	resp := postInterview(t, router, "/api/v1/interview/evaluate", map[string]string{
		"question": "Tell me about a project you are proud of.",
		"answer":   "I worked on a project where we improved performance by 30% for example.",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out AnswerEvaluation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Score != 7.0 {
		t.Fatalf("expected score 7.0, got %v", out.Score)
	}
	if out.Sentiment != "positive" {
		t.Fatalf("expected positive sentiment, got %q", out.Sentiment)
	}
	if !out.HasExample || !out.HasResult {
		t.Fatalf("expected example and result flags, got %+v", out)
	}
}

func TestEvaluateEndpointShortAnswer(t *testing.T) {
	router := setupInterviewRouter(nil)

	resp := postInterview(t, router, "/api/v1/interview/evaluate", map[string]string{
		"question": "Why this role?",
		"answer":   "ok",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out AnswerEvaluation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Score != 2 {
		t.Fatalf("expected score 2, got %v", out.Score)
	}
	if out.Sentiment != "neutral" {
		t.Fatalf("expected neutral sentiment, got %q", out.Sentiment)
	}
}

func TestEvaluateEndpointRequiresQuestion(t *testing.T) {
	router := setupInterviewRouter(nil)

	resp := postInterview(t, router, "/api/v1/interview/evaluate", map[string]string{
		"answer": "a detailed answer about my experience",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestScoreEndpoint(t *testing.T) {
	repo := scores.NewMemoryRepo()
	router := setupInterviewRouter(scores.NewService(repo))

	resp := postInterview(t, router, "/api/v1/interview/score", map[string]any{
		"evaluations": []map[string]any{
			{"score": 8.5, "category": "Introduction"},
			{"score": 7.5, "category": "Technical"},
			{"score": 9.0, "category": "Behavioral"},
			{"score": 6.5, "category": "Technical"},
			{"score": 8.0, "category": "Motivation"},
		},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out Summary
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.OverallScore != 79.0 || out.Grade != "B" {
		t.Fatalf("unexpected summary: %+v", out)
	}

	recorded, err := repo.List(context.Background(), scores.KindInterview, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recorded) != 1 || recorded[0].Score != 79.0 {
		t.Fatalf("unexpected recorded scores: %+v", recorded)
	}
}

func TestScoreEndpointEmpty(t *testing.T) {
	repo := scores.NewMemoryRepo()
	router := setupInterviewRouter(scores.NewService(repo))

	resp := postInterview(t, router, "/api/v1/interview/score", map[string]any{
		"evaluations": []map[string]any{},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out Summary
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Grade != "F" || out.OverallScore != 0 {
		t.Fatalf("unexpected empty summary: %+v", out)
	}

	recorded, err := repo.List(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recorded) != 0 {
		t.Fatalf("expected no recorded scores, got %d", len(recorded))
	}
}
