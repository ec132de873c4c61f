package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	atsOptimizeTotal    atomic.Uint64
	jobParseTotal       atomic.Uint64
	answerEvalTotal     atomic.Uint64
	interviewScoreTotal atomic.Uint64
	questionGenTotal    atomic.Uint64

	// Rule-based scoring is cheap, so the buckets stay in the
	// sub-second range.
	scoringDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncATSOptimize increments the ATS analysis counter.
func IncATSOptimize() {
	atsOptimizeTotal.Add(1)
}

// IncJobParse increments the job parse counter.
func IncJobParse() {
	jobParseTotal.Add(1)
}

// IncAnswerEval increments the answer evaluation counter.
func IncAnswerEval() {
	answerEvalTotal.Add(1)
}

// IncInterviewScore increments the interview aggregation counter.
func IncInterviewScore() {
	interviewScoreTotal.Add(1)
}

// IncQuestionGen increments the question generation counter.
func IncQuestionGen() {
	questionGenTotal.Add(1)
}

// ObserveScoringDurationMs records one scoring operation's duration in milliseconds.
func ObserveScoringDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	scoringDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "ats_optimize_total", "Total ATS analyses performed", atsOptimizeTotal.Load())
	writeCounter(&buf, "job_parse_total", "Total job descriptions parsed", jobParseTotal.Load())
	writeCounter(&buf, "answer_eval_total", "Total interview answers evaluated", answerEvalTotal.Load())
	writeCounter(&buf, "interview_score_total", "Total interview sessions aggregated", interviewScoreTotal.Load())
	writeCounter(&buf, "question_gen_total", "Total question sets generated", questionGenTotal.Load())
	writeHistogram(&buf, "scoring_duration_ms", "Scoring operation duration in milliseconds", scoringDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
