package agent

import (
	"context"
	"fmt"
	"time"

	"agentic-rag/internal/contextutil"
	"agentic-rag/internal/llm"
)

const (
	// defaultGradeOnFailure is returned whenever grading fails; it sits
	// below the relevance threshold so a failed grade reads as "not
	// relevant" and the loop proceeds to rewrite.
	defaultGradeOnFailure = 0.3

	// relevanceThreshold is exclusive: a score of exactly 0.5 is rejected.
	relevanceThreshold = 0.5
)

var gradeSchema = llm.JSONSchema{
	Name:   "relevance_grade",
	Strict: true,
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Relevance score: a float value representing relevance from 0 to 1",
			},
		},
		"required":             []any{"score"},
		"additionalProperties": false,
	},
}

// Grader scores a retrieved-context/question pair in [0,1] with a single
// structured-output model call.
type Grader struct {
	model   LanguageModel
	timeout time.Duration
}

// NewGrader creates a grader. timeout bounds each grading call; expiry is
// treated the same as any other call failure.
func NewGrader(model LanguageModel, timeout time.Duration) *Grader {
	return &Grader{model: model, timeout: timeout}
}

// Grade returns the model's relevance score for the context against the
// question. Any failure of the underlying call, including timeout and
// out-of-range output, degrades to defaultGradeOnFailure rather than
// propagating.
func (g *Grader) Grade(ctx context.Context, question, contextText string) float64 {
	logger := contextutil.LoggerFromContext(ctx)

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var out struct {
		Score float64 `json:"score"`
	}
	prompt := fmt.Sprintf(gradePrompt, contextText, question)
	if err := g.model.CompleteStructured(callCtx, prompt, gradeSchema, &out); err != nil {
		logger.WarnContext(ctx, "grading failed, using default score", "error", err, "default", defaultGradeOnFailure)
		return defaultGradeOnFailure
	}

	if out.Score < 0 || out.Score > 1 {
		logger.WarnContext(ctx, "grade out of range, using default score", "score", out.Score)
		return defaultGradeOnFailure
	}

	return out.Score
}
