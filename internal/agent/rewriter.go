package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agentic-rag/internal/contextutil"
)

// Rewriter reformulates a question that failed the relevance bar.
type Rewriter struct {
	model   LanguageModel
	timeout time.Duration
}

// NewRewriter creates a rewriter. timeout bounds each rewrite call.
func NewRewriter(model LanguageModel, timeout time.Duration) *Rewriter {
	return &Rewriter{model: model, timeout: timeout}
}

// Rewrite returns an improved formulation of the question. On any failure
// it returns the original question unchanged, so a persistently failing
// rewriter just repeats the same query until the iteration ceiling.
func (r *Rewriter) Rewrite(ctx context.Context, question string) string {
	logger := contextutil.LoggerFromContext(ctx)

	callCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	reply, err := r.model.Complete(callCtx, fmt.Sprintf(rewritePrompt, question))
	if err != nil {
		logger.WarnContext(ctx, "rewrite failed, keeping original question", "error", err)
		return question
	}

	rewritten := strings.TrimSpace(reply)
	if rewritten == "" {
		logger.WarnContext(ctx, "rewrite returned empty output, keeping original question")
		return question
	}

	return rewritten
}
