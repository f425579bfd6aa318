package agent

import (
	"context"
	"fmt"
	"strings"

	"agentic-rag/internal/contextutil"
	"agentic-rag/internal/llm"
	"agentic-rag/internal/retrieval"
)

const (
	// MaxIterations is the hard ceiling on decide/retrieve/grade cycles
	// per request; the loop always terminates within it.
	MaxIterations = 3

	// searchTopK is how many chunks a retrieval step requests.
	searchTopK = 3
)

// ResolutionKind names the terminal state the loop reached.
type ResolutionKind string

const (
	// ResolutionNoQuestion: no user question could be extracted.
	ResolutionNoQuestion ResolutionKind = "no_question"
	// ResolutionDirect: the decision step chose to answer without retrieval.
	ResolutionDirect ResolutionKind = "direct"
	// ResolutionNoDocuments: retrieval returned zero documents.
	ResolutionNoDocuments ResolutionKind = "no_documents"
	// ResolutionGrounded: retrieval passed grading; the answer cites context.
	ResolutionGrounded ResolutionKind = "grounded"
	// ResolutionExhausted: the iteration ceiling was reached.
	ResolutionExhausted ResolutionKind = "exhausted"
)

// Resolution is the terminal output of the loop: a ready answer-generation
// request plus, on the grounded path, the retrieved documents for citation.
// The orchestrator never runs the final generation itself.
type Resolution struct {
	Kind       ResolutionKind
	Question   string // working question at termination; "" for no_question
	Messages   []llm.Message
	Documents  []retrieval.Result
	Iterations int
}

// Orchestrator runs the decide/retrieve/grade/rewrite state machine for
// one request at a time. It holds no per-request state; concurrent
// requests share only the read-mostly searcher.
type Orchestrator struct {
	model    LanguageModel
	searcher retrieval.Searcher
	grader   *Grader
	rewriter *Rewriter
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(model LanguageModel, searcher retrieval.Searcher, grader *Grader, rewriter *Rewriter) *Orchestrator {
	return &Orchestrator{
		model:    model,
		searcher: searcher,
		grader:   grader,
		rewriter: rewriter,
	}
}

// Resolve runs the loop over the conversation and returns a terminal
// resolution. The caller's turns are never mutated; rewritten questions
// are appended only to an internal working copy.
//
// Decision and search failures surface as errors; grading and rewriting
// failures degrade to safe defaults inside their components.
func (o *Orchestrator) Resolve(ctx context.Context, turns []Turn) (Resolution, error) {
	logger := contextutil.LoggerFromContext(ctx)

	question := LatestUserQuestion(turns)
	if question == "" {
		logger.InfoContext(ctx, "no user question found, answering from history")
		return Resolution{
			Kind:     ResolutionNoQuestion,
			Messages: historyMessages(turns),
		}, nil
	}

	history := make([]Turn, len(turns))
	copy(history, turns)
	working := question

	for iteration := 1; ; iteration++ {
		if iteration > MaxIterations {
			logger.InfoContext(ctx, "iteration ceiling reached, issuing best-effort answer", "question", working)
			return Resolution{
				Kind:       ResolutionExhausted,
				Question:   working,
				Iterations: iteration - 1,
				Messages: []llm.Message{
					{Role: llm.RoleUser, Content: fmt.Sprintf(exhaustedPrompt, working)},
				},
			}, nil
		}

		search, err := o.decide(ctx, working)
		if err != nil {
			return Resolution{}, fmt.Errorf("decision call failed: %w", err)
		}

		if !search {
			logger.InfoContext(ctx, "decision: answer directly", "iteration", iteration)
			return Resolution{
				Kind:       ResolutionDirect,
				Question:   working,
				Iterations: iteration,
				Messages:   historyMessages(history),
			}, nil
		}

		results, err := o.searcher.Search(ctx, working, searchTopK)
		if err != nil {
			return Resolution{}, fmt.Errorf("document search failed: %w", err)
		}

		if len(results) == 0 {
			logger.InfoContext(ctx, "no documents found, falling back to general knowledge", "iteration", iteration, "question", working)
			history = append(history, UserTurn(noDocumentsInstruction))
			return Resolution{
				Kind:       ResolutionNoDocuments,
				Question:   working,
				Iterations: iteration,
				Messages:   historyMessages(history),
			}, nil
		}

		contextBlock := retrieval.FormatContext(results)
		score := o.grader.Grade(ctx, working, contextBlock)
		logger.InfoContext(ctx, "graded retrieved context", "iteration", iteration, "score", score, "results", len(results))

		if score > relevanceThreshold {
			return Resolution{
				Kind:       ResolutionGrounded,
				Question:   working,
				Iterations: iteration,
				Documents:  results,
				Messages: []llm.Message{
					{Role: llm.RoleUser, Content: fmt.Sprintf(groundedAnswerPrompt, contextBlock, working)},
				},
			}, nil
		}

		working = o.rewriter.Rewrite(ctx, working)
		history = append(history, UserTurn(working))
		logger.InfoContext(ctx, "context not relevant, retrying with rewritten question", "iteration", iteration, "question", working)
	}
}

// decide asks the model whether the question needs retrieval. The reply
// is matched case-insensitively for the token SEARCH; anything else,
// including malformed output, means answer directly.
func (o *Orchestrator) decide(ctx context.Context, question string) (bool, error) {
	reply, err := o.model.Complete(ctx, fmt.Sprintf(decidePrompt, question))
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToUpper(reply), "SEARCH"), nil
}
