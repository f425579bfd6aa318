package agent_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"agentic-rag/internal/agent"
	agentmocks "agentic-rag/internal/agent/mocks"
	"agentic-rag/internal/retrieval"
	retrievalmocks "agentic-rag/internal/retrieval/mocks"
)

// promptContains matches string arguments containing a substring, used to
// tell decision prompts apart from rewrite prompts on the same mock.
type promptContains struct {
	substr string
}

func (m promptContains) Matches(x any) bool {
	s, ok := x.(string)
	return ok && strings.Contains(s, m.substr)
}

func (m promptContains) String() string {
	return fmt.Sprintf("contains %q", m.substr)
}

func userTurns(texts ...string) []agent.Turn {
	turns := make([]agent.Turn, 0, len(texts))
	for _, text := range texts {
		turns = append(turns, agent.UserTurn(text))
	}
	return turns
}

func sampleResults() []retrieval.Result {
	return []retrieval.Result{
		{
			Chunk: retrieval.DocumentChunk{
				ID:       "0",
				Text:     "LangGraph is a framework for building stateful agents.",
				Source:   "langgraph.txt",
				Line:     1,
				FileType: retrieval.FileTypeText,
			},
			Score: 2,
		},
	}
}

func TestResolveNoQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	turns := []agent.Turn{{Role: "assistant", Text: "hello, how can I help?"}}
	res, err := orch.Resolve(context.Background(), turns)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Kind != agent.ResolutionNoQuestion {
		t.Fatalf("Resolve() kind = %q, want %q", res.Kind, agent.ResolutionNoQuestion)
	}
	if len(res.Messages) != 1 || res.Messages[0].Content != "hello, how can I help?" {
		t.Fatalf("Resolve() messages = %+v", res.Messages)
	}
}

func TestResolveDirectAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	model.EXPECT().
		Complete(gomock.Any(), promptContains{"what is 2+2?"}).
		Return("ANSWER", nil)

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	res, err := orch.Resolve(context.Background(), userTurns("what is 2+2?"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Kind != agent.ResolutionDirect {
		t.Fatalf("Resolve() kind = %q, want %q", res.Kind, agent.ResolutionDirect)
	}
	if res.Iterations != 1 {
		t.Errorf("Resolve() iterations = %d, want 1", res.Iterations)
	}
	if len(res.Messages) != 1 || res.Messages[0].Content != "what is 2+2?" {
		t.Fatalf("Resolve() messages = %+v", res.Messages)
	}
}

func TestResolveDecisionMatchingIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		reply string
		kind  agent.ResolutionKind
	}{
		{"search", agent.ResolutionGrounded},
		{"I think you should Search the documents.", agent.ResolutionGrounded},
		{"answer", agent.ResolutionDirect},
		{"garbled output with no verdict", agent.ResolutionDirect},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			model := agentmocks.NewMockLanguageModel(ctrl)
			searcher := retrievalmocks.NewMockSearcher(ctrl)

			model.EXPECT().
				Complete(gomock.Any(), promptContains{"deciding whether"}).
				Return(tt.reply, nil)
			if tt.kind == agent.ResolutionGrounded {
				searcher.EXPECT().
					Search(gomock.Any(), "what is LangGraph?", 3).
					Return(sampleResults(), nil)
				model.EXPECT().
					CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(gradeReply(0.9))
			}

			orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

			res, err := orch.Resolve(context.Background(), userTurns("what is LangGraph?"))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if res.Kind != tt.kind {
				t.Fatalf("Resolve() kind = %q, want %q", res.Kind, tt.kind)
			}
		})
	}
}

func TestResolveGroundedAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	model.EXPECT().
		Complete(gomock.Any(), promptContains{"deciding whether"}).
		Return("SEARCH", nil)
	searcher.EXPECT().
		Search(gomock.Any(), "what is LangGraph?", 3).
		Return(sampleResults(), nil)
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(gradeReply(0.9))

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	res, err := orch.Resolve(context.Background(), userTurns("what is LangGraph?"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Kind != agent.ResolutionGrounded {
		t.Fatalf("Resolve() kind = %q, want %q", res.Kind, agent.ResolutionGrounded)
	}
	if len(res.Documents) != 1 || res.Documents[0].Chunk.Source != "langgraph.txt" {
		t.Fatalf("Resolve() documents = %+v", res.Documents)
	}
	if len(res.Messages) != 1 {
		t.Fatalf("Resolve() messages = %+v", res.Messages)
	}
	prompt := res.Messages[0].Content
	if !strings.Contains(prompt, "LangGraph is a framework") {
		t.Errorf("grounded prompt missing retrieved context: %q", prompt)
	}
	if !strings.Contains(prompt, "source: langgraph.txt") {
		t.Errorf("grounded prompt missing source metadata: %q", prompt)
	}
	if !strings.Contains(prompt, "Question: what is LangGraph?") {
		t.Errorf("grounded prompt missing question: %q", prompt)
	}
}

func TestResolveNoDocumentsFallsBackToGeneralKnowledge(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	model.EXPECT().
		Complete(gomock.Any(), promptContains{"deciding whether"}).
		Return("SEARCH", nil)
	searcher.EXPECT().
		Search(gomock.Any(), "what is LangGraph?", 3).
		Return(nil, nil)

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	res, err := orch.Resolve(context.Background(), userTurns("what is LangGraph?"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Kind != agent.ResolutionNoDocuments {
		t.Fatalf("Resolve() kind = %q, want %q", res.Kind, agent.ResolutionNoDocuments)
	}
	last := res.Messages[len(res.Messages)-1]
	if !strings.Contains(last.Content, "general knowledge") {
		t.Fatalf("last message should instruct a general-knowledge fallback: %q", last.Content)
	}
}

func TestResolveExactThresholdTriggersRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	// Iteration 1: search, grade exactly 0.5 (not strictly greater, so
	// rejected), rewrite. Iteration 2: search with the rewritten question
	// and pass.
	model.EXPECT().
		Complete(gomock.Any(), promptContains{"deciding whether"}).
		Return("SEARCH", nil).
		Times(2)
	searcher.EXPECT().
		Search(gomock.Any(), "langgraph?", 3).
		Return(sampleResults(), nil)
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(gradeReply(0.5))
	model.EXPECT().
		Complete(gomock.Any(), promptContains{"improved question"}).
		Return("What is the LangGraph framework?", nil)
	searcher.EXPECT().
		Search(gomock.Any(), "What is the LangGraph framework?", 3).
		Return(sampleResults(), nil)
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(gradeReply(0.9))

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	res, err := orch.Resolve(context.Background(), userTurns("langgraph?"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Kind != agent.ResolutionGrounded {
		t.Fatalf("Resolve() kind = %q, want %q", res.Kind, agent.ResolutionGrounded)
	}
	if res.Question != "What is the LangGraph framework?" {
		t.Errorf("Resolve() question = %q, want rewritten question", res.Question)
	}
	if res.Iterations != 2 {
		t.Errorf("Resolve() iterations = %d, want 2", res.Iterations)
	}
}

func TestResolveExhaustsIterationCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	// Every cycle decides to search, retrieves something, and fails
	// grading and rewriting; the loop must stop after MaxIterations.
	model.EXPECT().
		Complete(gomock.Any(), promptContains{"deciding whether"}).
		Return("SEARCH", nil).
		Times(agent.MaxIterations)
	searcher.EXPECT().
		Search(gomock.Any(), "what is LangGraph?", 3).
		Return(sampleResults(), nil).
		Times(agent.MaxIterations)
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("grader down")).
		Times(agent.MaxIterations)
	model.EXPECT().
		Complete(gomock.Any(), promptContains{"improved question"}).
		Return("", errors.New("rewriter down")).
		Times(agent.MaxIterations)

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	res, err := orch.Resolve(context.Background(), userTurns("what is LangGraph?"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Kind != agent.ResolutionExhausted {
		t.Fatalf("Resolve() kind = %q, want %q", res.Kind, agent.ResolutionExhausted)
	}
	if res.Iterations != agent.MaxIterations {
		t.Errorf("Resolve() iterations = %d, want %d", res.Iterations, agent.MaxIterations)
	}
	if res.Question != "what is LangGraph?" {
		t.Errorf("Resolve() question = %q, want original kept by failing rewriter", res.Question)
	}
	if len(res.Messages) != 1 || !strings.Contains(res.Messages[0].Content, "incomplete") {
		t.Fatalf("Resolve() messages = %+v", res.Messages)
	}
}

func TestResolveDecisionFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	model.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("", errors.New("provider down"))

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	_, err := orch.Resolve(context.Background(), userTurns("what is LangGraph?"))
	if err == nil || !strings.Contains(err.Error(), "decision call failed") {
		t.Fatalf("Resolve() error = %v, want decision failure", err)
	}
}

func TestResolveSearchFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	model.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("SEARCH", nil)
	searcher.EXPECT().
		Search(gomock.Any(), gomock.Any(), 3).
		Return(nil, errors.New("store unavailable"))

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	_, err := orch.Resolve(context.Background(), userTurns("what is LangGraph?"))
	if err == nil || !strings.Contains(err.Error(), "document search failed") {
		t.Fatalf("Resolve() error = %v, want search failure", err)
	}
}

// TestResolveAgainstLexicalCorpus runs the loop against a real lexical
// searcher: the question overlaps one chunk heavily, so the grounded
// answer prompt must cite that chunk's provenance.
func TestResolveAgainstLexicalCorpus(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)

	searcher := retrieval.NewLexicalSearcher([]retrieval.DocumentChunk{
		{ID: "0", Text: "The weather in spring is mild.", Source: "weather.txt", Line: 1, FileType: retrieval.FileTypeText},
		{ID: "1", Text: "LangGraph is a framework for building stateful LLM agents.", Source: "langgraph.pdf", Page: 1, Line: 4, FileType: retrieval.FileTypePDF},
	})

	model.EXPECT().
		Complete(gomock.Any(), promptContains{"deciding whether"}).
		Return("SEARCH", nil)
	model.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(gradeReply(0.95))

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	res, err := orch.Resolve(context.Background(), userTurns("tell me about langgraph"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Kind != agent.ResolutionGrounded {
		t.Fatalf("Resolve() kind = %q, want %q", res.Kind, agent.ResolutionGrounded)
	}
	if len(res.Documents) != 1 || res.Documents[0].Chunk.ID != "1" {
		t.Fatalf("Resolve() documents = %+v", res.Documents)
	}
	prompt := res.Messages[0].Content
	if !strings.Contains(prompt, "source: langgraph.pdf") || !strings.Contains(prompt, "page: 1") {
		t.Fatalf("grounded prompt missing citation metadata:\n%s", prompt)
	}
}

func TestResolveDoesNotMutateCallerTurns(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := agentmocks.NewMockLanguageModel(ctrl)
	searcher := retrievalmocks.NewMockSearcher(ctrl)

	model.EXPECT().
		Complete(gomock.Any(), promptContains{"deciding whether"}).
		Return("SEARCH", nil).
		Times(2)
	searcher.EXPECT().
		Search(gomock.Any(), gomock.Any(), 3).
		Return(sampleResults(), nil).
		Times(2)
	gomock.InOrder(
		model.EXPECT().
			CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(gradeReply(0.2)),
		model.EXPECT().
			CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(gradeReply(0.9)),
	)
	model.EXPECT().
		Complete(gomock.Any(), promptContains{"improved question"}).
		Return("a better question", nil)

	orch := agent.NewOrchestrator(model, searcher, agent.NewGrader(model, 0), agent.NewRewriter(model, 0))

	turns := userTurns("original question")
	if _, err := orch.Resolve(context.Background(), turns); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(turns) != 1 || turns[0].Text != "original question" {
		t.Fatalf("caller turns were mutated: %+v", turns)
	}
}
