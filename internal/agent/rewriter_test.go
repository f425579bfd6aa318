package agent_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"agentic-rag/internal/agent"
	"agentic-rag/internal/agent/mocks"
)

func TestRewriterReturnsTrimmedRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockLanguageModel(ctrl)
	model.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("  What does the LangGraph framework do?  \n", nil)

	rewriter := agent.NewRewriter(model, 0)
	got := rewriter.Rewrite(context.Background(), "langgraph?")
	if got != "What does the LangGraph framework do?" {
		t.Fatalf("Rewrite() = %q", got)
	}
}

func TestRewriterKeepsOriginalOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockLanguageModel(ctrl)
	model.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	rewriter := agent.NewRewriter(model, 0)
	if got := rewriter.Rewrite(context.Background(), "langgraph?"); got != "langgraph?" {
		t.Fatalf("Rewrite() = %q, want original question", got)
	}
}

func TestRewriterKeepsOriginalOnEmptyOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockLanguageModel(ctrl)
	model.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("   \n", nil)

	rewriter := agent.NewRewriter(model, 0)
	if got := rewriter.Rewrite(context.Background(), "langgraph?"); got != "langgraph?" {
		t.Fatalf("Rewrite() = %q, want original question", got)
	}
}
