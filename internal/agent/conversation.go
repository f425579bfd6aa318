package agent

import (
	"strings"

	"agentic-rag/internal/llm"
)

// Part is one piece of structured message content.
type Part struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Turn is a single conversation message. Transports deliver message
// content in one of three shapes, so a turn carries all three variants:
// plain Text, ContentParts (an array-of-parts content field), or Parts
// (a top-level parts field). Exactly one is normally populated.
type Turn struct {
	Role         string
	Text         string
	ContentParts []Part
	Parts        []Part
}

// UserTurn builds a plain-text user turn.
func UserTurn(text string) Turn {
	return Turn{Role: llm.RoleUser, Text: text}
}

// text returns the turn's text using the ordered fallback over content
// variants: plain text first, then array-of-parts content, then top-level
// parts. Within a parts list the most recent non-empty text part wins.
func (t Turn) text() string {
	if s := strings.TrimSpace(t.Text); s != "" {
		return s
	}
	if s := lastPartText(t.ContentParts); s != "" {
		return s
	}
	return lastPartText(t.Parts)
}

// lastPartText returns the most recent non-empty text part.
func lastPartText(parts []Part) string {
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i].Type != "" && parts[i].Type != "text" {
			continue
		}
		if s := strings.TrimSpace(parts[i].Text); s != "" {
			return s
		}
	}
	return ""
}

// LatestUserQuestion scans the conversation newest-first and returns the
// text of the most recent user turn, or "" if none is found.
func LatestUserQuestion(turns []Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role != llm.RoleUser {
			continue
		}
		if s := turns[i].text(); s != "" {
			return s
		}
	}
	return ""
}

// historyMessages flattens turns into chat messages, dropping turns with
// no extractable text.
func historyMessages(turns []Turn) []llm.Message {
	messages := make([]llm.Message, 0, len(turns))
	for _, turn := range turns {
		text := turn.text()
		if text == "" {
			continue
		}
		role := turn.Role
		if role == "" {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: text})
	}
	return messages
}
