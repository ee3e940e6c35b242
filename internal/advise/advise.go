// Package advise asks an OpenAI-compatible endpoint what to do with README
// paragraphs the pattern classifier could not categorize. It is strictly
// optional: suggestions land in the report for human review and a failure
// never affects the hardening run.
package advise

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal chat-completion surface the advisor needs, so any
// OpenAI-compatible or local backend can be swapped in.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Advisor turns unclassified README paragraphs into suggested manual steps.
type Advisor struct {
	Client Client
	Model  string
}

const systemMessage = "You are assisting with a Windows security-hardening checklist. " +
	"For each excerpt from a competition README, reply with at most one short " +
	"imperative action per excerpt, one per line prefixed with '- '. If an " +
	"excerpt needs no action, skip it. No narration."

const maxParagraphs = 12

// New builds an advisor against an OpenAI-compatible endpoint. Returns nil
// when no model is configured; callers treat a nil advisor as disabled.
func New(baseURL, apiKey, model string) *Advisor {
	if model == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Advisor{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Suggest returns one suggestion line per actionable excerpt. The paragraph
// budget keeps prompts bounded on verbose READMEs.
func (a *Advisor) Suggest(ctx context.Context, paragraphs []string) ([]string, error) {
	if a == nil || a.Client == nil || a.Model == "" {
		return nil, errors.New("advisor not configured")
	}
	if len(paragraphs) == 0 {
		return nil, nil
	}
	if len(paragraphs) > maxParagraphs {
		paragraphs = paragraphs[:maxParagraphs]
	}

	var user strings.Builder
	user.WriteString("README excerpts:\n")
	for _, p := range paragraphs {
		user.WriteString("\n> ")
		user.WriteString(strings.TrimSpace(p))
		user.WriteString("\n")
	}

	resp, err := a.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: user.String()},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("advisor returned no choices")
	}
	return parseSuggestions(resp.Choices[0].Message.Content), nil
}

func parseSuggestions(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
