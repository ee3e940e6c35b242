package advise

import (
	"context"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type fakeClient struct {
	gotRequest openai.ChatCompletionRequest
	reply      string
	err        error
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.gotRequest = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Content: f.reply},
		}},
	}, nil
}

func TestSuggest_ParsesBulletLines(t *testing.T) {
	fake := &fakeClient{reply: "- Lock down shared folders\n\n- Expire stale sessions\n"}
	adv := &Advisor{Client: fake, Model: "test-model"}

	got, err := adv.Suggest(context.Background(), []string{"The shared folder is open to everyone."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "Lock down shared folders" || got[1] != "Expire stale sessions" {
		t.Fatalf("unexpected suggestions %v", got)
	}
	if fake.gotRequest.Model != "test-model" {
		t.Fatalf("model not forwarded: %+v", fake.gotRequest)
	}
	if !strings.Contains(fake.gotRequest.Messages[1].Content, "shared folder is open") {
		t.Fatalf("paragraph missing from prompt: %q", fake.gotRequest.Messages[1].Content)
	}
}

func TestSuggest_EmptyInputIsNoop(t *testing.T) {
	adv := &Advisor{Client: &fakeClient{}, Model: "test-model"}
	got, err := adv.Suggest(context.Background(), nil)
	if err != nil || got != nil {
		t.Fatalf("expected silent no-op, got %v %v", got, err)
	}
}

func TestSuggest_CapsParagraphBudget(t *testing.T) {
	fake := &fakeClient{reply: "- ok"}
	adv := &Advisor{Client: fake, Model: "test-model"}

	many := make([]string, 40)
	for i := range many {
		many[i] = "paragraph"
	}
	if _, err := adv.Suggest(context.Background(), many); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := strings.Count(fake.gotRequest.Messages[1].Content, "> paragraph"); n != maxParagraphs {
		t.Fatalf("expected %d excerpts in prompt, got %d", maxParagraphs, n)
	}
}

func TestNew_DisabledWithoutModel(t *testing.T) {
	if adv := New("", "", ""); adv != nil {
		t.Fatalf("expected nil advisor without a model, got %+v", adv)
	}
}
