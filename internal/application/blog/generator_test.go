package blog

import (
	"context"
	"strings"
	"testing"

	"blogforge-api/internal/config"
	"blogforge-api/pkg/errors"
)

type fakeClient struct {
	calls  int
	system string
	user   string
	out    string
	err    error
}

func (f *fakeClient) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.user = user
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func testConfig(apiKey string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Groq.APIKey = apiKey
	cfg.LLM.Groq.Model = "llama-3.3-70b-versatile"
	return cfg
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	client := &fakeClient{out: "content"}
	g := NewGenerator(testConfig(""), client)

	_, err := g.Generate(context.Background(), Params{Topic: "cats"})
	if err == nil {
		t.Fatal("expected error")
	}

	appErr := errors.AsAppError(err)
	if appErr.Code != errors.CodeAPIKeyMissing {
		t.Fatalf("code = %s, want %s", appErr.Code, errors.CodeAPIKeyMissing)
	}
	if appErr.HTTPStatus != 500 {
		t.Fatalf("status = %d, want 500", appErr.HTTPStatus)
	}
	if appErr.ClientDetail() != "API key not configured on server" {
		t.Fatalf("detail = %q", appErr.ClientDetail())
	}
	if client.calls != 0 {
		t.Fatalf("upstream called %d times, want 0", client.calls)
	}
}

func TestGenerate_BlankTopic(t *testing.T) {
	client := &fakeClient{out: "content"}
	g := NewGenerator(testConfig("key"), client)

	_, err := g.Generate(context.Background(), Params{Topic: "   "})
	if err == nil {
		t.Fatal("expected error")
	}

	appErr := errors.AsAppError(err)
	if appErr.HTTPStatus != 400 {
		t.Fatalf("status = %d, want 400", appErr.HTTPStatus)
	}
	if client.calls != 0 {
		t.Fatalf("upstream called %d times, want 0", client.calls)
	}
}

func TestGenerate_NormalizesTopicAndRendersPrompt(t *testing.T) {
	client := &fakeClient{out: "generated post"}
	g := NewGenerator(testConfig("key"), client)

	result, err := g.Generate(context.Background(), Params{
		Topic:  "Write a blog about remote work productivity",
		Tone:   "casual",
		Length: "500-800",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Topic != "remote work productivity" {
		t.Fatalf("topic = %q, want %q", result.Topic, "remote work productivity")
	}
	if result.Content != "generated post" {
		t.Fatalf("content = %q", result.Content)
	}
	if client.calls != 1 {
		t.Fatalf("upstream called %d times, want 1", client.calls)
	}
	if !strings.Contains(client.user, `about: "remote work productivity"`) {
		t.Fatalf("prompt does not embed normalized topic: %q", client.user)
	}
	if !strings.Contains(client.user, "TONE: casual") {
		t.Fatalf("prompt does not embed tone")
	}
	if !strings.Contains(client.user, "TARGET LENGTH: 500-800 words") {
		t.Fatalf("prompt does not embed length")
	}
	if !strings.Contains(client.system, "professional SEO content writer") {
		t.Fatalf("system prompt missing persona: %q", client.system)
	}
}

func TestGenerate_AppliesDefaults(t *testing.T) {
	client := &fakeClient{out: "post"}
	g := NewGenerator(testConfig("key"), client)

	if _, err := g.Generate(context.Background(), Params{Topic: "cats"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.Contains(client.user, "TONE: "+DefaultTone) {
		t.Fatalf("default tone not applied: %q", client.user)
	}
	if !strings.Contains(client.user, "TARGET LENGTH: "+DefaultLength+" words") {
		t.Fatalf("default length not applied: %q", client.user)
	}
}

func TestGenerate_PropagatesUpstreamError(t *testing.T) {
	upstreamErr := errors.NewWithStatus(errors.CodeUpstreamError, "Rate limit reached", 429)
	client := &fakeClient{err: upstreamErr}
	g := NewGenerator(testConfig("key"), client)

	_, err := g.Generate(context.Background(), Params{Topic: "cats"})
	if err == nil {
		t.Fatal("expected error")
	}

	appErr := errors.AsAppError(err)
	if appErr.HTTPStatus != 429 {
		t.Fatalf("status = %d, want 429", appErr.HTTPStatus)
	}
	if appErr.ClientDetail() != "Rate limit reached" {
		t.Fatalf("detail = %q", appErr.ClientDetail())
	}
}
