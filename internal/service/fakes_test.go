package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"doc-qa-be/pkg/extract"
	"doc-qa-be/pkg/llm"
)

// fakeEmbedder maps text onto keyword-count vectors so similarity is
// predictable by construction.
type fakeEmbedder struct {
	mu    sync.Mutex
	fail  bool
	calls int
}

var embedderKeywords = []string{"paris", "berlin", "france", "germany", "capital"}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	f.calls++
	fail := f.fail
	f.mu.Unlock()
	if fail {
		return nil, errors.New("embedding backend down")
	}

	lower := strings.ToLower(text)
	vec := make([]float32, len(embedderKeywords))
	for i, kw := range embedderKeywords {
		vec[i] = float32(strings.Count(lower, kw))
	}
	return vec, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// fakeLLM records prompts and returns a canned completion.
type fakeLLM struct {
	mu      sync.Mutex
	fail    bool
	answer  string
	prompts []string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", errors.New("empty history")
	}
	return f.Generate(ctx, history[len(history)-1].Content, opts...)
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("ollama unreachable")
	}
	f.prompts = append(f.prompts, prompt)
	if f.answer != "" {
		return f.answer, nil
	}
	return "generated answer", nil
}

func (f *fakeLLM) promptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeLLM) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

// fakeExtractor serves canned pages per path. A path registered in errs
// fails; a path in panics panics mid-extraction.
type fakeExtractor struct {
	pages  map[string][]extract.Page
	errs   map[string]error
	panics map[string]bool
}

func newFakeExtractor() *fakeExtractor {
	return &fakeExtractor{
		pages:  make(map[string][]extract.Page),
		errs:   make(map[string]error),
		panics: make(map[string]bool),
	}
}

func (f *fakeExtractor) Extract(path string) ([]extract.Page, error) {
	if f.panics[path] {
		panic("extractor blew up on " + path)
	}
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	return f.pages[path], nil
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
