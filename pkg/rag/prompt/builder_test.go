package prompt

import (
	"strings"
	"testing"

	"doc-qa-be/pkg/store"
)

func TestBuildTagsEachSource(t *testing.T) {
	passages := []store.Passage{
		{SourceFile: "geography.pdf", Page: 1, Text: "Paris is the capital of France."},
		{SourceFile: "geography.pdf", Page: 2, Text: "Berlin is the capital of Germany."},
	}

	got := NewGroundedBuilder(passages, "What is the capital of France?").Build()

	for _, want := range []string{
		"Source 1: geography.pdf (Page 1)",
		"Paris is the capital of France.",
		"Source 2: geography.pdf (Page 2)",
		"Berlin is the capital of Germany.",
		"USER QUESTION: What is the capital of France?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildContextPrecedesQuestion(t *testing.T) {
	passages := []store.Passage{
		{SourceFile: "doc.pdf", Page: 3, Text: "Some grounding text."},
	}

	got := NewGroundedBuilder(passages, "A question?").Build()

	contextAt := strings.Index(got, "Some grounding text.")
	questionAt := strings.Index(got, "A question?")
	if contextAt < 0 || questionAt < 0 {
		t.Fatal("prompt missing context or question")
	}
	if contextAt > questionAt {
		t.Error("context must precede the question")
	}
	if !strings.HasSuffix(got, "ANSWER:") {
		t.Error("prompt must end with the answer cue")
	}
}
