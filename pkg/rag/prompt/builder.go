package prompt

import (
	"fmt"
	"strings"

	"doc-qa-be/pkg/store"
)

// GroundedBuilder assembles a generation prompt that places retrieved
// passages ahead of the user's question, each tagged with its source file
// and page for traceability.
type GroundedBuilder struct {
	passages []store.Passage
	question string
}

func NewGroundedBuilder(passages []store.Passage, question string) *GroundedBuilder {
	return &GroundedBuilder{
		passages: passages,
		question: question,
	}
}

func (b *GroundedBuilder) Build() string {
	var prompt strings.Builder

	b.writeRole(&prompt)
	b.writeContext(&prompt)
	b.writeQuestion(&prompt)
	b.writeInstructions(&prompt)

	return prompt.String()
}

func (b *GroundedBuilder) writeRole(prompt *strings.Builder) {
	prompt.WriteString("You are a helpful AI assistant. Use the provided context to answer the user's question thoroughly and in detail.\n\n")
}

func (b *GroundedBuilder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("CONTEXT FROM DOCUMENTS:\n")
	for i, p := range b.passages {
		fmt.Fprintf(prompt, "Source %d: %s (Page %d)\n%s\n\n", i+1, p.SourceFile, p.Page, p.Text)
	}
}

func (b *GroundedBuilder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("USER QUESTION: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\n")
}

func (b *GroundedBuilder) writeInstructions(prompt *strings.Builder) {
	prompt.WriteString("INSTRUCTIONS:\n")
	prompt.WriteString("1. Provide a comprehensive, detailed answer based ONLY on the context above\n")
	prompt.WriteString("2. If the answer cannot be fully found in the context, say what information is available and what is missing\n")
	prompt.WriteString("3. Be specific and include relevant details from the context\n")
	prompt.WriteString("4. Use proper formatting and structure in your response\n")
	prompt.WriteString("5. If referring to specific documents, mention the source and page numbers when available\n\n")
	prompt.WriteString("ANSWER:")
}
