package embedding

import "context"

// Provider generates fixed-length embedding vectors for text. Vectors from
// one provider instance are directly comparable by cosine similarity: the
// same normalization is applied to passages and queries alike.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch embeds every text, preserving input order and length.
	// It is a throughput convenience only; results are identical to
	// calling Embed per text.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
