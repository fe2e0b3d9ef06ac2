// Package embedding provides the vector-similarity oracle boundary: text in,
// fixed-dimension vector out, cosine similarity computed locally.
package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// Generator produces embedding vectors for text.
type Generator interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the generator.
	Close() error
}

// batchSize is the number of contents sent per batch-embed API call.
const batchSize = 100

// maxConcurrentBatches bounds parallel batch-embed calls.
const maxConcurrentBatches = 4

// GeminiGenerator implements Generator using the Gemini embedding API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator for the given embedding model.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Embed returns the embedding vector for a single text.
func (g *GeminiGenerator) Embed(ctx context.Context, text string) ([]float32, error) {
	em := g.client.EmbeddingModel(g.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil {
		return nil, fmt.Errorf("empty embedding in response")
	}
	return resp.Embedding.Values, nil
}

// EmbedBatch embeds texts in chunks, running chunks concurrently.
// The result preserves input order.
func (g *GeminiGenerator) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(texts))
	grp, gCtx := errgroup.WithContext(ctx)
	grp.SetLimit(maxConcurrentBatches)

	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))
		start, end := start, end
		grp.Go(func() error {
			em := g.client.EmbeddingModel(g.model)
			batch := em.NewBatch()
			for _, t := range texts[start:end] {
				batch.AddContent(genai.Text(t))
			}
			resp, err := em.BatchEmbedContents(gCtx, batch)
			if err != nil {
				return fmt.Errorf("failed to embed batch [%d:%d]: %w", start, end, err)
			}
			if len(resp.Embeddings) != end-start {
				return fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Embeddings), end-start)
			}
			for i, e := range resp.Embeddings {
				vectors[start+i] = e.Values
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// Close releases resources held by the generator.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
