package vertex

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/application/ports"
)

// Generator implements the TextGenerator port on Vertex AI Gemini models
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator
func NewGenerator(client *genai.Client) ports.TextGenerator {
	return &Generator{client: client}
}

// Generate invokes the named model with a single text prompt and returns the
// concatenated text parts of the first candidate. The call is synchronous and
// may take several seconds.
func (g *Generator) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("model %q invocation failed: %w", model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model %q returned no candidates", model)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("model %q returned no text parts", model)
	}
	return sb.String(), nil
}
