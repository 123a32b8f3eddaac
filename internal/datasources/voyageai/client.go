package voyageai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.voyageai.com/v1"

var _ datasources.Embedder = (*Client)(nil)

// Client embeds text using the VoyageAI contextual embeddings API.
type Client struct {
	http            *resty.Client
	model           string
	outputDimension int
}

// NewClient creates a new VoyageAI client. baseURL may be empty to use DefaultBaseURL.
func NewClient(apiKey, model, baseURL string, outputDimension int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		http:            client,
		model:           model,
		outputDimension: outputDimension,
	}
}

type embeddingRequest struct {
	Inputs          [][]string `json:"inputs"`
	Model           string     `json:"model"`
	InputType       string     `json:"input_type"`
	OutputDimension int        `json:"output_dimension,omitempty"`
}

type embeddingResponse struct {
	Data []struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	} `json:"data"`
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	var result embeddingResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(embeddingRequest{
			Inputs:          [][]string{{text}},
			Model:           c.model,
			InputType:       "query",
			OutputDimension: c.outputDimension,
		}).
		SetResult(&result).
		Post("/contextualizedembeddings")
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("VoyageAI API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	if len(result.Data) == 0 || len(result.Data[0].Data) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	return result.Data[0].Data[0].Embedding, nil
}
