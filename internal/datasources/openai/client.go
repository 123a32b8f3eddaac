// Package openai embeds text with the OpenAI embeddings API.
package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "text-embedding-ada-002"
)

var _ datasources.Embedder = (*Client)(nil)

type Client struct {
	http  *resty.Client
	model string
}

// NewClient creates a client for model. Empty baseURL or model select the defaults.
func NewClient(apiKey, model, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{http: client, model: model}
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	var (
		result  embeddingResponse
		failure errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(embeddingRequest{Model: c.model, Input: []string{text}}).
		SetResult(&result).
		SetError(&failure).
		Post("/embeddings")
	if err != nil {
		return nil, fmt.Errorf("calling OpenAI embeddings API: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		if failure.Error.Message != "" {
			return nil, fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode(), failure.Error.Message)
		}
		return nil, fmt.Errorf("OpenAI API error (status %d)", resp.StatusCode())
	}

	if len(result.Data) == 0 || len(result.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	return result.Data[0].Embedding, nil
}
