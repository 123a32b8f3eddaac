package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const productURIPrefix = "product://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			productURIPrefix+"{product_id}",
			"Individual product from the catalog",
			mcp.WithTemplateDescription(
				"Fetch a specific product by its ID, including brand, price, tags and links."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleProductResource,
	)
}

func (s *Server) handleProductResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	productID, ok := strings.CutPrefix(uri, productURIPrefix)
	if !ok {
		return nil, fmt.Errorf("invalid product URI format: %s", uri)
	}
	if productID == "" {
		return nil, fmt.Errorf("missing product_id in URI: %s", uri)
	}

	product, err := s.client.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}

	data, err := json.MarshalIndent(product, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
