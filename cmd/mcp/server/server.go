// Package server provides the MCP server implementation.
package server

import (
	"github.com/danielyoungkimball/oneoff-mvp/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the MCP server for the product feed.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"product-feed",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_feed",
		mcp.WithDescription(
			"Get your personalised product feed. Products friends shared with you come first, "+
				"followed by products matching your preferences."),
	), s.handleGetFeed)

	s.mcpServer.AddTool(mcp.NewTool("get_preferences",
		mcp.WithDescription("Get your stored preferences: favorite brands, price range and recent searches."),
	), s.handleGetPreferences)

	s.mcpServer.AddTool(mcp.NewTool("update_preferences",
		mcp.WithDescription("Update your preferences. Only the fields you pass are changed."),
		mcp.WithString("favorite_brands",
			mcp.Description("Comma-separated list of favorite brands; replaces the stored list"),
		),
		mcp.WithNumber("min_price",
			mcp.Description("Lowest price you are interested in"),
		),
		mcp.WithNumber("max_price",
			mcp.Description("Highest price you are interested in"),
		),
		mcp.WithString("theme",
			mcp.Description("Display theme: 'light', 'dark' or 'system'"),
		),
	), s.handleUpdatePreferences)

	s.mcpServer.AddTool(mcp.NewTool("list_products",
		mcp.WithDescription("List catalog products, optionally filtered by brand, price and tags."),
		mcp.WithString("brand",
			mcp.Description("Only include products from this brand"),
		),
		mcp.WithNumber("min_price",
			mcp.Description("Minimum price"),
		),
		mcp.WithNumber("max_price",
			mcp.Description("Maximum price"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags the product must carry"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of products per page (default: 20, max: 100)"),
		),
	), s.handleListProducts)

	s.mcpServer.AddTool(mcp.NewTool("get_product",
		mcp.WithDescription("Get full details of a product by its ID."),
		mcp.WithString("product_id",
			mcp.Required(),
			mcp.Description("The ID of the product to retrieve"),
		),
	), s.handleGetProduct)

	s.mcpServer.AddTool(mcp.NewTool("search_products",
		mcp.WithDescription(
			"Search for products semantically similar to a description, "+
				"for example 'waterproof hiking boots under 150'."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Free text describing what you are looking for"),
			mcp.MaxLength(1024),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of products to return (default: 10, max: 100)"),
		),
	), s.handleSearchProducts)

	s.mcpServer.AddTool(mcp.NewTool("get_similar_products",
		mcp.WithDescription("Find products similar to a given product."),
		mcp.WithString("product_id",
			mcp.Required(),
			mcp.Description("The ID of the product to find similar products for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of similar products to return (default: 10)"),
		),
	), s.handleGetSimilarProducts)

	s.mcpServer.AddTool(mcp.NewTool("share_product",
		mcp.WithDescription("Recommend a product to a friend. It will appear at the top of their feed."),
		mcp.WithString("receiver_id",
			mcp.Required(),
			mcp.Description("The user ID of the friend to share with"),
		),
		mcp.WithString("product_id",
			mcp.Required(),
			mcp.Description("The ID of the product to share"),
		),
		mcp.WithString("message",
			mcp.Description("Optional note for your friend (max 500 characters)"),
			mcp.MaxLength(500),
		),
	), s.handleShareProduct)

	s.mcpServer.AddTool(mcp.NewTool("search_users",
		mcp.WithDescription("Find friends to share products with, matching on name or email."),
		mcp.WithString("query",
			mcp.Description("Part of a name or email (omit to list everyone)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of users to return (default: 10, max: 50)"),
		),
	), s.handleSearchUsers)

	s.mcpServer.AddTool(mcp.NewTool("list_received_referrals",
		mcp.WithDescription("List products friends have shared with you, newest first."),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of referrals per page (default: 20, max: 100)"),
		),
	), s.handleListReceivedReferrals)

	s.mcpServer.AddTool(mcp.NewTool("list_sent_referrals",
		mcp.WithDescription("List products you have shared with friends, newest first."),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of referrals per page (default: 20, max: 100)"),
		),
	), s.handleListSentReferrals)

	s.mcpServer.AddTool(mcp.NewTool("delete_referral",
		mcp.WithDescription("Withdraw a product recommendation you sent."),
		mcp.WithString("referral_id",
			mcp.Required(),
			mcp.Description("The ID of the referral to delete"),
		),
	), s.handleDeleteReferral)
}
