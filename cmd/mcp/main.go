// Package main provides the entry point for the product feed MCP server.
//
// The server lets assistant clients read a user's feed, search the catalog and
// share products with friends through the HTTP API.
//
// Configuration:
//
//	PRODUCT_FEED_API_URL   - Base URL of the API (default: http://localhost:8080)
//	PRODUCT_FEED_API_TOKEN - API token for authentication (required, format: user_api|xxx)
package main

import (
	"log"
	"os"

	"github.com/danielyoungkimball/oneoff-mvp/cmd/mcp/client"
	"github.com/danielyoungkimball/oneoff-mvp/cmd/mcp/server"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	apiURL := os.Getenv("PRODUCT_FEED_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("PRODUCT_FEED_API_TOKEN")
	if apiToken == "" {
		log.Fatal("PRODUCT_FEED_API_TOKEN environment variable is required")
	}

	apiClient := client.NewClient(apiURL, apiToken)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
