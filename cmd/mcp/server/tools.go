package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/danielyoungkimball/oneoff-mvp/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleGetFeed(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	feed, err := s.client.GetFeed(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get feed: %v", err)), nil
	}

	if len(feed.Items) == 0 {
		return mcp.NewToolResultText("Your feed is empty."), nil
	}
	return formatJSONResult(fmt.Sprintf("Feed for %q with %d item(s):", feed.Query, len(feed.Items)), feed.Items)
}

func (s *Server) handleGetPreferences(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	profile, err := s.client.GetPreferences(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get preferences: %v", err)), nil
	}
	return formatJSONResult("", profile)
}

func (s *Server) handleUpdatePreferences(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	update, err := parsePreferencesUpdate(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	profile, err := s.client.UpdatePreferences(ctx, update)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update preferences: %v", err)), nil
	}
	return formatJSONResult("Preferences updated:", profile)
}

func parsePreferencesUpdate(args map[string]any) (client.PreferencesUpdate, error) {
	var update client.PreferencesUpdate
	changed := false

	if brands, ok := args["favorite_brands"].(string); ok {
		list := splitAndTrim(brands)
		update.FavoriteBrands = &list
		changed = true
	}
	if theme, ok := args["theme"].(string); ok && theme != "" {
		update.Theme = &theme
		changed = true
	}

	minPrice, hasMin := args["min_price"].(float64)
	maxPrice, hasMax := args["max_price"].(float64)
	if hasMin || hasMax {
		update.PriceRange = &client.PriceRange{}
		if hasMin {
			update.PriceRange.Min = &minPrice
		}
		if hasMax {
			update.PriceRange.Max = &maxPrice
		}
		changed = true
	}

	if !changed {
		return update, errors.New("at least one of favorite_brands, min_price, max_price or theme is required")
	}
	return update, nil
}

func (s *Server) handleListProducts(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filters := parseProductFilters(request.Params.Arguments)

	result, err := s.client.ListProducts(ctx, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list products: %v", err)), nil
	}

	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No products found."), nil
	}
	header := fmt.Sprintf("Found %d product(s) of %d:", len(result.Data), result.Metadata.Total)
	return formatJSONResult(header, result.Data)
}

func parseProductFilters(args map[string]any) client.ProductFilters {
	var filters client.ProductFilters

	if brand, ok := args["brand"].(string); ok {
		filters.Brand = strings.TrimSpace(brand)
	}
	if v, ok := args["min_price"].(float64); ok {
		filters.MinPrice = &v
	}
	if v, ok := args["max_price"].(float64); ok {
		filters.MaxPrice = &v
	}
	if tags, ok := args["tags"].(string); ok && tags != "" {
		filters.Tags = splitAndTrim(tags)
	}
	filters.Page, filters.PageSize = parsePagination(args)

	return filters
}

func (s *Server) handleGetProduct(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	productID, ok := request.Params.Arguments["product_id"].(string)
	if !ok || productID == "" {
		return mcp.NewToolResultError("product_id is required"), nil
	}

	product, err := s.client.GetProduct(ctx, productID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get product: %v", err)), nil
	}
	return formatJSONResult("", product)
}

func (s *Server) handleSearchProducts(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	text, ok := args["text"].(string)
	if !ok || strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	products, err := s.client.SearchProducts(ctx, text, parseLimit(args, 10, 100))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search products: %v", err)), nil
	}
	return formatProductsResult(products)
}

func (s *Server) handleGetSimilarProducts(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	productID, ok := args["product_id"].(string)
	if !ok || productID == "" {
		return mcp.NewToolResultError("product_id is required"), nil
	}

	products, err := s.client.GetSimilarProducts(ctx, productID, parseLimit(args, 10, 100))
	if err != nil {
		errMsg := fmt.Sprintf("failed to get similar products: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}
	return formatProductsResult(products)
}

func (s *Server) handleShareProduct(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	receiverID, ok := args["receiver_id"].(string)
	if !ok || receiverID == "" {
		return mcp.NewToolResultError("receiver_id is required"), nil
	}
	productID, ok := args["product_id"].(string)
	if !ok || productID == "" {
		return mcp.NewToolResultError("product_id is required"), nil
	}

	var message *string
	if m, ok := args["message"].(string); ok && strings.TrimSpace(m) != "" {
		message = &m
	}

	referral, err := s.client.ShareProduct(ctx, receiverID, productID, message)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to share product: %v", err)), nil
	}

	msg := fmt.Sprintf("Shared product %s with %s (referral %s)", productID, receiverID, referral.ID)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleSearchUsers(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments
	query, _ := args["query"].(string)

	users, err := s.client.SearchUsers(ctx, strings.TrimSpace(query), parseLimit(args, 10, 50))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search users: %v", err)), nil
	}

	if len(users) == 0 {
		return mcp.NewToolResultText("No users found."), nil
	}
	return formatJSONResult(fmt.Sprintf("%d user(s):", len(users)), users)
}

func (s *Server) handleListReceivedReferrals(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	page, pageSize := parsePagination(request.Params.Arguments)

	result, err := s.client.ListReceivedReferrals(ctx, page, pageSize)
	if err != nil {
		errMsg := fmt.Sprintf("failed to list received referrals: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No referrals found."), nil
	}
	return formatJSONResult(fmt.Sprintf("%d referral(s) of %d:", len(result.Data), result.Metadata.Total), result.Data)
}

func (s *Server) handleListSentReferrals(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	page, pageSize := parsePagination(request.Params.Arguments)

	result, err := s.client.ListSentReferrals(ctx, page, pageSize)
	if err != nil {
		errMsg := fmt.Sprintf("failed to list sent referrals: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No referrals found."), nil
	}
	return formatJSONResult(fmt.Sprintf("%d referral(s) of %d:", len(result.Data), result.Metadata.Total), result.Data)
}

func (s *Server) handleDeleteReferral(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	referralID, ok := request.Params.Arguments["referral_id"].(string)
	if !ok || referralID == "" {
		return mcp.NewToolResultError("referral_id is required"), nil
	}

	if err := s.client.DeleteReferral(ctx, referralID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete referral: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted referral %s", referralID)), nil
}

func parsePagination(args map[string]any) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p, ok := args["page"].(float64); ok && p > 0 {
		page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), 100)
	}
	return page, pageSize
}

func parseLimit(args map[string]any, def, maxLimit int) int {
	if l, ok := args["limit"].(float64); ok && l > 0 {
		return min(int(l), maxLimit)
	}
	return def
}

func splitAndTrim(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func formatProductsResult(products []client.ScoredProduct) (*mcp.CallToolResult, error) {
	if len(products) == 0 {
		return mcp.NewToolResultText("No products found."), nil
	}
	return formatJSONResult(fmt.Sprintf("Found %d product(s):", len(products)), products)
}

func formatJSONResult(header string, v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}

	if header == "" {
		return mcp.NewToolResultText(string(data)), nil
	}
	return mcp.NewToolResultText(header + "\n\n" + string(data)), nil
}
