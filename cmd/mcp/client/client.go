// Package client provides an HTTP client for the product feed API.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/danielyoungkimball/oneoff-mvp/internal/transport/web/controller"
	"github.com/go-resty/resty/v2"
)

// ScoredProduct is a product returned by search or similarity lookups.
type ScoredProduct struct {
	domain.Product
	Score float64 `json:"score"`
}

type scoredProductsResponse struct {
	Data []ScoredProduct `json:"data"`
}

// ProductFilters contains the structured filters for listing products.
type ProductFilters struct {
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Tags     []string
	Page     int
	PageSize int
}

// PreferencesUpdate is a partial preferences update; nil fields are left unchanged.
type PreferencesUpdate struct {
	Theme          *string     `json:"theme,omitempty"`
	Notifications  *bool       `json:"notifications,omitempty"`
	FavoriteBrands *[]string   `json:"favorite_brands,omitempty"`
	PriceRange     *PriceRange `json:"price_range,omitempty"`
}

type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Client is an HTTP client for the product feed API.
type Client struct {
	http *resty.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiToken string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")
	if apiToken != "" {
		c.SetAuthToken(apiToken)
	}
	return &Client{http: c}
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

func pageParams(page, pageSize int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	return params
}

func (f ProductFilters) queryParams() url.Values {
	params := pageParams(f.Page, f.PageSize)

	if f.Brand != "" {
		params.Set("brand", f.Brand)
	}
	if f.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if len(f.Tags) > 0 {
		params.Set("tags", strings.Join(f.Tags, ","))
	}
	return params
}

// GetFeed retrieves the caller's personalised feed.
func (c *Client) GetFeed(ctx context.Context) (domain.FeedResult, error) {
	var result domain.FeedResult
	err := c.do(ctx, "GET", "/v1/feed", nil, &result)
	return result, err
}

func (c *Client) GetPreferences(ctx context.Context) (domain.PreferenceProfile, error) {
	var profile domain.PreferenceProfile
	err := c.do(ctx, "GET", "/v1/preferences", nil, &profile)
	return profile, err
}

func (c *Client) UpdatePreferences(ctx context.Context, update PreferencesUpdate) (domain.PreferenceProfile, error) {
	var profile domain.PreferenceProfile
	err := c.do(ctx, "PUT", "/v1/preferences", update, &profile)
	return profile, err
}

// ListProducts lists catalog products matching filters.
func (c *Client) ListProducts(ctx context.Context, filters ProductFilters) (controller.ProductsListResponse, error) {
	var result controller.ProductsListResponse
	err := c.do(ctx, "GET", withQuery("/v1/products", filters.queryParams()), nil, &result)
	return result, err
}

// GetProduct retrieves a single product by ID.
func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, "GET", "/v1/products/"+url.PathEscape(productID), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts finds products semantically close to text.
func (c *Client) SearchProducts(ctx context.Context, text string, limit int) ([]ScoredProduct, error) {
	params := url.Values{"q": []string{text}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result scoredProductsResponse
	if err := c.do(ctx, "GET", withQuery("/v1/products/search", params), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetSimilarProducts finds products similar to the given product.
func (c *Client) GetSimilarProducts(ctx context.Context, productID string, limit int) ([]ScoredProduct, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result scoredProductsResponse
	path := withQuery("/v1/products/"+url.PathEscape(productID)+"/similar", params)
	if err := c.do(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ShareProduct recommends a product to another user.
func (c *Client) ShareProduct(
	ctx context.Context,
	receiverID, productID string,
	message *string,
) (domain.SocialReferral, error) {
	body := struct {
		ReceiverID string  `json:"receiver_id"`
		ProductID  string  `json:"product_id"`
		Message    *string `json:"message,omitempty"`
	}{
		ReceiverID: receiverID,
		ProductID:  productID,
		Message:    message,
	}

	var referral domain.SocialReferral
	err := c.do(ctx, "POST", "/v1/referrals", body, &referral)
	return referral, err
}

// SearchUsers finds users to share products with by name or email.
func (c *Client) SearchUsers(ctx context.Context, query string, limit int) ([]domain.User, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result controller.UsersListResponse
	if err := c.do(ctx, "GET", withQuery("/v1/users/search", params), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) ListReceivedReferrals(ctx context.Context, page, pageSize int) (controller.ReferralsListResponse, error) {
	var result controller.ReferralsListResponse
	err := c.do(ctx, "GET", withQuery("/v1/referrals/received", pageParams(page, pageSize)), nil, &result)
	return result, err
}

func (c *Client) ListSentReferrals(ctx context.Context, page, pageSize int) (controller.ReferralsListResponse, error) {
	var result controller.ReferralsListResponse
	err := c.do(ctx, "GET", withQuery("/v1/referrals/sent", pageParams(page, pageSize)), nil, &result)
	return result, err
}

// DeleteReferral removes a referral the caller sent.
func (c *Client) DeleteReferral(ctx context.Context, referralID string) error {
	return c.do(ctx, "DELETE", "/v1/referrals/"+url.PathEscape(referralID), nil, nil)
}
