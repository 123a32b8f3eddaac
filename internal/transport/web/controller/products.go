package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/gorilla/mux"
)

type ProductsListResponse struct {
	Data     []domain.Product `json:"data"`
	Metadata ListMetadata     `json:"metadata"`
}

// ProductsList handles GET /v1/products.
type ProductsList struct {
	Lister      datasources.ProductLister
	CacheMaxAge time.Duration
}

func (c ProductsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	filter, err := productFilterFromQuery(r.URL.Query())
	if err != nil {
		logger.InfoContext(ctx, "unable to parse product filter in query string", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.InfoContext(ctx, "invalid pagination", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	offset := pageOffset(page, pageSize)

	products, metadata, err := c.Lister.ListProducts(ctx, filter, pageSize, offset)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list products", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(w, r, http.StatusOK, ProductsListResponse{
		Data: products,
		Metadata: ListMetadata{
			Total:   metadata.TotalRows,
			HasMore: offset+len(products) < metadata.TotalRows,
		},
	})
}

// productFilterFromQuery reads brand, min_price, max_price and comma separated tags.
func productFilterFromQuery(q url.Values) (domain.ProductFilter, error) {
	var filter domain.ProductFilter

	if brand := strings.TrimSpace(q.Get("brand")); brand != "" {
		filter.Brand = &brand
	}

	for _, bound := range []struct {
		name string
		dst  **float64
	}{
		{"min_price", &filter.MinPrice},
		{"max_price", &filter.MaxPrice},
	} {
		if !q.Has(bound.name) {
			continue
		}
		v, err := strconv.ParseFloat(q.Get(bound.name), 64)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("unable to parse %s from query: %w", bound.name, err)
		}
		*bound.dst = &v
	}

	if q.Has("tags") {
		for _, tag := range strings.Split(q.Get("tags"), ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	if err := filter.Validate(); err != nil {
		return domain.ProductFilter{}, err
	}
	return filter, nil
}

// ProductGet handles GET /v1/products/{product_id}.
type ProductGet struct {
	Fetcher     datasources.ProductFetcher
	CacheMaxAge time.Duration
}

func (c ProductGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	id := mux.Vars(r)["product_id"]

	products, err := c.Fetcher.FetchProductsByID(ctx, []string{id})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch product", "error", err, "product_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(products) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(w, r, http.StatusOK, products[0])
}

type ScoredProductsResponse struct {
	Data []scoredProduct `json:"data"`
}

type scoredProduct struct {
	domain.Product
	Score float64 `json:"score"`
}

func newScoredProductsResponse(matches []domain.ScoredProduct) ScoredProductsResponse {
	data := make([]scoredProduct, 0, len(matches))
	for _, m := range matches {
		data = append(data, scoredProduct{Product: m.Product, Score: m.Score})
	}
	return ScoredProductsResponse{Data: data}
}

// ProductsSimilar handles GET /v1/products/{product_id}/similar.
type ProductsSimilar struct {
	Command command.Command[command.ListSimilarProductsRequest, []domain.ScoredProduct]
}

func (c ProductsSimilar) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	id := mux.Vars(r)["product_id"]

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := c.Command.Execute(ctx, command.ListSimilarProductsRequest{ProductID: id, Limit: limit})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		return
	case errors.Is(err, datasources.ErrEmbeddingUnavailable):
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to list similar products", "error", err, "product_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, newScoredProductsResponse(matches))
}

// maxSearchQueryBytes bounds the q parameter of a product search.
const maxSearchQueryBytes = 1024

// ProductsSearch handles GET /v1/products/search?q=.
type ProductsSearch struct {
	Command command.Command[command.SemanticSearchRequest, []domain.ScoredProduct]
}

func (c ProductsSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" || len(query) > maxSearchQueryBytes {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := c.Command.Execute(ctx, command.SemanticSearchRequest{Query: query, Limit: limit})
	switch {
	case errors.Is(err, datasources.ErrEmbeddingUnavailable):
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to search products", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, newScoredProductsResponse(matches))
}

type productCreateRequest struct {
	Name      string   `json:"name" validate:"required,max=255"`
	Brand     *string  `json:"brand" validate:"omitempty,max=255"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
	SourceURL *string  `json:"source_url" validate:"omitempty,url"`
	ImageURL  *string  `json:"img_url" validate:"omitempty,url"`
	Tags      []string `json:"tags" validate:"max=30,dive,max=64"`
}

// ProductCreate handles POST /v1/products.
type ProductCreate struct {
	Command command.Command[command.CreateProductRequest, domain.Product]
}

func (c ProductCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req productCreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.InfoContext(ctx, "invalid product request", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.Command.Execute(ctx, command.CreateProductRequest{
		Name:      req.Name,
		Brand:     req.Brand,
		Price:     req.Price,
		SourceURL: req.SourceURL,
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProduct) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		logger.ErrorContext(ctx, "unable to create product", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, product)
}

type productUpdateRequest struct {
	Name      *string   `json:"name" validate:"omitempty,max=255"`
	Brand     *string   `json:"brand" validate:"omitempty,max=255"`
	Price     *float64  `json:"price" validate:"omitempty,gte=0"`
	SourceURL *string   `json:"source_url" validate:"omitempty,url"`
	ImageURL  *string   `json:"img_url" validate:"omitempty,url"`
	Tags      *[]string `json:"tags" validate:"omitempty,max=30,dive,max=64"`
}

// ProductUpdate handles PUT /v1/products/{product_id}.
type ProductUpdate struct {
	Command command.Command[command.UpdateProductRequest, domain.Product]
}

func (c ProductUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	id := mux.Vars(r)["product_id"]

	var req productUpdateRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.InfoContext(ctx, "invalid product update request", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.Command.Execute(ctx, command.UpdateProductRequest{
		ProductID: id,
		Update: domain.ProductUpdate{
			Name:      req.Name,
			Brand:     req.Brand,
			Price:     req.Price,
			SourceURL: req.SourceURL,
			ImageURL:  req.ImageURL,
			Tags:      req.Tags,
		},
	})
	switch {
	case errors.Is(err, domain.ErrInvalidProduct):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "product not found")
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to update product", "error", err, "product_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, product)
}

// ProductDelete handles DELETE /v1/products/{product_id}.
type ProductDelete struct {
	Command command.Command[command.DeleteProductRequest, command.Empty]
}

func (c ProductDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	id := mux.Vars(r)["product_id"]

	_, err := c.Command.Execute(ctx, command.DeleteProductRequest{ProductID: id})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "product not found")
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to delete product", "error", err, "product_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type StringListResponse struct {
	Data []string `json:"data"`
}

// ProductBrands handles GET /v1/products/brands.
type ProductBrands struct {
	Lister      datasources.BrandLister
	CacheMaxAge time.Duration
}

func (c ProductBrands) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveStringList(w, r, "brands", c.Lister.ListBrands, c.CacheMaxAge)
}

// ProductTags handles GET /v1/products/tags.
type ProductTags struct {
	Lister      datasources.TagLister
	CacheMaxAge time.Duration
}

func (c ProductTags) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveStringList(w, r, "tags", c.Lister.ListTags, c.CacheMaxAge)
}

func serveStringList(
	w http.ResponseWriter,
	r *http.Request,
	what string,
	list func(ctx context.Context) ([]string, error),
	cacheMaxAge time.Duration,
) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	values, err := list(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list "+what, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if values == nil {
		values = []string{}
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(cacheMaxAge.Seconds())))
	writeJSON(w, r, http.StatusOK, StringListResponse{Data: values})
}

func limitFromQuery(q url.Values) (int, error) {
	if !q.Has("limit") {
		return 0, nil
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("invalid limit %q", q.Get("limit"))
	}
	return limit, nil
}
