package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/gorilla/feeds"
)

// rssItemLimit is how many of the newest products the RSS feed carries.
const rssItemLimit = 50

// RSS serves the newest catalog products as an RSS feed.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.RecentProductsLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "New Products",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Products recently added to the catalog",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	products, err := c.Lister.ListRecentProducts(r.Context(), rssItemLimit, 0)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch products for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, p := range products {
		item := &feeds.Item{
			Id:          p.ID,
			IsPermaLink: "false",
			Title:       p.Name,
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/products/" + p.ID},
			Description: productDescription(p),
			Created:     p.CreatedAt,
		}
		if p.SourceURL != nil {
			item.Link = &feeds.Link{Href: *p.SourceURL}
		}
		if p.Brand != nil {
			item.Author = &feeds.Author{Name: *p.Brand}
		}
		if p.ImageURL != nil {
			item.Enclosure = &feeds.Enclosure{Url: *p.ImageURL, Type: "image/jpeg", Length: "0"}
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func productDescription(p domain.Product) string {
	var parts []string
	if p.Brand != nil && *p.Brand != "" {
		parts = append(parts, *p.Brand)
	}
	if p.Price != nil {
		parts = append(parts, fmt.Sprintf("%.2f", *p.Price))
	}
	if len(p.Tags) > 0 {
		parts = append(parts, strings.Join(p.Tags, ", "))
	}
	return strings.Join(parts, " | ")
}
