package openlibrary

import (
	"context"
	"fmt"
	"net/url"

	"bookcatalog/internal/platform/restclient"
)

const DefaultBaseURL = "https://openlibrary.org"

type Client struct {
	rest *restclient.Client
}

func NewClient(baseURL, userAgent string, rps int, maxRetries int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{rest: restclient.New(baseURL, userAgent, rps, maxRetries)}
}

// Author is the author reference attached to a search result.
type Author struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Doc is a single book found by author search.
type Doc struct {
	Author Author `json:"author"`
	Title  string `json:"title"`
	Key    string `json:"key"`
}

// searchResponse matches search.json
type searchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Key         string   `json:"key"`
		Title       string   `json:"title"`
		AuthorNames []string `json:"author_name"`
		AuthorKeys  []string `json:"author_key"`
	} `json:"docs"`
}

// SearchByAuthor returns the works Open Library lists for author. Only the
// first credited author of each work is kept.
func (c *Client) SearchByAuthor(ctx context.Context, author string) ([]Doc, error) {
	path := fmt.Sprintf("/search.json?author=%s&fields=key,title,author_name,author_key",
		url.QueryEscape(author))

	var res searchResponse
	if err := c.rest.GetJSON(ctx, path, &res); err != nil {
		return nil, fmt.Errorf("open library search by author %q: %w", author, err)
	}

	docs := make([]Doc, 0, len(res.Docs))
	for _, d := range res.Docs {
		doc := Doc{Title: d.Title, Key: d.Key}
		if len(d.AuthorNames) > 0 {
			doc.Author.Name = d.AuthorNames[0]
		}
		if len(d.AuthorKeys) > 0 {
			doc.Author.Key = d.AuthorKeys[0]
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
