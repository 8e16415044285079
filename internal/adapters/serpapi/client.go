package serpapi

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"travel_planner/internal/adapters/apiclient"
	"travel_planner/internal/domain"
)

const DefaultBase = "https://serpapi.com"

// Client runs Google searches through SerpAPI.
type Client struct {
	api *apiclient.Client
	key string
}

func New(base, key string, timeout time.Duration) *Client {
	if base == "" {
		base = DefaultBase
	}
	return &Client{api: apiclient.New("serpapi", base, timeout, nil), key: key}
}

type searchResponse struct {
	OrganicResults []struct {
		Title string `json:"title"`
	} `json:"organic_results"`
}

func (c *Client) Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error) {
	if c.key == "" {
		return nil, apiclient.ErrNoAPIKey
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("api_key", c.key)
	q.Set("engine", "google")
	q.Set("num", strconv.Itoa(num))

	var resp searchResponse
	if err := c.api.GetJSON(ctx, "search", "/search", q, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.SearchResult, 0, len(resp.OrganicResults))
	for _, r := range resp.OrganicResults {
		out = append(out, domain.SearchResult{Title: r.Title})
	}
	return out, nil
}
