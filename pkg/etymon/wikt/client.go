package wikt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cognicore/etymon/pkg/etymon/internalerr"
)

// DefaultBaseURL is the English Wiktionary API endpoint.
const DefaultBaseURL = "https://en.wiktionary.org/w/api.php"

// DefaultTimeout bounds each network call.
const DefaultTimeout = 12 * time.Second

// Client calls a MediaWiki-compatible dictionary API. Both request
// shapes are read-only and unauthenticated.
type Client struct {
	BaseURL string

	HTTPClient *http.Client
}

type parseResponse struct {
	Parse *struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// RenderPage fetches the rendered HTML of a page by exact title,
// following redirects. A missing page returns internalerr.ErrNotFound.
func (c *Client) RenderPage(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":        {"parse"},
		"page":          {title},
		"prop":          {"text"},
		"format":        {"json"},
		"redirects":     {"1"},
		"formatversion": {"2"},
	}

	var payload parseResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return "", err
	}
	if payload.Error != nil || payload.Parse == nil || payload.Parse.Text == "" {
		return "", internalerr.ErrNotFound
	}
	return payload.Parse.Text, nil
}

// SearchTitles runs a fuzzy title search in the main namespace, capped
// at limit results, and returns candidate titles in service order.
func (c *Client) SearchTitles(ctx context.Context, query string, limit int) ([]string, error) {
	params := url.Values{
		"action":    {"opensearch"},
		"search":    {query},
		"limit":     {strconv.Itoa(limit)},
		"namespace": {"0"},
		"format":    {"json"},
	}

	// The opensearch payload is positional: [query, titles, descriptions, urls].
	var payload []json.RawMessage
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, err
	}
	if len(payload) < 2 {
		return nil, nil
	}
	var titles []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return nil, fmt.Errorf("wikt: decode search titles: %w", err)
	}
	return titles, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: api returned status %s", internalerr.ErrRemoteUnavailable, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}
