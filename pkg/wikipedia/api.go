package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

var ErrNoSummary = errors.New("no wikipedia summary")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  "landmark-catalog/1.0",
	}
}

// FetchPageExtract fetches the plain text introduction of a page, following
// redirects.
func (c *Client) FetchPageExtract(ctx context.Context, pageTitle string) (*PageAPIResponse, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("format", "json")
	params.Set("titles", strings.ReplaceAll(pageTitle, " ", "_"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var apiResp PageAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// Summary returns the first paragraph of the page intro for title.
func (c *Client) Summary(ctx context.Context, title string) (string, error) {
	resp, err := c.FetchPageExtract(ctx, title)
	if err != nil {
		return "", err
	}
	for _, page := range resp.Query.Pages {
		if page.Missing != nil {
			continue
		}
		extract := strings.TrimSpace(page.Extract)
		if i := strings.Index(extract, "\n"); i >= 0 {
			extract = strings.TrimSpace(extract[:i])
		}
		if extract != "" {
			return extract, nil
		}
	}
	return "", fmt.Errorf("%w for %s", ErrNoSummary, title)
}
