package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/scamdex/scamdex-api/models"
)

// Client is a thin wrapper over the catalog's REST API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api")
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListOptions carries the list endpoint's query parameters; zero values are
// omitted from the request so the server applies its defaults
type ListOptions struct {
	Query     string
	Tags      []string
	Platforms []string
	ScoreMin  *int
	ScoreMax  *int
	Page      int
	Limit     int
	Sort      string
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Query != "" {
		v.Set("q", o.Query)
	}
	if len(o.Tags) > 0 {
		v.Set("tags", strings.Join(o.Tags, ","))
	}
	if len(o.Platforms) > 0 {
		v.Set("platform", strings.Join(o.Platforms, ","))
	}
	if o.ScoreMin != nil {
		v.Set("fraudScoreMin", strconv.Itoa(*o.ScoreMin))
	}
	if o.ScoreMax != nil {
		v.Set("fraudScoreMax", strconv.Itoa(*o.ScoreMax))
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	return v
}

// ListScams fetches a filtered page of reports plus the pagination block
func (c *Client) ListScams(ctx context.Context, opts ListOptions) ([]models.ScamReport, models.Pagination, error) {
	var resp models.ScamListResponse
	if err := c.get(ctx, "/scams", opts.values(), &resp); err != nil {
		return nil, models.Pagination{}, err
	}
	return resp.Data, resp.Pagination, nil
}

// SearchScams runs a relevance-ranked text search
func (c *Client) SearchScams(ctx context.Context, query string, limit int) ([]models.ScamReport, models.SearchInfo, error) {
	v := url.Values{}
	v.Set("q", query)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var resp models.SearchResponse
	if err := c.get(ctx, "/scams/search", v, &resp); err != nil {
		return nil, models.SearchInfo{}, err
	}
	return resp.Data, resp.SearchInfo, nil
}

// TrendingScams fetches the top reports by fraud score
func (c *Client) TrendingScams(ctx context.Context, limit int) ([]models.ScamReport, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var resp models.ScamsResponse
	if err := c.get(ctx, "/scams/trending", v, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Stats fetches the collection-wide aggregate statistics
func (c *Client) Stats(ctx context.Context) (models.ScamStats, error) {
	var resp models.StatsResponse
	if err := c.get(ctx, "/scams/stats", nil, &resp); err != nil {
		return models.ScamStats{}, err
	}
	return resp.Data, nil
}

// Tags fetches the distinct tags currently in use
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var resp models.TagListResponse
	if err := c.get(ctx, "/scams/tags", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetScam fetches a single report by id
func (c *Client) GetScam(ctx context.Context, id string) (models.ScamReport, error) {
	var resp models.ScamResponse
	if err := c.get(ctx, "/scams/"+url.PathEscape(id), nil, &resp); err != nil {
		return models.ScamReport{}, err
	}
	return resp.Data, nil
}

// CreateScam submits a new report and returns the stored document
func (c *Client) CreateScam(ctx context.Context, report models.ScamReport) (models.ScamReport, error) {
	var resp models.ScamResponse
	if err := c.do(ctx, http.MethodPost, "/scams", report, &resp); err != nil {
		return models.ScamReport{}, err
	}
	return resp.Data, nil
}

// UpdateScam fully replaces a report and returns the stored document
func (c *Client) UpdateScam(ctx context.Context, id string, report models.ScamReport) (models.ScamReport, error) {
	var resp models.ScamResponse
	if err := c.do(ctx, http.MethodPut, "/scams/"+url.PathEscape(id), report, &resp); err != nil {
		return models.ScamReport{}, err
	}
	return resp.Data, nil
}

// DeleteScam removes a report by id
func (c *Client) DeleteScam(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/scams/"+url.PathEscape(id), nil, nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	var envelope struct {
		Error   string              `json:"error"`
		Message string              `json:"message"`
		Errors  []models.FieldError `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if len(envelope.Errors) > 0 {
			return fmt.Errorf("api request failed: %d %s: %s", resp.StatusCode, envelope.Errors[0].Field, envelope.Errors[0].Message)
		}
		if envelope.Error != "" {
			return fmt.Errorf("api request failed: %d %s", resp.StatusCode, envelope.Error)
		}
		if envelope.Message != "" {
			return fmt.Errorf("api request failed: %d %s", resp.StatusCode, envelope.Message)
		}
	}
	return fmt.Errorf("api request failed: %d %s", resp.StatusCode, resp.Status)
}
