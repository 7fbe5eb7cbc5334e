// Package jsearch implements the job.Provider port on top of the JSearch
// API (RapidAPI).
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jobswipe/backend/pkg/job"
)

const defaultBaseURL = "https://jsearch.p.rapidapi.com"

// Client is a minimal JSearch client. Failures are wrapped in
// job.ErrProvider so callers can tell a fetch failure from an empty
// result.
type Client struct {
	APIKey  string
	Host    string
	BaseURL string
	httpDo  *http.Client
}

// New builds a Client; empty baseURL falls back to the public endpoint.
func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := ""
	if u, err := url.Parse(baseURL); err == nil {
		host = u.Host
	}
	return &Client{
		APIKey:  apiKey,
		Host:    host,
		BaseURL: baseURL,
		httpDo:  &http.Client{Timeout: 15 * time.Second},
	}
}

// searchResponse mirrors the relevant part of a JSearch reply.
type searchResponse struct {
	Data []result `json:"data"`
}

type result struct {
	JobID         string   `json:"job_id"`
	Title         string   `json:"job_title"`
	EmployerName  string   `json:"employer_name"`
	City          string   `json:"job_city"`
	Country       string   `json:"job_country"`
	MinSalary     *float64 `json:"job_min_salary"`
	MaxSalary     *float64 `json:"job_max_salary"`
	Description   string   `json:"job_description"`
	ApplyLink     string   `json:"job_apply_link"`
	PublisherLink string   `json:"publisher_link"`
}

// Search queries /search. An empty result set is (nil-error, empty slice);
// transport and non-2xx failures are job.ErrProvider.
func (c *Client) Search(ctx context.Context, query string, page, pages int) ([]job.Posting, error) {
	if page < 1 {
		page = 1
	}
	if pages < 1 {
		pages = 1
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", strconv.Itoa(pages))

	var out searchResponse
	if err := c.get(ctx, "/search", params, &out); err != nil {
		return nil, err
	}
	postings := make([]job.Posting, 0, len(out.Data))
	for _, r := range out.Data {
		postings = append(postings, toPosting(r))
	}
	return postings, nil
}

// Details queries /job-details for a single posting.
func (c *Client) Details(ctx context.Context, jobID string) (job.Posting, error) {
	params := url.Values{}
	params.Set("job_id", jobID)
	var out searchResponse
	if err := c.get(ctx, "/job-details", params, &out); err != nil {
		return job.Posting{}, err
	}
	if len(out.Data) == 0 {
		return job.Posting{}, fmt.Errorf("%w: %q", job.ErrNotFound, jobID)
	}
	return toPosting(out.Data[0]), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.BaseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", job.ErrProvider, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.Host)

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", job.ErrProvider, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: http %d", job.ErrProvider, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", job.ErrProvider, err)
	}
	return nil
}

func toPosting(r result) job.Posting {
	location := r.Country
	if r.City != "" {
		location = r.City + ", " + r.Country
	}
	salary := "Salary not specified"
	if r.MinSalary != nil && r.MaxSalary != nil {
		salary = fmt.Sprintf("$%.0f-$%.0f", *r.MinSalary, *r.MaxSalary)
	}
	desc := r.Description
	if desc == "" {
		desc = "No description available"
	}
	publisher := r.PublisherLink
	if publisher == "" {
		publisher = r.ApplyLink
	}
	return job.Posting{
		ID:            r.JobID,
		Title:         r.Title,
		Company:       r.EmployerName,
		Location:      location,
		Salary:        salary,
		Description:   desc,
		ApplyLink:     r.ApplyLink,
		PublisherLink: publisher,
	}
}
