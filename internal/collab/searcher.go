package collab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/edforman-75/presscheck/internal/cache"
	"github.com/edforman-75/presscheck/internal/model"
	"github.com/edforman-75/presscheck/internal/worker"
)

// Searcher is the default search collaborator: a JSON search API client
// returning ranked candidate URLs.
type Searcher struct {
	endpoint   string
	apiKey     string
	maxResults int
	httpClient *http.Client
	limiter    *worker.Limiter
	store      cache.Cache
}

// NewSearcher builds a Searcher against the configured endpoint. store may
// be nil to disable caching.
func NewSearcher(cfg model.SearchConfig, httpCfg model.HTTPConfig, store cache.Cache) *Searcher {
	return &Searcher{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		maxResults: cfg.MaxResults,
		httpClient: &http.Client{Timeout: httpCfg.Timeout},
		limiter:    worker.NewLimiter(httpCfg.RatePerSecond, httpCfg.RateBurst),
		store:      store,
	}
}

type searchResponse struct {
	Results []struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"results"`
}

// Search queries the endpoint and returns candidates in rank order.
func (s *Searcher) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if s.endpoint == "" {
		return nil, fmt.Errorf("no search endpoint configured")
	}

	key := cache.Key("search", query)
	if s.store != nil {
		if val, found := s.store.Get(key); found {
			var cached []model.SearchResult
			if err := json.Unmarshal(val, &cached); err == nil {
				return cached, nil
			}
		}
	}

	if err := s.limiter.Wait(ctx, s.endpoint); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	reqURL := fmt.Sprintf("%s?q=%s", s.endpoint, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search status: %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	var results []model.SearchResult
	for _, r := range parsed.Results {
		if r.URL == "" {
			continue
		}
		results = append(results, model.SearchResult{URL: r.URL, Title: r.Title})
		if s.maxResults > 0 && len(results) >= s.maxResults {
			break
		}
	}

	if s.store != nil {
		if data, err := json.Marshal(results); err == nil {
			_ = s.store.Set(key, data, 0)
		}
	}
	return results, nil
}
