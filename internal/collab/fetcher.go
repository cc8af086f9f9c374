// Package collab supplies default implementations of the search and fetch
// collaborators the grounding engine is parameterized over. The engine only
// sees the function contracts; everything here (robots compliance, rate
// limiting, caching, article extraction, LLM summarization) stays behind
// that boundary.
package collab

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/edforman-75/presscheck/internal/cache"
	"github.com/edforman-75/presscheck/internal/model"
	"github.com/edforman-75/presscheck/internal/worker"
	"golang.org/x/net/html"
)

// Fetcher retrieves and condenses page content for evidence evaluation.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *robotsChecker
	limiter    *worker.Limiter
	store      cache.Cache
	summarizer *Summarizer
}

// NewFetcher builds the default fetch collaborator. store and summarizer may
// be nil to disable caching and summarization.
func NewFetcher(cfg model.HTTPConfig, store cache.Cache, summarizer *Summarizer) *Fetcher {
	var transport http.RoundTripper
	if cfg.InsecureTLS {
		transport = &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	}
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBodyBytes,
		limiter:    worker.NewLimiter(cfg.RatePerSecond, cfg.RateBurst),
		store:      store,
		summarizer: summarizer,
	}
	if cfg.RespectRobots {
		f.robots = newRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}
	return f
}

// Fetch retrieves the page at rawURL and returns its readable text. When a
// prompt is supplied and a summarizer is configured, the text is condensed
// through the LLM with that prompt.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, prompt string) (string, error) {
	key := cache.Key("fetch", rawURL+"\x00"+prompt)
	if f.store != nil {
		if val, found := f.store.Get(key); found {
			return string(val), nil
		}
	}

	if f.robots != nil {
		allowed, delay := f.robots.canFetch(ctx, rawURL)
		if !allowed {
			return "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		if delay > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	body, err := f.get(ctx, rawURL)
	if err != nil {
		return "", err
	}

	text := extractReadableText(body)
	if prompt != "" && f.summarizer != nil {
		summary, err := f.summarizer.Summarize(ctx, text, prompt)
		if err == nil && summary != "" {
			text = summary
		}
	}

	if f.store != nil {
		_ = f.store.Set(key, []byte(text), 0)
	}
	return text, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	limited := io.LimitReader(resp.Body, f.maxBytes)
	data, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}

// extractReadableText pulls article text out of an HTML page, preferring
// article/main containers and falling back to a visible-text walk.
func extractReadableText(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err == nil {
		for _, sel := range []string{"article", "main", "[role=main]"} {
			if text := paragraphText(doc.Find(sel)); text != "" {
				return text
			}
		}
		if text := paragraphText(doc.Selection); text != "" {
			return text
		}
	}
	return visibleText(htmlContent)
}

func paragraphText(sel *goquery.Selection) string {
	var parts []string
	sel.Find("p, li, h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n")
}

// visibleText walks the parse tree collecting text nodes, skipping script
// and style subtrees.
func visibleText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return strings.TrimSpace(htmlContent)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(buf.String())
}
