// Package scraper implements the lead sources: a shared fetch helper with
// retry, backoff and inter-request jitter, plus one parser per public source.
package scraper

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/aksoytekstil/leadfinder/internal/config"
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:127.0) Gecko/20100101 Firefox/127.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:126.0) Gecko/20100101 Firefox/126.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
}

// Fetcher fetches pages on behalf of every source. Each Fetch sleeps a uniform
// random delay first, then retries transient failures with base<<attempt
// backoff. Exhausting the retries yields a nil document, not an error: callers
// treat it as end of results.
type Fetcher struct {
	client *http.Client
	cfg    config.ScrapingConfig

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

func NewFetcher(cfg config.ScrapingConfig) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		sleep:  time.Sleep,
	}
}

// Fetch downloads url and parses it into a document. Returns nil after all
// retries fail.
func (f *Fetcher) Fetch(ctx context.Context, url string) *goquery.Document {
	for attempt := 0; attempt < f.cfg.MaxRetries; attempt++ {
		f.randomDelay()

		doc, err := f.fetchOnce(ctx, url)
		if err == nil {
			return doc
		}

		log.Printf("scraper: attempt %d/%d failed for %s: %v", attempt+1, f.cfg.MaxRetries, url, err)
		if attempt < f.cfg.MaxRetries-1 {
			f.sleep(time.Second << attempt)
		}
	}

	log.Printf("scraper: giving up on %s after %d attempts", url, f.cfg.MaxRetries)
	return nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range f.headers() {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// headers produces browser-like headers with a rotating user agent.
func (f *Fetcher) headers() map[string]string {
	return map[string]string{
		"User-Agent":                userAgents[rand.Intn(len(userAgents))],
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Accept-Encoding":           "gzip, deflate",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	}
}

func (f *Fetcher) randomDelay() {
	min, max := f.cfg.DelayMin, f.cfg.DelayMax
	if max <= min {
		f.sleep(min)
		return
	}
	f.sleep(min + time.Duration(rand.Int63n(int64(max-min))))
}
