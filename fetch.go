package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

const _maxInputSize = 1 << 20

var (
	ErrNoSession     = errors.New("no session token configured")
	ErrInputTooLarge = errors.New("input larger than 1 MiB")
)

// Fetcher downloads puzzle inputs, at most one request per configured
// interval.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	baseURL   string
	year      int
	userAgent string
}

func newFetcher(cfg *Config) (*Fetcher, error) {
	session, err := cfg.sessionToken()
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base_url: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, err
	}
	jar.SetCookies(u, []*http.Cookie{{
		Name:   "session",
		Value:  session,
		Path:   "/",
		Secure: u.Scheme == "https",
	}})

	return &Fetcher{
		client:    &http.Client{Jar: jar},
		limiter:   rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		baseURL:   strings.TrimSuffix(u.String(), "/"),
		year:      cfg.Year,
		userAgent: cfg.UserAgent,
	}, nil
}

func (f *Fetcher) Fetch(ctx context.Context, day int) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	rawurl := fmt.Sprintf("%v/%v/day/%v/input", f.baseURL, f.year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	log.Infof("fetching %v", rawurl)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch day %v: %v", day, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, _maxInputSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > _maxInputSize {
		return nil, fmt.Errorf("fetch day %v: %w", day, ErrInputTooLarge)
	}
	return data, nil
}
