package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var ErrNoInput = errors.New("no puzzle input available")

// inputSource resolves puzzle inputs from the cache, downloading them on a
// cache miss when a fetcher is available.
type inputSource struct {
	cache   *_InputCache
	fetcher *Fetcher
}

func newInputSource(cfg *Config) (*inputSource, error) {
	cache, err := _openInputCache(cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	src := &inputSource{cache: cache}
	src.fetcher, err = newFetcher(cfg)
	switch {
	case errors.Is(err, ErrNoSession):
		log.Debug("no session token, inputs will not be downloaded")
	case err != nil:
		return nil, err
	}
	return src, nil
}

// Open returns the cached input for day, downloading it on a miss.
func (src *inputSource) Open(ctx context.Context, day int) ([]byte, error) {
	data, err := src.cache.Load(day)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if src.fetcher == nil {
		return nil, fmt.Errorf("day %v: %w", day, ErrNoInput)
	}
	data, err = src.fetcher.Fetch(ctx, day)
	if err != nil {
		return nil, err
	}
	if err := src.cache.Store(day, data); err != nil {
		log.Warningf("caching input for day %v: %v", day, err)
	}
	return data, nil
}
