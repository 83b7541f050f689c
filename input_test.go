package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputSourceDownloadsOnce(t *testing.T) {
	srv, requests := newInputServer(t, map[string]string{"/2022/day/15/input": day15Example})
	src, err := newInputSource(testConfig(t, srv.URL))
	require.NoError(t, err)
	require.NotNil(t, src.fetcher)

	for i := 0; i < 2; i++ {
		data, err := src.Open(context.Background(), 15)
		require.NoError(t, err)
		assert.Equal(t, day15Example, string(data))
	}
	assert.Equal(t, int32(1), requests.Load())
}

func TestInputSourceWithoutSession(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:0")
	cfg.Session = ""
	src, err := newInputSource(cfg)
	require.NoError(t, err)
	assert.Nil(t, src.fetcher)

	_, err = src.Open(context.Background(), 2)
	require.ErrorIs(t, err, ErrNoInput)

	require.NoError(t, src.cache.Store(2, []byte(day2Example)))
	data, err := src.Open(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, day2Example, string(data))
}
