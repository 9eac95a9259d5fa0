// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte("<registry/>"))
	}))
	defer ts.Close()

	data, err := Fetch(context.Background(), ts.Client(), ts.URL, "ipfix-elements/test")
	require.NoError(t, err)
	assert.Equal(t, "<registry/>", string(data))
	assert.Equal(t, "ipfix-elements/test", gotUA)
}

func TestFetch_BadStatusNoRetry(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"rate limited", http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			_, err := Fetch(context.Background(), ts.Client(), ts.URL, "")
			require.Error(t, err)

			var netErr *NetworkError
			require.True(t, errors.As(err, &netErr))
			assert.Equal(t, tt.status, netErr.StatusCode)
			assert.Equal(t, ts.URL, netErr.URL)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := Fetch(context.Background(), http.DefaultClient, url, "")
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
	assert.NotNil(t, netErr.Unwrap())
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := Fetch(context.Background(), http.DefaultClient, "://bad", "")
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Contains(t, err.Error(), "creating request")
}

func TestFetch_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, ts.Client(), ts.URL, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
