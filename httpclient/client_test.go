package httpclient

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	requests []string
	retries  int32
}

func (h *recordingHandler) OnRequest(status string) { h.requests = append(h.requests, status) }
func (h *recordingHandler) OnRetry()                { atomic.AddInt32(&h.retries, 1) }

func testOptions() RetryOptions {
	opts := DefaultRetryOptions()
	opts.BaseBackoff = 5 * time.Millisecond
	opts.RequestTimeout = 2 * time.Second
	return opts
}

func TestClient_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	handler := &recordingHandler{}
	client := New(testOptions(), handler)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	body, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, []string{"success"}, handler.requests)
	assert.Equal(t, int32(0), handler.retries)
}

func TestClient_RetriesOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	handler := &recordingHandler{}
	client := New(testOptions(), handler)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	body, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(body))
	assert.Equal(t, int32(3), calls)
	assert.Equal(t, int32(2), handler.retries)
}

func TestClient_FailsFastOnNonRetryableStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	client := New(testOptions(), &recordingHandler{})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls, "404 must not be retried")

	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestClient_AllRetriesExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	handler := &recordingHandler{}
	client := New(testOptions(), handler)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 3 attempts failed")

	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestIsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	opts := testOptions()
	opts.MaxRetries = 1
	opts.RequestTimeout = 30 * time.Millisecond
	client := New(opts, nil)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}
