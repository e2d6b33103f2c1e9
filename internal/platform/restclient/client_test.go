package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func newTestClient(url string, maxRetries int) *Client {
	c := New(url, "bookcatalog-test", 0, maxRetries)
	c.backoff = time.Millisecond
	return c
}

func TestClient_GetJSON(t *testing.T) {
	t.Run("decodes body and sends headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/things", r.URL.Path)
			assert.Equal(t, "bookcatalog-test", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte(`{"name":"ok"}`))
		}))
		defer srv.Close()

		var out payload
		err := newTestClient(srv.URL, 0).GetJSON(context.Background(), "/things", &out)
		require.NoError(t, err)
		assert.Equal(t, "ok", out.Name)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"name":"finally"}`))
		}))
		defer srv.Close()

		var out payload
		err := newTestClient(srv.URL, 3).GetJSON(context.Background(), "/", &out)
		require.NoError(t, err)
		assert.Equal(t, "finally", out.Name)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		err := newTestClient(srv.URL, 2).GetJSON(context.Background(), "/", &payload{})
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		err := newTestClient(srv.URL, 3).GetJSON(context.Background(), "/", &payload{})
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		err := newTestClient(srv.URL, 0).GetJSON(context.Background(), "/", &payload{})
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := newTestClient(srv.URL, 0).GetJSON(ctx, "/", &payload{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
