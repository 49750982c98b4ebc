package netx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON(t *testing.T) {
	t.Run("success posts JSON and decodes reply", func(t *testing.T) {
		var gotMethod, gotCT, gotAccept, gotSession string
		var gotBody map[string]string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotAccept = r.Header.Get("Accept")
			gotSession = r.Header.Get("x-session-id")
			b, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(b, &gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"Groceries"}`))
		}))
		defer ts.Close()

		var out struct {
			Title string `json:"title"`
		}
		err := DoJSON(context.Background(), ts.Client(), http.MethodPost, ts.URL+"/api/generateTitle",
			map[string]string{"x-session-id": "s1"}, map[string]string{"body": "buy milk"}, &out)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotCT)
		assert.Equal(t, "application/json", gotAccept)
		assert.Equal(t, "s1", gotSession)
		assert.Equal(t, "buy milk", gotBody["body"])
		assert.Equal(t, "Groceries", out.Title)
	})

	t.Run("header overrides Accept", func(t *testing.T) {
		var gotAccept string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		err := DoJSON(context.Background(), nil, http.MethodGet, ts.URL,
			map[string]string{"Accept": "application/vnd.github.v3+json"}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "application/vnd.github.v3+json", gotAccept)
	})

	t.Run("non-2xx with JSON error body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"no session"}`))
		}))
		defer ts.Close()

		err := DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, nil, nil, nil)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
		assert.Equal(t, "no session", se.Message)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("non-2xx with plain body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("gateway down"))
		}))
		defer ts.Close()

		err := DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, nil, nil, nil)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Empty(t, se.Message)
		assert.True(t, strings.Contains(err.Error(), "gateway down"))
	})

	t.Run("undecodable reply", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer ts.Close()

		var out map[string]any
		err := DoJSON(context.Background(), ts.Client(), http.MethodGet, ts.URL, nil, nil, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		err := DoJSON(context.Background(), nil, http.MethodGet, ts.URL, nil, nil, nil)
		require.Error(t, err)
		var se *StatusError
		assert.False(t, errors.As(err, &se))
	})
}
