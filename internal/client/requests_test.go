package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Post_SendsJSONBodyAndContentType(t *testing.T) {
	var gotContentType string
	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	resp, err := c.Post(context.Background(), "/api/task", map[string]string{"title": "Buy milk"})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"title":"Buy milk"}`, gotBody)
}

func TestClient_Get_SendsNoBodyAndNoContentType(t *testing.T) {
	var gotContentType string
	var gotLength int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotLength = r.ContentLength
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	resp, err := c.Get(context.Background(), "/api/task/507f1f77bcf86cd799439011")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotContentType, "Content-Type must only accompany a body")
	assert.Zero(t, gotLength)
}

func TestClient_AttachesRequestID(t *testing.T) {
	var gotRequestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	resp, err := c.Get(context.Background(), "/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEmpty(t, gotRequestID)
}

func TestAssertOk_StatusRange(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		ok         bool
	}{
		{"OK", http.StatusOK, true},
		{"Created", http.StatusCreated, true},
		{"Last success code", 399, true},
		{"Bad request", http.StatusBadRequest, false},
		{"Not found", http.StatusNotFound, false},
		{"Server error", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer ts.Close()

			c := NewClient(ts.URL)
			resp, err := c.Get(context.Background(), "/")

			if tt.ok {
				require.NoError(t, err)
				resp.Body.Close()
				return
			}

			require.Error(t, err)
			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.statusCode, reqErr.StatusCode)
		})
	}
}

func TestAssertOk_RedirectCountsAsSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/elsewhere")
		w.WriteHeader(http.StatusFound)
	}))
	defer ts.Close()

	// Surface the 302 itself instead of following it
	httpClient := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	c := NewClientWithHTTPClient(ts.URL, httpClient)
	resp, err := c.Get(context.Background(), "/")

	require.NoError(t, err, "a redirect status is inside the success range")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestRequestError_CarriesStatusAndBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"A title is required."}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.Post(context.Background(), "/api/task", map[string]string{})

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	assert.Equal(t, "Bad Request", reqErr.Status)
	assert.Equal(t, `{"error":"A title is required."}`, reqErr.Body)
	assert.Equal(t, `400 Bad Request: {"error":"A title is required."}`, reqErr.Error())
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer ts.Close()

	c := NewClient(ts.URL + "/")
	resp, err := c.Get(context.Background(), "/api/task/x")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "/api/task/x", gotPath)
}
