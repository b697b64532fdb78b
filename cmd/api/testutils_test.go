package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aoideee/book-registry/internal/data"
)

var seedTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestApplication returns an application over a fresh default-seeded
// registry, with the rate limiter disabled and logs discarded.
func newTestApplication(t *testing.T) *applicationDependencies {
	t.Helper()

	var cfg serverConfig
	cfg.environment = "development"
	return &applicationDependencies{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		models: data.NewModels(data.DefaultSeed(seedTime)),
	}
}

// testResponse is the decoded {success, data, message} envelope.
type testResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// do sends one request through the full routes() chain.
func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals the recorder body into a testResponse.
func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) testResponse[T] {
	t.Helper()

	var res testResponse[T]
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&res), "body: %s", rr.Body.String())
	return res
}

func ids(books []data.Book) []int64 {
	out := make([]int64, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}
