package client

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitHostPort(t *testing.T, rawURL string) (string, int) {
	t.Helper()
	host, port, err := net.SplitHostPort(rawURL[len("http://"):])
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return host, p
}

func TestDoRequest_PostEchoesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/kernel/eco", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	ip, port := splitHostPort(t, srv.URL)
	body, err := DoRequest(context.Background(), ip, port, http.MethodPost, "kernel/eco", []byte(`{"pid":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"pid":1}`, string(body))
}

func TestDoRequest_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no existe"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	ip, port := splitHostPort(t, srv.URL)
	body, err := DoRequest(context.Background(), ip, port, http.MethodGet, "kernel/x")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, string(body), "no existe")
}
