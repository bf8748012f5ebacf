package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendJsonResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	SendJsonResponse(recorder, map[string]int{"ticks": 16})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ticks":16}`, recorder.Body.String())
}

func TestSendError(t *testing.T) {
	recorder := httptest.NewRecorder()
	SendError(recorder, http.StatusNotFound, "corrida no encontrada")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"corrida no encontrada"}`, recorder.Body.String())
}

func TestSendJsonResponse_Unencodable(t *testing.T) {
	recorder := httptest.NewRecorder()
	SendJsonResponse(recorder, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestInitServer_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- InitServer(ctx, 0, http.NewServeMux())
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("el servidor no se apagó")
	}
}
