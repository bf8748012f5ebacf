package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/helpers"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/log"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/web/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMain(m *testing.M) {
	log.InitQuietLogger()
	os.Exit(m.Run())
}

const basico = `{"name":"basico","processes":[
	{"pid":1,"lifespan":5},
	{"pid":2,"lifespan":3},
	{"pid":3,"lifespan":8}]}`

func do(t *testing.T, mux http.Handler, method string, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, request)
	return recorder
}

func TestHandshake(t *testing.T) {
	mux := NewMux(helpers.NewRunMap())

	response := do(t, mux, http.MethodGet, "/kernel", "")
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "Kernel en funcionamiento")
}

func TestGetSchedulers(t *testing.T) {
	mux := NewMux(helpers.NewRunMap())

	response := do(t, mux, http.MethodGet, "/kernel/planificadores", "")
	require.Equal(t, http.StatusOK, response.Code)

	var schedulers []SchedulerInfo
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &schedulers))
	require.Len(t, schedulers, 8)
	assert.Equal(t, SchedulerInfo{Key: "pcp", Name: "Priority + PCP Protocol"}, schedulers[6])
}

func TestSimulate_RoundTrip(t *testing.T) {
	runs := helpers.NewRunMap()
	mux := NewMux(runs)

	response := do(t, mux, http.MethodPost, "/kernel/simulaciones?algoritmo=sjf", basico)
	require.Equal(t, http.StatusCreated, response.Code, response.Body.String())

	body := response.Body.String()
	id := gjson.Get(body, "id").String()
	assert.NotEmpty(t, id)
	assert.Equal(t, "sjf", gjson.Get(body, "policy").String())
	assert.Equal(t, int64(16), gjson.Get(body, "ticks").Int())
	assert.Equal(t, int64(2), gjson.Get(body, "timeline.0").Int())

	response = do(t, mux, http.MethodGet, "/kernel/simulaciones/"+id, "")
	require.Equal(t, http.StatusOK, response.Code)
	var result models.Result
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
	assert.Equal(t, []uint{2, 1, 3}, result.RunOrder())

	response = do(t, mux, http.MethodGet, "/kernel/simulaciones", "")
	require.Equal(t, http.StatusOK, response.Code)
	var summaries []RunSummary
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, id, summaries[0].ID)
	assert.InDelta(t, 11.0/3, summaries[0].AverageWaiting, 1e-9)
}

func TestSimulate_DefaultsToConfiguredScheduler(t *testing.T) {
	models.KernelConfig = models.DefaultConfig()
	models.KernelConfig.SchedulerAlgorithm = "rr"
	t.Cleanup(func() { models.KernelConfig = nil })

	response := do(t, NewMux(helpers.NewRunMap()), http.MethodPost, "/kernel/simulaciones", basico)
	require.Equal(t, http.StatusCreated, response.Code)
	assert.Equal(t, "rr", gjson.Get(response.Body.String(), "policy").String())
}

func TestSimulate_Errors(t *testing.T) {
	mux := NewMux(helpers.NewRunMap())

	tests := []struct {
		name   string
		target string
		body   string
		status int
		error  string
	}{
		{"planificador desconocido", "/kernel/simulaciones?algoritmo=lottery", basico, http.StatusBadRequest, "planificador desconocido"},
		{"body inválido", "/kernel/simulaciones?algoritmo=fcfs", "{", http.StatusBadRequest, "Error al decodificar"},
		{"escenario inválido", "/kernel/simulaciones?algoritmo=fcfs", `{"processes":[{"pid":1}]}`, http.StatusBadRequest, "lifespan"},
		{"deadlock", "/kernel/simulaciones?algoritmo=rr", `{"processes":[
			{"pid":1,"lifespan":4,"resources":[{"id":0,"at":0,"duration":3},{"id":1,"at":1,"duration":2}]},
			{"pid":2,"lifespan":4,"resources":[{"id":1,"at":0,"duration":3},{"id":0,"at":1,"duration":2}]}]}`,
			http.StatusUnprocessableEntity, "deadlock"},
		{"body demasiado grande", "/kernel/simulaciones?algoritmo=fcfs",
			`{"name":"` + strings.Repeat("x", maxScenarioBytes) + `","processes":[{"pid":1,"lifespan":1}]}`,
			http.StatusRequestEntityTooLarge, "supera los"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := do(t, mux, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, response.Code)

			var errorResponse server.ErrorResponse
			require.NoError(t, json.Unmarshal(response.Body.Bytes(), &errorResponse))
			assert.Contains(t, errorResponse.Error, tt.error)
		})
	}
}

func TestGetRun_NotFound(t *testing.T) {
	response := do(t, NewMux(helpers.NewRunMap()), http.MethodGet, "/kernel/simulaciones/inexistente", "")

	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.Contains(t, response.Body.String(), "corrida no encontrada")
}

func TestDeleteRun(t *testing.T) {
	runs := helpers.NewRunMap()
	mux := NewMux(runs)

	response := do(t, mux, http.MethodPost, "/kernel/simulaciones?algoritmo=fcfs", basico)
	require.Equal(t, http.StatusCreated, response.Code)
	id := gjson.Get(response.Body.String(), "id").String()

	response = do(t, mux, http.MethodDelete, "/kernel/simulaciones/"+id, "")
	assert.Equal(t, http.StatusNoContent, response.Code)
	assert.Zero(t, runs.Size())

	response = do(t, mux, http.MethodGet, "/kernel/simulaciones/"+id, "")
	assert.Equal(t, http.StatusNotFound, response.Code)

	response = do(t, mux, http.MethodDelete, "/kernel/simulaciones/"+id, "")
	assert.Equal(t, http.StatusNotFound, response.Code)
}
