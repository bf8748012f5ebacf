package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/helpers"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/services"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/web/server"
)

// maxScenarioBytes acota el body de POST /kernel/simulaciones.
const maxScenarioBytes = 1 << 20

type SchedulerInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// RunSummary es lo que se lista de cada corrida guardada.
type RunSummary struct {
	ID             string  `json:"id"`
	Scenario       string  `json:"scenario"`
	Policy         string  `json:"policy"`
	Ticks          uint    `json:"ticks"`
	AverageWaiting float64 `json:"average_waiting"`
}

func GetSchedulersHandler() func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		schedulers := make([]SchedulerInfo, 0, len(services.Schedulers))
		for _, policy := range services.Schedulers {
			schedulers = append(schedulers, SchedulerInfo{Key: policy.Key, Name: policy.Name})
		}
		server.SendJsonResponse(writer, schedulers)
	}
}

// SimulateHandler corre el escenario del body con la política del parámetro algoritmo
// (o la de la configuración) y guarda el resultado en runs.
func SimulateHandler(runs *helpers.RunMap) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		cfg := currentConfig()

		algoritmo := request.URL.Query().Get("algoritmo")
		if algoritmo == "" {
			algoritmo = cfg.SchedulerAlgorithm
		}
		policy, err := services.FindScheduler(algoritmo)
		if err != nil {
			server.SendError(writer, http.StatusBadRequest, err.Error())
			return
		}

		var scenario models.Scenario
		body := http.MaxBytesReader(writer, request.Body, maxScenarioBytes)
		if err := json.NewDecoder(body).Decode(&scenario); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				server.SendError(writer, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("El escenario supera los %d bytes", tooLarge.Limit))
				return
			}
			server.SendError(writer, http.StatusBadRequest, fmt.Sprintf("Error al decodificar el escenario: %v", err))
			return
		}

		simulator, err := services.NewSimulator(policy, scenario,
			services.WithMaxTicks(cfg.MaxTicks),
			services.WithMaxPrio(cfg.MaxPrio),
			services.WithNrResources(cfg.NrResources),
		)
		if err != nil {
			server.SendError(writer, http.StatusBadRequest, err.Error())
			return
		}

		result, err := simulator.Run(request.Context())
		if err != nil {
			slog.Error("La simulación falló", "politica", policy.Key, "error", err)
			server.SendError(writer, statusFor(err), err.Error())
			return
		}

		id := runs.Add(result)
		slog.Info(fmt.Sprintf("## Corrida %s - %s terminó en %d ticks", id, policy.Name, result.Ticks))
		server.SendJsonResponseWithStatus(writer, http.StatusCreated, result)
	}
}

func GetRunsHandler(runs *helpers.RunMap) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		summaries := make([]RunSummary, 0, runs.Size())
		for _, result := range runs.GetAll() {
			summaries = append(summaries, RunSummary{
				ID:             result.ID,
				Scenario:       result.Scenario,
				Policy:         result.Policy,
				Ticks:          result.Ticks,
				AverageWaiting: result.AverageWaiting(),
			})
		}
		server.SendJsonResponse(writer, summaries)
	}
}

func GetRunHandler(runs *helpers.RunMap) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		result, err := runs.Get(request.PathValue("id"))
		if err != nil {
			server.SendError(writer, http.StatusNotFound, err.Error())
			return
		}
		server.SendJsonResponse(writer, result)
	}
}

func DeleteRunHandler(runs *helpers.RunMap) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		id := request.PathValue("id")
		if _, err := runs.Get(id); err != nil {
			server.SendError(writer, http.StatusNotFound, err.Error())
			return
		}

		runs.Delete(id)
		slog.Info(fmt.Sprintf("## Corrida %s eliminada", id))
		writer.WriteHeader(http.StatusNoContent)
	}
}

// statusFor traduce los errores de una corrida a un status HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrDeadlock), errors.Is(err, services.ErrMaxTicks):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrContractViolation):
		return http.StatusInternalServerError
	default:
		return http.StatusServiceUnavailable
	}
}

func currentConfig() *models.Config {
	if models.KernelConfig == nil {
		return models.DefaultConfig()
	}
	return models.KernelConfig
}
