package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/log"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitQuietLogger()
	os.Exit(m.Run())
}

func proc(pid uint, arrival uint, lifespan uint, prio int, resources ...models.ResourceSpec) models.ProcessSpec {
	return models.ProcessSpec{PID: pid, Arrival: arrival, Lifespan: lifespan, Prio: prio, Resources: resources}
}

func hold(id int, at uint, duration uint) models.ResourceSpec {
	return models.ResourceSpec{ID: id, At: at, Duration: duration}
}

func scenario(name string, procs ...models.ProcessSpec) models.Scenario {
	return models.Scenario{Name: name, Processes: procs}
}

func runScenario(t *testing.T, key string, s models.Scenario, opts ...SimulatorOption) *models.Result {
	t.Helper()
	policy, err := FindScheduler(key)
	require.NoError(t, err)
	simulator, err := NewSimulator(policy, s, opts...)
	require.NoError(t, err)
	result, err := simulator.Run(context.Background())
	require.NoError(t, err)
	return result
}

// newTestSim arma una simulación con los procesos en READY, en ese orden.
func newTestSim(procs ...*models.Process) *models.Simulation {
	sim := models.NewSimulation(4, models.MaxPrio)
	for _, p := range procs {
		p.EstadoActual = models.EstadoReady
		sim.ReadyQueue.Enqueue(p)
		sim.Processes = append(sim.Processes, p)
	}
	return sim
}

// running pone a p como proceso actual.
func running(sim *models.Simulation, p *models.Process) {
	sim.ReadyQueue.Remove(p)
	p.EstadoActual = models.EstadoRunning
	sim.Current = p
}

// catchViolation devuelve el error con el que entró en pánico fn, o nil.
func catchViolation(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	fn()
	return nil
}

func stats(result *models.Result, pid uint) models.ProcessStats {
	for _, s := range result.Processes {
		if s.PID == pid {
			return s
		}
	}
	return models.ProcessStats{}
}

func events(result *models.Result, kind models.EventKind) []models.Event {
	var out []models.Event
	for _, e := range result.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func isViolation(err error) bool {
	return errors.Is(err, models.ErrContractViolation)
}
