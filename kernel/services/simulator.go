package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/helpers"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

var (
	ErrDeadlock = errors.New("deadlock: quedan procesos bloqueados y ninguno puede correr")
	ErrMaxTicks = errors.New("se alcanzó el máximo de ticks")
)

// Simulator corre un escenario con una política, tick a tick.
type Simulator struct {
	policy      *Policy
	scenario    models.Scenario
	maxTicks    uint
	nrResources int
	maxPrio     int
	observer    func(sim *models.Simulation)
	statusDump  io.Writer
}

type SimulatorOption func(s *Simulator)

// WithMaxTicks corta la corrida con ErrMaxTicks. 0 es sin límite.
func WithMaxTicks(maxTicks uint) SimulatorOption {
	return func(s *Simulator) { s.maxTicks = maxTicks }
}

func WithNrResources(n int) SimulatorOption {
	return func(s *Simulator) { s.nrResources = n }
}

func WithMaxPrio(prio int) SimulatorOption {
	return func(s *Simulator) { s.maxPrio = prio }
}

// WithObserver registra una función que se llama al final de cada tick.
func WithObserver(observer func(sim *models.Simulation)) SimulatorOption {
	return func(s *Simulator) { s.observer = observer }
}

// WithStatusDump escribe el estado de la simulación al final de cada tick.
func WithStatusDump(w io.Writer) SimulatorOption {
	return func(s *Simulator) { s.statusDump = w }
}

// NewSimulator valida el escenario contra la tabla de recursos y el techo de prioridad.
func NewSimulator(policy *Policy, scenario models.Scenario, opts ...SimulatorOption) (*Simulator, error) {
	if policy == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnknownScheduler)
	}

	s := &Simulator{
		policy:      policy,
		scenario:    scenario.Normalized(),
		maxTicks:    models.DefaultConfig().MaxTicks,
		nrResources: models.NrResources,
		maxPrio:     models.MaxPrio,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.scenario.Validate(s.nrResources, s.maxPrio); err != nil {
		return nil, fmt.Errorf("escenario %q inválido: %w", s.scenario.Name, err)
	}
	return s, nil
}

func (s *Simulator) Policy() *Policy {
	return s.policy
}

func (s *Simulator) Scenario() models.Scenario {
	return s.scenario
}

// Run ejecuta el escenario desde cero. Cada llamada arma una simulación nueva.
func (s *Simulator) Run(ctx context.Context) (result *models.Result, err error) {
	sim := models.NewSimulation(s.nrResources, s.maxPrio)
	policy := s.policy

	defer func() {
		if r := recover(); r != nil {
			violation, ok := r.(error)
			if !ok || !errors.Is(violation, models.ErrContractViolation) {
				panic(r)
			}
			slog.Error("Violación de contrato", "politica", policy.Key, "tick", sim.Ticks, "error", violation)
			result, err = nil, violation
		}
	}()

	if err := policy.initialize(sim); err != nil {
		return nil, fmt.Errorf("no se pudo inicializar %s: %w", policy.Name, err)
	}
	defer policy.finalize(sim)

	slog.Info(fmt.Sprintf("## Inicia la simulación %q con %s", s.scenario.Name, policy.Name))

	pending := s.scenario.Build()
	var timeline []uint

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.maxTicks > 0 && sim.Ticks >= s.maxTicks {
			return nil, fmt.Errorf("%w (%d)", ErrMaxTicks, s.maxTicks)
		}

		pending = admitArrivals(sim, pending)
		if allFinished(sim, pending) {
			break
		}

		current := dispatch(sim, policy)
		if current == nil {
			if len(pending) == 0 {
				return nil, fmt.Errorf("%w (tick %d)", ErrDeadlock, sim.Ticks)
			}
			slog.Debug("## CPU ociosa", "tick", sim.Ticks)
			sim.Record(models.EventIdle, nil, models.NoResource, "")
			timeline = append(timeline, 0)
		} else {
			current.Age++
			timeline = append(timeline, current.PID)

			if current.IsFinished() {
				finishProcess(sim, policy, current)
			} else {
				releaseDue(sim, policy, current)
			}
		}

		if err := sim.CheckInvariants(); err != nil {
			return nil, fmt.Errorf("tick %d: %w", sim.Ticks, err)
		}
		if s.observer != nil {
			s.observer(sim)
		}
		if s.statusDump != nil {
			helpers.DumpStatus(s.statusDump, sim)
		}
		sim.Ticks++
	}

	slog.Info(fmt.Sprintf("## Finaliza la simulación %q en %d ticks", s.scenario.Name, sim.Ticks))
	return s.result(sim, timeline), nil
}

func (s *Simulator) result(sim *models.Simulation, timeline []uint) *models.Result {
	stats := make([]models.ProcessStats, 0, len(sim.Processes))
	for _, pcb := range sim.Processes {
		stats = append(stats, models.NewProcessStats(pcb))
	}
	return &models.Result{
		Scenario:   s.scenario.Name,
		Policy:     s.policy.Key,
		PolicyName: s.policy.Name,
		Ticks:      sim.Ticks,
		Timeline:   timeline,
		Processes:  stats,
		Events:     sim.Events,
	}
}
