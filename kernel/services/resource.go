package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// mustCurrent devuelve el proceso actual; pedir o liberar sin proceso actual es una violación de contrato.
func mustCurrent(sim *models.Simulation) *models.Process {
	models.Assert(sim.Current != nil, "no hay proceso actual en el tick %d", sim.Ticks)
	return sim.Current
}

// grant le da el recurso libre al proceso actual.
func grant(sim *models.Simulation, r *models.Resource) {
	current := mustCurrent(sim)
	models.Assert(r.IsFree(), "recurso %d ya tiene dueño (%d)", r.ID, pidOf(r.Owner))

	r.Owner = current
	slog.Debug(fmt.Sprintf("## (%d) - Toma el recurso %d", current.PID, r.ID), "tick", sim.Ticks)
	sim.Record(models.EventAcquire, current, r.ID, "")
}

// block bloquea al proceso actual y lo pone al final de la cola de espera del recurso.
func block(sim *models.Simulation, r *models.Resource) {
	current := mustCurrent(sim)
	models.Assert(r.Owner != current, "(%d) pide el recurso %d que ya es suyo", current.PID, r.ID)

	TransitionState(sim, current, models.EstadoBlocked)
	r.WaitQueue.Enqueue(current)

	slog.Info(fmt.Sprintf("## (%d) - Bloqueado por recurso %d (dueño %d)", current.PID, r.ID, pidOf(r.Owner)), "tick", sim.Ticks)
	sim.Record(models.EventBlock, current, r.ID, fmt.Sprintf("owner=%d", pidOf(r.Owner)))
}

// disown verifica que el proceso actual sea el dueño y suelta el recurso.
func disown(sim *models.Simulation, r *models.Resource) *models.Process {
	current := mustCurrent(sim)
	models.Assert(r.Owner == current, "(%d) libera el recurso %d que pertenece a (%d)", current.PID, r.ID, pidOf(r.Owner))

	r.Owner = nil
	slog.Debug(fmt.Sprintf("## (%d) - Libera el recurso %d", current.PID, r.ID), "tick", sim.Ticks)
	sim.Record(models.EventRelease, current, r.ID, "")
	return current
}

// wake pasa un proceso de la cola de espera del recurso al final de READY.
func wake(sim *models.Simulation, r *models.Resource, waiter *models.Process) {
	if waiter == nil {
		return
	}
	models.Assert(waiter.IsBlocked(), "(%d) se despierta estando %s", waiter.PID, waiter.EstadoActual)

	r.WaitQueue.Remove(waiter)
	TransitionState(sim, waiter, models.EstadoReady)
	sim.ReadyQueue.Enqueue(waiter)
	sim.Record(models.EventWake, waiter, r.ID, "")
}

func pidOf(p *models.Process) uint {
	if p == nil {
		return 0
	}
	return p.PID
}
