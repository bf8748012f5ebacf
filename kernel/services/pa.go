package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// paAcquire resuelve la contención por prioridad: si el que pide tiene prioridad menor que el
// dueño se bloquea, si no (empate incluido) el dueño es desalojado del recurso y pasa a esperarlo.
func paAcquire(sim *models.Simulation, resourceID int) bool {
	r := sim.Resource(resourceID)
	current := mustCurrent(sim)

	if r.IsFree() {
		grant(sim, r)
		return true
	}

	owner := r.Owner
	models.Assert(owner != current, "(%d) pide el recurso %d que ya es suyo", current.PID, r.ID)

	if current.Prio < owner.Prio {
		block(sim, r)
		return false
	}

	owner.Detach()
	TransitionState(sim, owner, models.EstadoBlocked)
	r.WaitQueue.Enqueue(owner)
	r.Owner = nil

	slog.Info(fmt.Sprintf("## (%d) - Desalojado del recurso %d por (%d)", owner.PID, r.ID, current.PID), "tick", sim.Ticks)
	sim.Record(models.EventEvict, owner, r.ID, fmt.Sprintf("by=%d", current.PID))

	grant(sim, r)
	return true
}

// paSchedule restaura la prioridad del actual y envejece a los que esperan en READY antes de elegir.
func paSchedule(sim *models.Simulation) *models.Process {
	current := sim.Current

	if !isRunnable(current) {
		next := highestPrio(sim.ReadyQueue)
		if next != nil {
			sim.ReadyQueue.Remove(next)
		}
		return next
	}

	if sim.ReadyQueue.IsEmpty() {
		return current
	}

	SetPriority(sim, current, current.PrioOrig)
	age(sim)

	next := highestPrio(sim.ReadyQueue)
	if next.Prio < current.Prio {
		return current
	}

	requeue(sim, current)
	sim.ReadyQueue.Remove(next)
	return next
}

// age sube en uno la prioridad de cada proceso en READY, sin pasar del techo.
func age(sim *models.Simulation) {
	aged := 0
	for p := range sim.ReadyQueue.All() {
		if p.Prio < sim.MaxPrio {
			p.Prio++
			aged++
		}
	}
	if aged > 0 {
		slog.Debug(fmt.Sprintf("## Envejecimiento: %d procesos en READY suben su prioridad", aged), "tick", sim.Ticks)
	}
}

var PAScheduler = Policy{
	Key:        "pa",
	Name:       "Priority + aging",
	Initialize: requireCeiling,
	Schedule:   paSchedule,
	Acquire:    paAcquire,
	Release:    prioRelease,
}
