package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// pipAcquire presta la prioridad del que pide al dueño del recurso y, si ese dueño también
// espera otro recurso, a toda la cadena de dueños.
func pipAcquire(sim *models.Simulation, resourceID int) bool {
	r := sim.Resource(resourceID)
	current := mustCurrent(sim)

	if r.IsFree() {
		grant(sim, r)
		return true
	}

	inherit(sim, r.Owner, current.Prio)

	current.Detach()
	block(sim, r)
	return false
}

// inherit recorre la cadena de dueños. El largo está acotado por la cantidad de recursos.
func inherit(sim *models.Simulation, owner *models.Process, prio int) {
	for range len(sim.Resources) {
		if owner == nil || owner.Prio >= prio {
			return
		}
		slog.Debug(fmt.Sprintf("## (%d) Hereda la prioridad %d", owner.PID, prio), "tick", sim.Ticks)
		SetPriority(sim, owner, prio)

		waiting := sim.WaitingOn(owner)
		if waiting == nil {
			return
		}
		owner = waiting.Owner
	}
}

// pipRelease devuelve la prioridad original, salvo lo que siga heredando de quienes esperan
// recursos que el proceso todavía tiene.
func pipRelease(sim *models.Simulation, resourceID int) {
	r := sim.Resource(resourceID)

	owner := disown(sim, r)
	SetPriority(sim, owner, inheritedPrio(sim, owner))
	wake(sim, r, highestPrio(r.WaitQueue))
}

func inheritedPrio(sim *models.Simulation, owner *models.Process) int {
	prio := owner.PrioOrig
	for _, res := range sim.Resources {
		if res.Owner != owner {
			continue
		}
		if waiter := highestPrio(res.WaitQueue); waiter != nil && waiter.Prio > prio {
			prio = waiter.Prio
		}
	}
	return prio
}

// pipSchedule mantiene al actual ante empate. Un actual bloqueado siempre cede.
func pipSchedule(sim *models.Simulation) *models.Process {
	current := sim.Current
	next := highestPrio(sim.ReadyQueue)

	if next == nil {
		if isRunnable(current) {
			return current
		}
		return nil
	}

	if isRunnable(current) {
		if current.Prio >= next.Prio {
			return current
		}
		requeue(sim, current)
	}

	sim.ReadyQueue.Remove(next)
	return next
}

var PIPScheduler = Policy{
	Key:      "pip",
	Name:     "Priority + PIP Protocol",
	Schedule: pipSchedule,
	Acquire:  pipAcquire,
	Release:  pipRelease,
}
