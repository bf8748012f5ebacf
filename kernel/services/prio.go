package services

import "github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"

// prioAcquire bloquea siempre que el recurso esté ocupado. Se diferencia del acquire FCFS
// en que saca al pedido de cualquier cola antes de bloquearlo.
func prioAcquire(sim *models.Simulation, resourceID int) bool {
	r := sim.Resource(resourceID)

	if r.IsFree() {
		grant(sim, r)
		return true
	}

	mustCurrent(sim).Detach()
	block(sim, r)
	return false
}

// prioRelease despierta al esperador de mayor prioridad; ante empate, el que llegó primero.
func prioRelease(sim *models.Simulation, resourceID int) {
	r := sim.Resource(resourceID)

	disown(sim, r)
	wake(sim, r, highestPrio(r.WaitQueue))
}

// prioSchedule es desalojante: el actual solo conserva la CPU si su prioridad es estrictamente mayor.
func prioSchedule(sim *models.Simulation) *models.Process {
	current := sim.Current
	next := highestPrio(sim.ReadyQueue)

	if next == nil {
		if isRunnable(current) {
			return current
		}
		return nil
	}

	if isRunnable(current) {
		if current.Prio > next.Prio {
			return current
		}
		requeue(sim, current)
	}

	sim.ReadyQueue.Remove(next)
	return next
}

var PrioScheduler = Policy{
	Key:      "prio",
	Name:     "Priority",
	Schedule: prioSchedule,
	Acquire:  prioAcquire,
	Release:  prioRelease,
}
