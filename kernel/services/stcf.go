package services

import "github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"

// stcfSchedule compara en cada tick el tiempo restante del actual contra el menor de READY.
// El actual se queda con la CPU si le falta lo mismo o menos.
func stcfSchedule(sim *models.Simulation) *models.Process {
	current := sim.Current
	next := shortest(sim.ReadyQueue, (*models.Process).Remaining)

	if next == nil {
		if isRunnable(current) {
			return current
		}
		return nil
	}

	if isRunnable(current) {
		if current.Remaining() <= next.Remaining() {
			return current
		}
		requeue(sim, current)
	}

	sim.ReadyQueue.Remove(next)
	return next
}

var STCFScheduler = Policy{
	Key:      "stcf",
	Name:     "Shortest Time-to-Complete First",
	Schedule: stcfSchedule,
	Acquire:  fcfsAcquire,
	Release:  fcfsRelease,
}
