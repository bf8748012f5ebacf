package services

import "github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"

// rrSchedule rota con quantum de un tick: la cabeza de READY corre y el actual pasa al final.
func rrSchedule(sim *models.Simulation) *models.Process {
	current := sim.Current

	next := sim.ReadyQueue.Dequeue()
	if next == nil {
		if isRunnable(current) {
			return current
		}
		return nil
	}

	if isRunnable(current) {
		requeue(sim, current)
	}
	return next
}

var RRScheduler = Policy{
	Key:      "rr",
	Name:     "Round-Robin",
	Schedule: rrSchedule,
	Acquire:  fcfsAcquire,
	Release:  fcfsRelease,
}
