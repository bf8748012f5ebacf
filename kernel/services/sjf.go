package services

import "github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"

// sjfSchedule no desaloja: solo elige cuando el actual terminó o se bloqueó.
// Gana el de menor lifespan; ante empate, el que está antes en la cola.
func sjfSchedule(sim *models.Simulation) *models.Process {
	if isRunnable(sim.Current) {
		return sim.Current
	}

	next := shortest(sim.ReadyQueue, func(p *models.Process) uint { return p.Lifespan })
	if next == nil {
		return nil
	}
	sim.ReadyQueue.Remove(next)
	return next
}

var SJFScheduler = Policy{
	Key:      "sjf",
	Name:     "Shortest-Job First",
	Schedule: sjfSchedule,
	Acquire:  fcfsAcquire,
	Release:  fcfsRelease,
}
