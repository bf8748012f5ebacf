package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// fcfsAcquire es el acquire por defecto: si el recurso está libre lo toma, si no el proceso
// espera al final de la cola del recurso. Se atiende en orden de pedido, sin mirar prioridades.
func fcfsAcquire(sim *models.Simulation, resourceID int) bool {
	r := sim.Resource(resourceID)

	if r.IsFree() {
		grant(sim, r)
		return true
	}

	block(sim, r)
	return false
}

// fcfsRelease despierta al primero que llegó a la cola del recurso.
func fcfsRelease(sim *models.Simulation, resourceID int) {
	r := sim.Resource(resourceID)

	disown(sim, r)
	wake(sim, r, r.WaitQueue.First())
}

func fcfsInitialize(sim *models.Simulation) error {
	slog.Debug(fmt.Sprintf("Planificador FCFS inicializado con %d recursos", len(sim.Resources)))
	return nil
}

func fcfsFinalize(sim *models.Simulation) {
	slog.Debug(fmt.Sprintf("Planificador FCFS finalizado en el tick %d", sim.Ticks))
}

// fcfsSchedule deja correr al actual hasta que termine o se bloquee; después toma la cabeza de READY.
func fcfsSchedule(sim *models.Simulation) *models.Process {
	if isRunnable(sim.Current) {
		return sim.Current
	}
	return sim.ReadyQueue.Dequeue()
}

var FCFSScheduler = Policy{
	Key:        "fcfs",
	Name:       "FCFS",
	Initialize: fcfsInitialize,
	Finalize:   fcfsFinalize,
	Schedule:   fcfsSchedule,
	Acquire:    fcfsAcquire,
	Release:    fcfsRelease,
}
