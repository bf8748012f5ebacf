package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// admitArrivals pasa de NEW a READY a todos los procesos cuyo arribo ya ocurrió.
// pending está ordenado por arribo; devuelve los que todavía no llegaron.
func admitArrivals(sim *models.Simulation, pending []*models.Process) []*models.Process {
	for len(pending) > 0 && pending[0].Arrival <= sim.Ticks {
		pcb := pending[0]
		pending = pending[1:]

		sim.Processes = append(sim.Processes, pcb)
		slog.Info(fmt.Sprintf("## (%d) Se crea el proceso - Estado : NEW", pcb.PID), "tick", sim.Ticks)
		sim.Record(models.EventFork, pcb, models.NoResource, fmt.Sprintf("lifespan=%d prio=%d", pcb.Lifespan, pcb.Prio))

		TransitionState(sim, pcb, models.EstadoReady)
		sim.ReadyQueue.Enqueue(pcb)
	}
	return pending
}

// finishProcess libera todo lo que el proceso todavía tenga y lo pasa a EXIT.
// El proceso tiene que ser el actual: la política solo libera recursos del que corre.
func finishProcess(sim *models.Simulation, policy *Policy, pcb *models.Process) {
	releaseDue(sim, policy, pcb)

	pcb.FinishTick = sim.Ticks
	TransitionState(sim, pcb, models.EstadoExit)
	slog.Info(fmt.Sprintf("## (%d) - Finaliza el proceso", pcb.PID), "tick", sim.Ticks)
	sim.Record(models.EventFinish, pcb, models.NoResource, "")
}

// allFinished indica si ya no queda nada por correr.
func allFinished(sim *models.Simulation, pending []*models.Process) bool {
	if len(pending) > 0 {
		return false
	}
	for _, pcb := range sim.Processes {
		if pcb.EstadoActual != models.EstadoExit {
			return false
		}
	}
	return true
}
