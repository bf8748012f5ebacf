package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// TransitionState actualiza el estado de un proceso, su LOG y el registro de eventos.
// No toca las colas: quien llama decide dónde queda el proceso.
func TransitionState(sim *models.Simulation, pcb *models.Process, newState models.Estado) {
	oldState := pcb.EstadoActual
	if oldState == newState {
		return
	}
	pcb.EstadoActual = newState

	//Log obligatorio de cambio de estado
	slog.Info(fmt.Sprintf("## (%d) Pasa del estado %s al estado %s", pcb.PID, oldState, newState), "tick", sim.Ticks)
	sim.Record(models.EventState, pcb, models.NoResource, fmt.Sprintf("%s -> %s", oldState, newState))
}

// SetPriority cambia la prioridad efectiva y deja constancia. No hace nada si no cambia.
func SetPriority(sim *models.Simulation, pcb *models.Process, prio int) {
	if pcb.Prio == prio {
		return
	}
	slog.Debug(fmt.Sprintf("## (%d) Cambia su prioridad de %d a %d", pcb.PID, pcb.Prio, prio), "tick", sim.Ticks)
	sim.Record(models.EventPrio, pcb, models.NoResource, fmt.Sprintf("%d -> %d", pcb.Prio, prio))
	pcb.Prio = prio
}

// requeue devuelve el proceso actual al final de la cola READY.
func requeue(sim *models.Simulation, pcb *models.Process) {
	TransitionState(sim, pcb, models.EstadoReady)
	sim.ReadyQueue.Enqueue(pcb)
}

// isRunnable indica si el proceso puede seguir compitiendo por la CPU: existe, no está bloqueado y no terminó.
// Un proceso bloqueado nunca vuelve a READY desde acá aunque además haya terminado; el bloqueo se resuelve primero.
func isRunnable(pcb *models.Process) bool {
	return pcb != nil && !pcb.IsBlocked() && !pcb.IsFinished()
}

// highestPrio devuelve el primer proceso de mayor prioridad de la cola, o nil.
func highestPrio(queue *models.ProcessQueue) *models.Process {
	var best *models.Process
	for p := range queue.All() {
		if best == nil || p.Prio > best.Prio {
			best = p
		}
	}
	return best
}

// shortest devuelve el primer proceso con menor key de la cola, o nil.
func shortest(queue *models.ProcessQueue, key func(*models.Process) uint) *models.Process {
	var best *models.Process
	for p := range queue.All() {
		if best == nil || key(p) < key(best) {
			best = p
		}
	}
	return best
}
