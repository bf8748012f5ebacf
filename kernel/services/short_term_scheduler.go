package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// dispatch elige el proceso que corre en este tick. Si al elegido le toca pedir un recurso
// y la política lo bloquea, se vuelve a planificar en el mismo tick.
func dispatch(sim *models.Simulation, policy *Policy) *models.Process {
	// cada rechazo bloquea un proceso distinto, así que alcanza con un intento por proceso
	for range len(sim.Processes) + 1 {
		next := policy.Schedule(sim)
		sim.Current = next
		if next == nil {
			return nil
		}

		models.Assert(next.Queue() == nil, "%s eligió a (%d) que sigue en %s", policy.Name, next.PID, queueName(next))
		models.Assert(!next.IsFinished(), "%s eligió a (%d) que ya terminó", policy.Name, next.PID)
		models.Assert(!next.IsBlocked(), "%s eligió a (%d) que está bloqueado", policy.Name, next.PID)

		if next.EstadoActual != models.EstadoRunning {
			TransitionState(sim, next, models.EstadoRunning)
			sim.Record(models.EventDispatch, next, models.NoResource, "")
		}
		if acquireDue(sim, policy, next) {
			// solo cuenta como arranque si el pedido no lo bloqueó
			if !next.Started {
				next.Started = true
				next.StartTick = sim.Ticks
			}
			return next
		}
		slog.Debug(fmt.Sprintf("## (%d) - Se replanifica por bloqueo", next.PID), "tick", sim.Ticks)
	}
	panic(models.Violation("%s no pudo despachar ningún proceso en el tick %d", policy.Name, sim.Ticks))
}

// acquireDue pide los recursos que al proceso le tocan a su edad actual.
// Devuelve false si quedó bloqueado.
func acquireDue(sim *models.Simulation, policy *Policy, pcb *models.Process) bool {
	for _, req := range pcb.Requests {
		r := sim.Resource(req.ResourceID)

		// lo desalojaron del recurso mientras no corría
		if req.State == models.RequestHeld && r.Owner != pcb {
			req.State = models.RequestPending
			if pcb.Age >= req.ReleaseAge() {
				req.State = models.RequestDone
			}
		}
		if req.State != models.RequestPending || req.At > pcb.Age {
			continue
		}

		if !policy.Acquire(sim, req.ResourceID) {
			models.Assert(pcb.IsBlocked() && r.WaitQueue.Contains(pcb),
				"%s rechazó el recurso %d sin bloquear a (%d)", policy.Name, r.ID, pcb.PID)
			return false
		}
		models.Assert(r.Owner == pcb, "%s concedió el recurso %d pero el dueño es (%d)", policy.Name, r.ID, pidOf(r.Owner))
		req.State = models.RequestHeld
	}
	return true
}

// releaseDue suelta los recursos cuyo tiempo de uso se cumplió, o todos si el proceso terminó.
func releaseDue(sim *models.Simulation, policy *Policy, pcb *models.Process) {
	for _, req := range pcb.Requests {
		if req.State != models.RequestHeld {
			continue
		}
		if pcb.IsFinished() || pcb.Age >= req.ReleaseAge() {
			policy.Release(sim, req.ResourceID)
			req.State = models.RequestDone
		}
	}
}

func queueName(pcb *models.Process) string {
	if q := pcb.Queue(); q != nil {
		return q.Name
	}
	return "-"
}
