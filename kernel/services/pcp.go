package services

import "github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"

// pcpAcquire implementa el techo de prioridad inmediato: el dueño de cualquier recurso corre con MaxPrio.
func pcpAcquire(sim *models.Simulation, resourceID int) bool {
	r := sim.Resource(resourceID)
	current := mustCurrent(sim)

	if r.IsFree() {
		grant(sim, r)
		SetPriority(sim, current, sim.MaxPrio)
		return true
	}

	current.Detach()
	block(sim, r)
	return false
}

// pcpRelease baja al techo solo cuando el proceso ya no es dueño de nada.
func pcpRelease(sim *models.Simulation, resourceID int) {
	r := sim.Resource(resourceID)

	owner := disown(sim, r)
	if sim.Owns(owner, r.ID) {
		SetPriority(sim, owner, sim.MaxPrio)
	} else {
		SetPriority(sim, owner, owner.PrioOrig)
	}
	wake(sim, r, highestPrio(r.WaitQueue))
}

var PCPScheduler = Policy{
	Key:        "pcp",
	Name:       "Priority + PCP Protocol",
	Initialize: requireCeiling,
	Schedule:   prioSchedule,
	Acquire:    pcpAcquire,
	Release:    pcpRelease,
}
