package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// Policy es una política de planificación. Initialize y Finalize pueden ser nil.
//
//   - Acquire devuelve true si el proceso actual obtiene el recurso. Si devuelve false la
//     política ya lo dejó BLOCKED y en la cola de espera del recurso.
//   - Release exige que el proceso actual sea el dueño; despierta a lo sumo un proceso.
//   - Schedule devuelve el proceso que corre en este tick (fuera de toda cola) o nil.
type Policy struct {
	Key        string
	Name       string
	Initialize func(sim *models.Simulation) error
	Finalize   func(sim *models.Simulation)
	Schedule   func(sim *models.Simulation) *models.Process
	Acquire    func(sim *models.Simulation, resourceID int) bool
	Release    func(sim *models.Simulation, resourceID int)
}

var ErrUnknownScheduler = errors.New("planificador desconocido")

// Schedulers es la tabla fija de políticas, en el orden en que se listan.
var Schedulers = []*Policy{
	&FCFSScheduler,
	&SJFScheduler,
	&STCFScheduler,
	&RRScheduler,
	&PrioScheduler,
	&PAScheduler,
	&PCPScheduler,
	&PIPScheduler,
}

// FindScheduler busca una política por clave ("pip") o por nombre ("Priority + PIP Protocol"), sin distinguir mayúsculas.
func FindScheduler(name string) (*Policy, error) {
	name = strings.TrimSpace(name)
	for _, policy := range Schedulers {
		if strings.EqualFold(policy.Key, name) || strings.EqualFold(policy.Name, name) {
			return policy, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheduler, name)
}

func (p *Policy) initialize(sim *models.Simulation) error {
	if p.Initialize == nil {
		return nil
	}
	return p.Initialize(sim)
}

func (p *Policy) finalize(sim *models.Simulation) {
	if p.Finalize != nil {
		p.Finalize(sim)
	}
}

func (p *Policy) String() string {
	return p.Name
}

// requireCeiling lo usan las políticas que dependen del techo de prioridad.
func requireCeiling(sim *models.Simulation) error {
	if sim.MaxPrio <= 0 {
		return fmt.Errorf("max_prio debe ser positivo, es %d", sim.MaxPrio)
	}
	return nil
}
