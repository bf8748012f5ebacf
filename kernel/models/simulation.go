package models

import (
	"errors"
	"fmt"
)

const (
	// MaxPrio es el techo de prioridad por defecto (PCP y aging).
	MaxPrio = 100
	// NrResources es el tamaño por defecto de la tabla de recursos.
	NrResources = 32
)

// Simulation es el contexto que reciben todas las operaciones de las políticas.
// Durante una llamada solo la política activa lo modifica; entre llamadas el
// simulador avanza Age y Ticks.
type Simulation struct {
	Current    *Process
	ReadyQueue *ProcessQueue
	Resources  []*Resource
	Ticks      uint
	MaxPrio    int

	// Processes tiene todos los procesos admitidos, en orden de admisión.
	Processes []*Process
	Events    []Event
}

func NewSimulation(nrResources int, maxPrio int) *Simulation {
	resources := make([]*Resource, nrResources)
	for i := range resources {
		resources[i] = NewResource(i)
	}
	return &Simulation{
		ReadyQueue: NewProcessQueue("READY"),
		Resources:  resources,
		MaxPrio:    maxPrio,
	}
}

// Resource devuelve el recurso id. Un id fuera de la tabla es una violación de contrato.
func (s *Simulation) Resource(id int) *Resource {
	Assert(id >= 0 && id < len(s.Resources), "recurso %d fuera de rango [0, %d)", id, len(s.Resources))
	return s.Resources[id]
}

// WaitingOn devuelve el recurso por el que p está bloqueado, o nil.
func (s *Simulation) WaitingOn(p *Process) *Resource {
	if p == nil || p.queue == nil {
		return nil
	}
	for _, r := range s.Resources {
		if r.WaitQueue == p.queue {
			return r
		}
	}
	return nil
}

// Owns indica si p es dueño de algún recurso distinto de except.
func (s *Simulation) Owns(p *Process, except int) bool {
	for _, r := range s.Resources {
		if r.ID != except && r.Owner == p {
			return true
		}
	}
	return false
}

// Record agrega un evento al registro de la corrida.
func (s *Simulation) Record(kind EventKind, p *Process, resourceID int, detail string) {
	var pid uint
	if p != nil {
		pid = p.PID
	}
	s.Events = append(s.Events, Event{
		Tick:       s.Ticks,
		Kind:       kind,
		PID:        pid,
		ResourceID: resourceID,
		Detail:     detail,
	})
}

// CheckInvariants verifica la pertenencia a colas y el estado de cada proceso.
// Devuelve todas las violaciones encontradas juntas.
func (s *Simulation) CheckInvariants() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, Violation(format, args...))
	}

	for _, p := range s.Processes {
		if p.Age > p.Lifespan {
			fail("(%d) edad %d mayor que su vida %d", p.PID, p.Age, p.Lifespan)
		}
		if p.IsFinished() && p.queue != nil {
			fail("(%d) terminó pero sigue en %s", p.PID, p.queue.Name)
		}

		switch p.EstadoActual {
		case EstadoReady:
			if p.queue != s.ReadyQueue {
				fail("(%d) está READY fuera de la cola READY", p.PID)
			}
		case EstadoBlocked:
			if s.WaitingOn(p) == nil {
				fail("(%d) está BLOCKED sin estar en ninguna cola de espera", p.PID)
			}
		case EstadoRunning:
			if p != s.Current {
				fail("(%d) está RUNNING sin ser el proceso actual", p.PID)
			}
			if p.queue != nil {
				fail("(%d) está RUNNING y encolado en %s", p.PID, p.queue.Name)
			}
		case EstadoExit, EstadoNew:
			if p.queue != nil {
				fail("(%d) está %s y encolado en %s", p.PID, p.EstadoActual, p.queue.Name)
			}
		}
	}

	for p := range s.ReadyQueue.All() {
		if p.EstadoActual != EstadoReady {
			fail("(%d) está en READY con estado %s", p.PID, p.EstadoActual)
		}
	}
	for _, r := range s.Resources {
		for p := range r.WaitQueue.All() {
			if p.EstadoActual != EstadoBlocked {
				fail("(%d) está en %s con estado %s", p.PID, r.WaitQueue.Name, p.EstadoActual)
			}
		}
		if r.Owner != nil && r.Owner.EstadoActual == EstadoExit {
			fail("recurso %d sigue tomado por (%d) que ya terminó", r.ID, r.Owner.PID)
		}
	}

	return errors.Join(errs...)
}

func (s *Simulation) String() string {
	current := "-"
	if s.Current != nil {
		current = fmt.Sprint(s.Current.PID)
	}
	return fmt.Sprintf("tick=%d current=%s ready=%v", s.Ticks, current, s.ReadyQueue.PIDs())
}
