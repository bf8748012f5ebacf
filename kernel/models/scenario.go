package models

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/config"
)

type ResourceSpec struct {
	ID       int  `json:"id" yaml:"id"`
	At       uint `json:"at" yaml:"at"`
	Duration uint `json:"duration" yaml:"duration"`
}

type ProcessSpec struct {
	PID       uint           `json:"pid,omitempty" yaml:"pid,omitempty"`
	Arrival   uint           `json:"arrival" yaml:"arrival"`
	Lifespan  uint           `json:"lifespan" yaml:"lifespan"`
	Prio      int            `json:"prio" yaml:"prio"`
	Resources []ResourceSpec `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Scenario describe la población de procesos de una corrida.
type Scenario struct {
	Name      string        `json:"name" yaml:"name"`
	Processes []ProcessSpec `json:"processes" yaml:"processes"`
}

// LoadScenario lee un escenario en YAML o JSON.
func LoadScenario(path string) (*Scenario, error) {
	var scenario Scenario
	if err := config.Load(path, &scenario); err != nil {
		return nil, fmt.Errorf("escenario %s: %w", path, err)
	}
	if scenario.Name == "" {
		scenario.Name = path
	}
	return &scenario, nil
}

// Normalized devuelve una copia donde los procesos sin PID reciben el siguiente PID libre desde 1.
func (s Scenario) Normalized() Scenario {
	used := make(map[uint]bool, len(s.Processes))
	for _, spec := range s.Processes {
		if spec.PID != 0 {
			used[spec.PID] = true
		}
	}

	out := Scenario{Name: s.Name, Processes: make([]ProcessSpec, len(s.Processes))}
	var next uint = 1
	for i, spec := range s.Processes {
		spec.Resources = slices.Clone(spec.Resources)
		if spec.PID == 0 {
			for used[next] {
				next++
			}
			spec.PID = next
			used[next] = true
		}
		out.Processes[i] = spec
	}
	return out
}

// Validate revisa el escenario contra el tamaño de la tabla de recursos y el techo de prioridad.
// Se espera un escenario ya normalizado.
func (s Scenario) Validate(nrResources int, maxPrio int) error {
	var errs []error
	if len(s.Processes) == 0 {
		errs = append(errs, errors.New("el escenario no tiene procesos"))
	}

	seen := make(map[uint]bool, len(s.Processes))
	for _, spec := range s.Processes {
		if spec.PID == 0 {
			errs = append(errs, errors.New("proceso sin PID"))
		} else if seen[spec.PID] {
			errs = append(errs, fmt.Errorf("(%d) PID duplicado", spec.PID))
		}
		seen[spec.PID] = true

		if spec.Lifespan == 0 {
			errs = append(errs, fmt.Errorf("(%d) lifespan debe ser mayor a 0", spec.PID))
		}
		// el techo queda reservado para quien tiene un recurso
		if spec.Prio < 0 || spec.Prio >= maxPrio {
			errs = append(errs, fmt.Errorf("(%d) prio %d fuera de [0, %d)", spec.PID, spec.Prio, maxPrio))
		}

		for _, res := range spec.Resources {
			if res.ID < 0 || res.ID >= nrResources {
				errs = append(errs, fmt.Errorf("(%d) recurso %d fuera de [0, %d)", spec.PID, res.ID, nrResources))
			}
			if res.Duration == 0 {
				errs = append(errs, fmt.Errorf("(%d) recurso %d con duración 0", spec.PID, res.ID))
			}
			if res.At >= spec.Lifespan || res.Duration > spec.Lifespan-res.At {
				errs = append(errs, fmt.Errorf("(%d) recurso %d pedido en %d por %d excede lifespan %d",
					spec.PID, res.ID, res.At, res.Duration, spec.Lifespan))
			}
		}
		if err := checkOverlaps(spec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// checkOverlaps rechaza dos pedidos del mismo recurso que se pisan: un proceso no puede pedir lo que ya tiene.
func checkOverlaps(spec ProcessSpec) error {
	byResource := make(map[int][]ResourceSpec)
	for _, res := range spec.Resources {
		byResource[res.ID] = append(byResource[res.ID], res)
	}
	for id, requests := range byResource {
		slices.SortStableFunc(requests, func(a, b ResourceSpec) int { return cmp.Compare(a.At, b.At) })
		for i := 1; i < len(requests); i++ {
			prev := requests[i-1]
			// prev.At <= requests[i].At, así que la resta no da la vuelta
			if prev.Duration > requests[i].At-prev.At {
				return fmt.Errorf("(%d) pedidos del recurso %d superpuestos en %d", spec.PID, id, requests[i].At)
			}
		}
	}
	return nil
}

// Build crea los procesos del escenario ordenados por llegada (estable respecto del archivo).
// Los pedidos de recursos de cada proceso quedan ordenados por edad.
func (s Scenario) Build() []*Process {
	processes := make([]*Process, 0, len(s.Processes))
	for _, spec := range s.Processes {
		p := NewProcess(spec.PID, spec.Arrival, spec.Lifespan, spec.Prio)
		for _, res := range spec.Resources {
			p.Requests = append(p.Requests, &ResourceRequest{
				ResourceID: res.ID,
				At:         res.At,
				Duration:   res.Duration,
			})
		}
		slices.SortStableFunc(p.Requests, func(a, b *ResourceRequest) int { return cmp.Compare(a.At, b.At) })
		processes = append(processes, p)
	}
	slices.SortStableFunc(processes, func(a, b *Process) int { return cmp.Compare(a.Arrival, b.Arrival) })
	return processes
}
