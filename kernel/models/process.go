package models

import "fmt"

type Estado string

const (
	EstadoNew     Estado = "NEW"
	EstadoReady   Estado = "READY"
	EstadoRunning Estado = "RUNNING"
	EstadoBlocked Estado = "BLOCKED"
	EstadoExit    Estado = "EXIT"
)

type RequestState int

const (
	RequestPending RequestState = iota
	RequestHeld
	RequestDone
)

func (s RequestState) String() string {
	switch s {
	case RequestPending:
		return "pending"
	case RequestHeld:
		return "held"
	case RequestDone:
		return "done"
	default:
		return "unknown"
	}
}

// ResourceRequest es un pedido del guion de un proceso: al llegar a la edad At pide el
// recurso ResourceID y lo suelta después de Duration ticks de ejecución.
type ResourceRequest struct {
	ResourceID int
	At         uint
	Duration   uint
	State      RequestState
}

// ReleaseAge es la edad a partir de la cual el pedido se libera.
func (r *ResourceRequest) ReleaseAge() uint {
	return r.At + r.Duration
}

// Process es el PCB de la simulación. Age lo modifica solo el simulador; Prio la
// modifican las políticas; el resto queda fijo desde la creación.
type Process struct {
	PID          uint
	Arrival      uint
	Lifespan     uint
	Age          uint
	Prio         int
	PrioOrig     int
	EstadoActual Estado
	Requests     []*ResourceRequest

	Started    bool
	StartTick  uint
	FinishTick uint

	queue *ProcessQueue
}

func NewProcess(pid uint, arrival uint, lifespan uint, prio int) *Process {
	return &Process{
		PID:          pid,
		Arrival:      arrival,
		Lifespan:     lifespan,
		Prio:         prio,
		PrioOrig:     prio,
		EstadoActual: EstadoNew,
	}
}

// Remaining devuelve los ticks que le faltan para terminar.
func (p *Process) Remaining() uint {
	return p.Lifespan - p.Age
}

func (p *Process) IsFinished() bool {
	return p.Age >= p.Lifespan
}

func (p *Process) IsBlocked() bool {
	return p.EstadoActual == EstadoBlocked
}

// Queue devuelve la cola en la que está el proceso, o nil.
func (p *Process) Queue() *ProcessQueue {
	return p.queue
}

// Detach saca al proceso de la cola en la que esté. Si no está en ninguna no hace nada.
func (p *Process) Detach() {
	if p.queue != nil {
		p.queue.Remove(p)
	}
}

func (p *Process) String() string {
	return fmt.Sprintf("(%d) %s age=%d/%d prio=%d/%d", p.PID, p.EstadoActual, p.Age, p.Lifespan, p.Prio, p.PrioOrig)
}
