package models

type EventKind string

const (
	EventFork     EventKind = "FORK"
	EventDispatch EventKind = "DISPATCH"
	EventState    EventKind = "STATE"
	EventAcquire  EventKind = "ACQUIRE"
	EventBlock    EventKind = "BLOCK"
	EventRelease  EventKind = "RELEASE"
	EventWake     EventKind = "WAKE"
	EventEvict    EventKind = "EVICT"
	EventPrio     EventKind = "PRIO"
	EventFinish   EventKind = "FINISH"
	EventIdle     EventKind = "IDLE"
)

// NoResource se usa en los eventos que no involucran un recurso.
const NoResource = -1

type Event struct {
	Tick       uint      `json:"tick" yaml:"tick"`
	Kind       EventKind `json:"kind" yaml:"kind"`
	PID        uint      `json:"pid" yaml:"pid"`
	ResourceID int       `json:"resource_id" yaml:"resource_id"`
	Detail     string    `json:"detail,omitempty" yaml:"detail,omitempty"`
}
