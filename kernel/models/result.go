package models

type ProcessStats struct {
	PID        uint `json:"pid" yaml:"pid"`
	Arrival    uint `json:"arrival" yaml:"arrival"`
	Lifespan   uint `json:"lifespan" yaml:"lifespan"`
	Prio       int  `json:"prio" yaml:"prio"`
	Start      uint `json:"start" yaml:"start"`
	Finish     uint `json:"finish" yaml:"finish"`
	Turnaround uint `json:"turnaround" yaml:"turnaround"`
	Waiting    uint `json:"waiting" yaml:"waiting"`
	Response   uint `json:"response" yaml:"response"`
}

// Result es lo que deja una corrida completa. Timeline tiene el PID que corrió en cada tick (0 = ocioso).
type Result struct {
	ID         string         `json:"id,omitempty" yaml:"id,omitempty"`
	Scenario   string         `json:"scenario" yaml:"scenario"`
	Policy     string         `json:"policy" yaml:"policy"`
	PolicyName string         `json:"policy_name" yaml:"policy_name"`
	Ticks      uint           `json:"ticks" yaml:"ticks"`
	Timeline   []uint         `json:"timeline" yaml:"timeline"`
	Processes  []ProcessStats `json:"processes" yaml:"processes"`
	Events     []Event        `json:"events,omitempty" yaml:"events,omitempty"`
}

// NewProcessStats calcula las métricas de un proceso terminado.
// Finish es el último tick en el que corrió.
func NewProcessStats(p *Process) ProcessStats {
	stats := ProcessStats{
		PID:      p.PID,
		Arrival:  p.Arrival,
		Lifespan: p.Lifespan,
		Prio:     p.PrioOrig,
		Start:    p.StartTick,
		Finish:   p.FinishTick,
	}
	if p.IsFinished() {
		stats.Turnaround = p.FinishTick + 1 - p.Arrival
		stats.Waiting = stats.Turnaround - p.Lifespan
	}
	if p.Started {
		stats.Response = p.StartTick - p.Arrival
	}
	return stats
}

// AverageWaiting promedia la espera de todos los procesos.
func (r *Result) AverageWaiting() float64 {
	if len(r.Processes) == 0 {
		return 0
	}
	var total uint
	for _, stats := range r.Processes {
		total += stats.Waiting
	}
	return float64(total) / float64(len(r.Processes))
}

// RunOrder devuelve los PID en el orden en que se sucedieron en la línea de tiempo,
// colapsando ticks consecutivos del mismo proceso.
func (r *Result) RunOrder() []uint {
	var order []uint
	for _, pid := range r.Timeline {
		if pid == 0 {
			continue
		}
		if len(order) == 0 || order[len(order)-1] != pid {
			order = append(order, pid)
		}
	}
	return order
}
