package models

import (
	"iter"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/list"
)

// ProcessQueue es una cola FIFO de procesos que lleva cuenta de la pertenencia:
// un proceso está en a lo sumo una cola a la vez.
type ProcessQueue struct {
	Name  string
	items list.ArrayList[*Process]
}

func NewProcessQueue(name string) *ProcessQueue {
	return &ProcessQueue{Name: name}
}

// Enqueue agrega p al final de la cola.
func (q *ProcessQueue) Enqueue(p *Process) {
	if p.queue != nil {
		panic(Violation("(%d) no puede entrar a %s, ya está en %s", p.PID, q.Name, p.queue.Name))
	}
	Assert(!p.IsFinished(), "(%d) terminó y no puede volver a %s", p.PID, q.Name)
	q.items.Add(p)
	p.queue = q
}

// Remove saca a p de la cola, esté donde esté.
func (q *ProcessQueue) Remove(p *Process) {
	Assert(p.queue == q, "(%d) no está en %s", p.PID, q.Name)
	q.items.RemoveWhere(func(item *Process) bool { return item == p })
	p.queue = nil
}

// First devuelve la cabeza sin sacarla, o nil si la cola está vacía.
func (q *ProcessQueue) First() *Process {
	p, err := q.items.First()
	if err != nil {
		return nil
	}
	return p
}

// Dequeue saca y devuelve la cabeza, o nil si la cola está vacía.
func (q *ProcessQueue) Dequeue() *Process {
	p, err := q.items.Dequeue()
	if err != nil {
		return nil
	}
	p.queue = nil
	return p
}

// All recorre la cola de la cabeza al final. No modificar la pertenencia mientras se recorre.
func (q *ProcessQueue) All() iter.Seq[*Process] {
	return func(yield func(*Process) bool) {
		for _, p := range q.items.All() {
			if !yield(p) {
				return
			}
		}
	}
}

func (q *ProcessQueue) Contains(p *Process) bool {
	return p != nil && p.queue == q
}

func (q *ProcessQueue) IsEmpty() bool {
	return q.items.IsEmpty()
}

func (q *ProcessQueue) Size() int {
	return q.items.Size()
}

// PIDs devuelve los PID en orden de cola.
func (q *ProcessQueue) PIDs() []uint {
	pids := make([]uint, 0, q.items.Size())
	q.items.ForEach(func(p *Process) {
		pids = append(pids, p.PID)
	})
	return pids
}
