package models

import "fmt"

// Resource es un recurso exclusivo: a lo sumo un dueño y una cola de procesos bloqueados esperándolo.
type Resource struct {
	ID        int
	Owner     *Process
	WaitQueue *ProcessQueue
}

func NewResource(id int) *Resource {
	return &Resource{
		ID:        id,
		WaitQueue: NewProcessQueue(fmt.Sprintf("WAIT[%d]", id)),
	}
}

func (r *Resource) IsFree() bool {
	return r.Owner == nil
}
