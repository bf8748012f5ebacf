package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProcessStats(t *testing.T) {
	p := NewProcess(1, 2, 3, 4)
	p.Age = 3
	p.Started = true
	p.StartTick = 4
	p.FinishTick = 9

	assert.Equal(t, ProcessStats{
		PID: 1, Arrival: 2, Lifespan: 3, Prio: 4,
		Start: 4, Finish: 9, Turnaround: 8, Waiting: 5, Response: 2,
	}, NewProcessStats(p))
}

func TestResult_RunOrderAndAverage(t *testing.T) {
	r := Result{
		Timeline:  []uint{0, 1, 1, 2, 0, 2, 1},
		Processes: []ProcessStats{{Waiting: 1}, {Waiting: 4}},
	}

	assert.Equal(t, []uint{1, 2, 1}, r.RunOrder())
	assert.InDelta(t, 2.5, r.AverageWaiting(), 1e-9)
	assert.Zero(t, (&Result{}).AverageWaiting())
}
