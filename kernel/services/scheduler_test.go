package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulers_Table(t *testing.T) {
	var keys []string
	for _, policy := range Schedulers {
		keys = append(keys, policy.Key)
		assert.NotNil(t, policy.Schedule, policy.Key)
		assert.NotNil(t, policy.Acquire, policy.Key)
		assert.NotNil(t, policy.Release, policy.Key)
	}
	assert.Equal(t, []string{"fcfs", "sjf", "stcf", "rr", "prio", "pa", "pcp", "pip"}, keys)
}

func TestFindScheduler(t *testing.T) {
	policy, err := FindScheduler("PIP")
	require.NoError(t, err)
	assert.Equal(t, "Priority + PIP Protocol", policy.Name)

	policy, err = FindScheduler("round-robin")
	require.NoError(t, err)
	assert.Same(t, &RRScheduler, policy)

	_, err = FindScheduler("lottery")
	assert.ErrorIs(t, err, ErrUnknownScheduler)
}

func TestRequireCeiling(t *testing.T) {
	sim := newTestSim()
	assert.NoError(t, PAScheduler.initialize(sim))

	sim.MaxPrio = 0
	assert.Error(t, PAScheduler.initialize(sim))
	assert.Error(t, PCPScheduler.initialize(sim))
	assert.NoError(t, FCFSScheduler.initialize(sim))
	assert.NoError(t, PIPScheduler.initialize(sim))
}
