package models

import (
	"fmt"
	"math/rand/v2"
)

// GeneratorOptions acota los valores que sortea GenerateScenario.
type GeneratorOptions struct {
	Processes   int     `json:"processes" yaml:"processes"`
	MaxLifespan uint    `json:"max_lifespan" yaml:"max_lifespan"`
	MaxArrival  uint    `json:"max_arrival" yaml:"max_arrival"`
	MaxPrio     int     `json:"max_prio" yaml:"max_prio"`
	NrResources int     `json:"nr_resources" yaml:"nr_resources"`
	Contention  float64 `json:"contention" yaml:"contention"` // probabilidad de que un proceso pida un recurso
}

func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Processes:   5,
		MaxLifespan: 12,
		MaxArrival:  10,
		MaxPrio:     MaxPrio,
		NrResources: 2,
		Contention:  0.6,
	}
}

// GenerateScenario sortea un escenario reproducible a partir de seed.
// Cada proceso tiene a lo sumo un recurso tomado a la vez, así que los escenarios
// generados nunca forman esperas circulares.
func GenerateScenario(seed uint64, opts GeneratorOptions) Scenario {
	rng := rand.New(rand.NewPCG(seed, seed^0x5eed))

	maxLifespan := max(opts.MaxLifespan, 1)
	scenario := Scenario{Name: fmt.Sprintf("random-%d", seed)}

	for i := 0; i < opts.Processes; i++ {
		spec := ProcessSpec{
			PID:      uint(i + 1),
			Lifespan: 1 + rng.UintN(maxLifespan),
		}
		if opts.MaxArrival > 0 {
			spec.Arrival = rng.UintN(opts.MaxArrival + 1)
		}
		if opts.MaxPrio > 0 {
			spec.Prio = rng.IntN(opts.MaxPrio)
		}

		if opts.NrResources > 0 && rng.Float64() < opts.Contention {
			spec.Resources = randomHolds(rng, spec.Lifespan, opts.NrResources)
		}
		scenario.Processes = append(scenario.Processes, spec)
	}
	return scenario
}

// randomHolds reparte hasta dos tomas de recursos sin solaparse dentro de la vida del proceso.
func randomHolds(rng *rand.Rand, lifespan uint, nrResources int) []ResourceSpec {
	var holds []ResourceSpec
	var age uint
	for n := 0; n < 2 && age < lifespan; n++ {
		at := age + rng.UintN(lifespan-age)
		duration := 1 + rng.UintN(lifespan-at)
		holds = append(holds, ResourceSpec{
			ID:       rng.IntN(nrResources),
			At:       at,
			Duration: duration,
		})
		age = at + duration
	}
	return holds
}
