// File: workload/actions.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Randomized allocator workloads: mixed create/delete sequences with a
// configurable create probability, used by benchmarks and stress tests.

package workload

import "math/rand"

// Action is one step of a workload: Create allocates one item, any other
// value deletes the live item at that index.
type Action int

// Create is the allocate-one action.
const Create Action = -1

// Generate produces a sequence that allocates n items in total and deletes
// every one of them, interleaved at the given create probability. The seed
// is explicit so a failing sequence reproduces across runs.
func Generate(n int, createProbability float64, seed int64) []Action {
	rng := rand.New(rand.NewSource(seed))

	toCreate := n
	existing := 0
	actions := make([]Action, 0, n*2)

	for toCreate > 0 || existing > 0 {
		if toCreate > 0 && (rng.Float64() < createProbability || existing == 0) {
			actions = append(actions, Create)
			toCreate--
			existing++
		} else {
			idx := rng.Intn(existing)
			actions = append(actions, Action(idx))
			existing--
		}
	}
	return actions
}
