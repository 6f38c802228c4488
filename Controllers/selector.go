package Controllers

import (
	"time"

	"Garage/Models"

	"golang.org/x/exp/rand"
)

// WorkerSelector picks one worker from a non-empty candidate list for
// auto-assignment. Kept behind an interface so tests can inject a
// deterministic strategy.
type WorkerSelector interface {
	Pick(workers []Models.Worker) Models.Worker
}

// RandomSelector selects uniformly at random.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector seeds from the clock; NewSeededSelector fixes the
// sequence for reproducible runs.
func NewRandomSelector() *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))}
}

func NewSeededSelector(seed uint64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSelector) Pick(workers []Models.Worker) Models.Worker {
	return workers[s.rng.Intn(len(workers))]
}
