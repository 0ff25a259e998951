package matching

import (
	"math/rand/v2"
	"sync"
)

// Random is the source of every non-deterministic choice the engine makes:
// shuffling the fallback project order, score bonuses in fuzzy mode and
// proficiency levels in gap reports.
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type lockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandom returns a goroutine-safe source seeded with seed. Two sources with
// the same seed produce the same sequence.
func NewRandom(seed uint64) Random {
	return &lockedRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRandom) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
