package utils

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource is the entropy used by the synthesizers and the ledger.
// Read lets it back uuid generation so complaint ids are reproducible under a fixed seed.
type RandomSource interface {
	NormFloat64() float64
	Float64() float64
	Intn(n int) int
	Read(p []byte) (int, error)
}

// LockedRand is a goroutine-safe *rand.Rand. Handlers share one instance across requests.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand creates a random source. seed 0 seeds from the wall clock.
func NewLockedRand(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *LockedRand) NormFloat64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.NormFloat64()
}

func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *LockedRand) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// IntRange returns a value in [lo, hi). hi <= lo returns lo.
func IntRange(rng RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// Uniform returns a value in [lo, hi).
func Uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
