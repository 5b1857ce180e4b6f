package utils

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource provides the randomness used for placeholder model output.
// Services take it as an interface so tests can supply deterministic
// sequences.
type RandSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// LockedRand is a RandSource safe for concurrent use across requests.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand creates a time-seeded concurrent random source.
func NewLockedRand() *LockedRand {
	return &LockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
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

// UniformIn returns a uniform value in [min, max) drawn from src.
func UniformIn(src RandSource, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}
