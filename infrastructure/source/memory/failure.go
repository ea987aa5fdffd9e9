// ABOUTME: Failure injection for the in-memory video source
// ABOUTME: Supports a random failure rate and scripted one-shot failures per operation

package memory

import (
	"math/rand"
	"sync"
)

// Operation names a source call that can be made to fail
type Operation string

const (
	OpGetVideos    Operation = "get_videos"
	OpToggleLike   Operation = "toggle_like"
	OpToggleFollow Operation = "toggle_follow"
	OpGetProfile   Operation = "get_profile"
)

// FailurePolicy decides whether a call fails
type FailurePolicy interface {
	ShouldFail(op Operation) bool
}

// NoFailures never fails
type NoFailures struct{}

// ShouldFail implements FailurePolicy
func (NoFailures) ShouldFail(Operation) bool { return false }

// RandomFailures fails each call with the given probability
type RandomFailures struct {
	mu   sync.Mutex
	rate float64
	rng  *rand.Rand
}

// NewRandomFailures creates a policy failing calls at rate, with a fixed seed for repeatable runs
func NewRandomFailures(rate float64, seed int64) *RandomFailures {
	return &RandomFailures{rate: rate, rng: rand.New(rand.NewSource(seed))}
}

// ShouldFail implements FailurePolicy
func (r *RandomFailures) ShouldFail(Operation) bool {
	if r.rate <= 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64() < r.rate
}

// ScriptedFailures fails the next N calls of chosen operations
type ScriptedFailures struct {
	mu      sync.Mutex
	pending map[Operation]int
}

// NewScriptedFailures creates an empty script
func NewScriptedFailures() *ScriptedFailures {
	return &ScriptedFailures{pending: make(map[Operation]int)}
}

// FailNext makes the next n calls of op fail
func (s *ScriptedFailures) FailNext(op Operation, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[op] += n
}

// ShouldFail implements FailurePolicy
func (s *ScriptedFailures) ShouldFail(op Operation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[op] > 0 {
		s.pending[op]--
		return true
	}
	return false
}
