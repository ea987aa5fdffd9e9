// ABOUTME: Active-item tracker picks the single feed entry eligible for autoplay
// ABOUTME: Applies a visibility threshold with hysteresis and topmost tie-breaking

package feed

import "sync"

// NoActive means no item is active
const NoActive = -1

// DefaultActiveThreshold is the visibility ratio an item must exceed to become active
const DefaultActiveThreshold = 0.7

// Transition describes the result of one tracker update
type Transition struct {
	Previous int
	Current  int
	Changed  bool
}

// ActiveTracker keeps the active index across visibility updates
type ActiveTracker struct {
	mu        sync.Mutex
	threshold float64
	active    int
}

// NewActiveTracker creates a tracker. Thresholds outside (0,1) fall back to the default.
func NewActiveTracker(threshold float64) *ActiveTracker {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultActiveThreshold
	}
	return &ActiveTracker{
		threshold: threshold,
		active:    NoActive,
	}
}

// Threshold returns the configured threshold
func (t *ActiveTracker) Threshold() float64 {
	return t.threshold
}

// Active returns the current active index
func (t *ActiveTracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Update selects the active index from ratios given in item order.
// The item with the highest ratio strictly above the threshold wins; the lowest index wins ties.
// When nothing exceeds the threshold the previous active index is kept.
func (t *ActiveTracker) Update(ratios []float64) Transition {
	t.mu.Lock()
	defer t.mu.Unlock()

	previous := t.active
	best := NoActive
	bestRatio := t.threshold
	for i, r := range ratios {
		if r > bestRatio {
			best = i
			bestRatio = r
		}
	}

	// An index that no longer exists cannot stay active
	if best == NoActive && t.active >= len(ratios) {
		t.active = NoActive
	}
	if best != NoActive {
		t.active = best
	}

	return Transition{
		Previous: previous,
		Current:  t.active,
		Changed:  previous != t.active,
	}
}

// Set forces the active index, used by explicit navigation
func (t *ActiveTracker) Set(index int) Transition {
	t.mu.Lock()
	defer t.mu.Unlock()

	previous := t.active
	t.active = index
	return Transition{Previous: previous, Current: index, Changed: previous != index}
}

// Reset clears the active index
func (t *ActiveTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = NoActive
}
