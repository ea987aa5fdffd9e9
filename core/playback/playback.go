// ABOUTME: Playback state for a single feed item
// ABOUTME: Tracks position, mute and volume and applies activate/deactivate side effects

package playback

import (
	"sync"
	"time"
)

// State is the playback state of one item
type State int

const (
	Loading State = iota
	Playing
	Paused
	Ended
	Error
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Playback holds the player state of one item. It is safe for concurrent use.
type Playback struct {
	mu       sync.Mutex
	state    State
	position time.Duration
	duration time.Duration
	muted    bool
	volume   float64
	active   bool
	err      error
}

// New creates a loading playback for media of the given duration
func New(duration time.Duration) *Playback {
	return &Playback{
		state:    Loading,
		duration: duration,
		volume:   1,
	}
}

// Activate starts playback from the current position, or from zero after the media ended
func (p *Playback) Activate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.active = true
	switch p.state {
	case Error:
		return
	case Ended:
		p.position = 0
	}
	p.state = Playing
}

// Deactivate pauses playback and keeps the position
func (p *Playback) Deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.active = false
	if p.state == Playing || p.state == Loading {
		p.state = Paused
	}
}

// TogglePlay flips between playing and paused. Ended media restarts.
func (p *Playback) TogglePlay() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case Playing:
		p.state = Paused
	case Ended:
		p.position = 0
		p.state = Playing
	case Paused, Loading:
		p.state = Playing
	}
	return p.state
}

// ToggleMute flips the mute flag and returns the new value
func (p *Playback) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	return p.muted
}

// SetVolume clamps v to [0,1]; zero mutes and anything above zero unmutes
func (p *Playback) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
	p.muted = v == 0
}

// Seek moves the position, clamped to the media bounds
func (p *Playback) Seek(to time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.position = p.clamp(to)
	if p.state == Ended && p.position < p.duration {
		p.state = Paused
	}
}

// Advance moves a playing item forward by d and ends it at the media end
func (p *Playback) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing {
		return
	}
	p.position = p.clamp(p.position + d)
	if p.duration > 0 && p.position >= p.duration {
		p.state = Ended
	}
}

// MarkReady moves a loading item to playing when active, paused otherwise
func (p *Playback) MarkReady() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Loading {
		return
	}
	if p.active {
		p.state = Playing
	} else {
		p.state = Paused
	}
}

// MarkEnded records that the media completed
func (p *Playback) MarkEnded() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.position = p.duration
	p.state = Ended
}

// Fail records a media error
func (p *Playback) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.err = err
	p.state = Error
}

func (p *Playback) clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if p.duration > 0 && d > p.duration {
		return p.duration
	}
	return d
}

// Status is a point-in-time view of a Playback
type Status struct {
	State    State
	Position time.Duration
	Duration time.Duration
	Muted    bool
	Volume   float64
	Active   bool
	Err      error
}

// Status returns the current playback status
func (p *Playback) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Status{
		State:    p.state,
		Position: p.position,
		Duration: p.duration,
		Muted:    p.muted,
		Volume:   p.volume,
		Active:   p.active,
		Err:      p.err,
	}
}
