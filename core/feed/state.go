// ABOUTME: Pagination states of the feed controller

package feed

// State is the pagination state of a feed
type State int

const (
	Idle State = iota
	LoadingInitial
	Ready
	LoadingMore
	Exhausted
	Error
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case LoadingInitial:
		return "loading_initial"
	case Ready:
		return "ready"
	case LoadingMore:
		return "loading_more"
	case Exhausted:
		return "exhausted"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// IsLoading reports whether a page request is in flight
func (s State) IsLoading() bool {
	return s == LoadingInitial || s == LoadingMore
}
