package interfaces

// Metrics records feed activity. Implementations must be safe for concurrent use.
type Metrics interface {
	// PageLoaded counts a page load attempt; kind is "initial" or "more"
	PageLoaded(kind string, success bool)

	// Mutation counts a like/follow outcome such as "applied" or "rolled_back"
	Mutation(action, outcome string)

	// SourceCall counts a call served by a video source
	SourceCall(op string, success bool)
}
