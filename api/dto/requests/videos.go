// ABOUTME: Request DTOs for video feed endpoints
// ABOUTME: Query and path parameters with validation bounds for huma

package requests

// ListVideosRequest is the query of GET /videos
type ListVideosRequest struct {
	// Page is the page number for pagination (1-based)
	Page int `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`

	// Limit is the number of videos per page
	Limit int `query:"limit" minimum:"1" maximum:"50" default:"5" doc:"Number of videos per page"`

	// Offset is the number of videos the client already holds; it overrides page arithmetic when positive
	Offset int `query:"offset" minimum:"0" default:"0" doc:"Videos already loaded by the client"`
}

// VideoPathRequest addresses one video
type VideoPathRequest struct {
	ID string `path:"id" minLength:"1" doc:"Video ID"`
}

// AuthorPathRequest addresses one author
type AuthorPathRequest struct {
	AuthorID string `path:"authorId" minLength:"1" doc:"Author ID"`
}

// UserPathRequest addresses one user profile
type UserPathRequest struct {
	ID string `path:"id" minLength:"1" doc:"User ID or 'me'"`
}

// SharePathRequest addresses one share link
type SharePathRequest struct {
	ID string `path:"id" minLength:"1" doc:"Share ID"`
}
