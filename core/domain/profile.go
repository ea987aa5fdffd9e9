// ABOUTME: User profile domain model shown on the profile screen

package domain

// UserProfile is the viewer or author profile summary
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Image     string `json:"image,omitempty"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
	Likes     int64  `json:"likes"`
	Bio       string `json:"bio,omitempty"`
	Verified  bool   `json:"verified"`
}
