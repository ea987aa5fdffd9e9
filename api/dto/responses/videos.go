// ABOUTME: Response DTOs for video feed endpoints
// ABOUTME: Field names follow the wire contract used by the mobile and web clients

package responses

import "time"

// VideoResponse is one video in API responses
type VideoResponse struct {
	ID          string   `json:"id" doc:"Stable video identifier"`
	VideoURL    string   `json:"videoUrl" doc:"Playable media URL"`
	AuthorID    string   `json:"authorId" doc:"Author identifier used by follow"`
	UserName    string   `json:"userName,omitempty" doc:"Author display name"`
	UserImage   string   `json:"userImage,omitempty" doc:"Author avatar URL"`
	Title       string   `json:"title,omitempty" doc:"Video title"`
	Description string   `json:"description,omitempty" doc:"Video description"`
	Hashtags    []string `json:"hashtags,omitempty" doc:"Hashtags"`
	Likes       int64    `json:"likes" doc:"Like count"`
	IsLiked     bool     `json:"isLiked" doc:"Whether the viewer liked the video"`
	IsFollowing bool     `json:"isFollowing" doc:"Whether the viewer follows the author"`
	Comments    int64    `json:"comments" doc:"Comment count"`
	Shares      int64    `json:"shares" doc:"Share count"`
	Earnings    float64  `json:"earnings" doc:"Creator earnings"`
	IsPaid      bool     `json:"isPaid" doc:"Whether the video is paid content"`
	Duration    int      `json:"duration" doc:"Duration in seconds"`
}

// VideosResponse is one page of the feed
type VideosResponse struct {
	Data       []VideoResponse `json:"data" doc:"Videos on this page"`
	HasMore    bool            `json:"hasMore" doc:"Whether more videos follow"`
	Page       int             `json:"page" doc:"Page number"`
	TotalPages int             `json:"totalPages" doc:"Total pages at this limit"`
}

// ProfileResponse is a user profile
type ProfileResponse struct {
	ID        string `json:"id" doc:"User identifier"`
	Name      string `json:"name" doc:"Display name"`
	Username  string `json:"username" doc:"Handle"`
	Image     string `json:"image,omitempty" doc:"Avatar URL"`
	Followers int64  `json:"followers" doc:"Follower count"`
	Following int64  `json:"following" doc:"Following count"`
	Likes     int64  `json:"likes" doc:"Total likes received"`
	Bio       string `json:"bio,omitempty" doc:"Profile bio"`
	Verified  bool   `json:"verified" doc:"Verified badge"`
}

// ShareResponse is a share link
type ShareResponse struct {
	ID        string     `json:"id" doc:"Share identifier"`
	VideoID   string     `json:"videoId" doc:"Shared video"`
	URL       string     `json:"url" doc:"Link that opens the video"`
	CreatedAt time.Time  `json:"createdAt" doc:"Creation time"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" doc:"Expiry time"`
}

// HealthResponse is the health check body
type HealthResponse struct {
	Status  string `json:"status" doc:"Service status"`
	Version string `json:"version" doc:"API version"`
	Videos  int    `json:"videos,omitempty" doc:"Videos in the catalog"`
}
