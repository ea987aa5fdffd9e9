// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Domain JSON tags and DTO tags describe the same wire format

package mappers

import (
	"reels-app-api/api/dto/responses"
	"reels-app-api/core/domain"
)

// ToVideoResponse converts a domain VideoItem to a VideoResponse DTO
func ToVideoResponse(item *domain.VideoItem) *responses.VideoResponse {
	if item == nil {
		return nil
	}

	return &responses.VideoResponse{
		ID:          item.ID,
		VideoURL:    item.MediaURL,
		AuthorID:    item.AuthorID,
		UserName:    item.AuthorName,
		UserImage:   item.AuthorImage,
		Title:       item.Title,
		Description: item.Description,
		Hashtags:    item.Hashtags,
		Likes:       item.LikeCount,
		IsLiked:     item.IsLiked,
		IsFollowing: item.IsFollowingAuthor,
		Comments:    item.CommentCount,
		Shares:      item.ShareCount,
		Earnings:    item.Earnings,
		IsPaid:      item.IsPaid,
		Duration:    item.DurationSeconds,
	}
}

// ToVideosResponse converts a FeedPage to a VideosResponse DTO
func ToVideosResponse(page *domain.FeedPage) *responses.VideosResponse {
	if page == nil {
		return nil
	}

	response := &responses.VideosResponse{
		Data:       make([]responses.VideoResponse, 0, len(page.Items)),
		HasMore:    page.HasMore,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
	for i := range page.Items {
		response.Data = append(response.Data, *ToVideoResponse(&page.Items[i]))
	}

	return response
}

// ToProfileResponse converts a domain UserProfile to a ProfileResponse DTO
func ToProfileResponse(p *domain.UserProfile) *responses.ProfileResponse {
	if p == nil {
		return nil
	}

	return &responses.ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Username:  p.Username,
		Image:     p.Image,
		Followers: p.Followers,
		Following: p.Following,
		Likes:     p.Likes,
		Bio:       p.Bio,
		Verified:  p.Verified,
	}
}

// ToShareResponse converts a domain Share to a ShareResponse DTO
func ToShareResponse(s *domain.Share) *responses.ShareResponse {
	if s == nil {
		return nil
	}

	return &responses.ShareResponse{
		ID:        s.ID,
		VideoID:   s.VideoID,
		URL:       s.URL,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
