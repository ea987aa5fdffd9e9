// ABOUTME: VideoSource and ProfileSource backed by the reels HTTP API
// ABOUTME: Lets the feed controller and item views run against a remote server

package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"reels-app-api/core/domain"
	coreerrors "reels-app-api/core/errors"
	"reels-app-api/core/interfaces"
)

const apiName = "reels-api"

// Source talks to the API at baseURL
type Source struct {
	baseURL string
	client  interfaces.HTTPClient
}

// New creates a remote source. baseURL must not end with a slash.
func New(baseURL string, client interfaces.HTTPClient) *Source {
	return &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// GetVideos fetches one page of the feed
func (s *Source) GetVideos(ctx context.Context, req domain.PageRequest) (*domain.FeedPage, error) {
	if err := req.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "page", Message: err.Error()}
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("limit", strconv.Itoa(req.Limit))
	if req.Offset > 0 {
		q.Set("offset", strconv.Itoa(req.Offset))
	}

	resp, err := s.client.Get(ctx, s.baseURL+"/videos?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var page domain.FeedPage
	if err := decode(resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ToggleLike flips the like on a video
func (s *Source) ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error) {
	return s.postVideo(ctx, "/videos/"+url.PathEscape(videoID)+"/like")
}

// ToggleFollow flips the follow on an author
func (s *Source) ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error) {
	return s.postVideo(ctx, "/authors/"+url.PathEscape(authorID)+"/follow")
}

// GetUserProfile fetches a user profile
func (s *Source) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	resp, err := s.client.Get(ctx, s.baseURL+"/users/"+url.PathEscape(userID))
	if err != nil {
		return nil, err
	}

	var profile domain.UserProfile
	if err := decode(resp, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Source) postVideo(ctx context.Context, path string) (*domain.VideoItem, error) {
	resp, err := s.client.Post(ctx, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	var item domain.VideoItem
	if err := decode(resp, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// problem is the subset of an RFC 7807 body we read
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// decode reads a 2xx body into out, or turns an error status into a typed error
func decode(resp interfaces.Response, out interface{}) error {
	body := resp.Body()
	defer body.Close()

	status := resp.StatusCode()
	if status >= 200 && status < 300 {
		if err := json.NewDecoder(body).Decode(out); err != nil {
			return &coreerrors.ExternalAPIError{StatusCode: status, Message: fmt.Sprintf("invalid response body: %v", err), API: apiName}
		}
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(body, 64<<10))
	var p problem
	msg := http.StatusText(status)
	if json.Unmarshal(raw, &p) == nil && p.Detail != "" {
		msg = p.Detail
	}

	switch status {
	case http.StatusNotFound:
		return &coreerrors.NotFoundError{Resource: "remote resource", ID: msg}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &coreerrors.ValidationError{Field: "request", Message: msg}
	default:
		return &coreerrors.ExternalAPIError{StatusCode: status, Message: msg, API: apiName}
	}
}
