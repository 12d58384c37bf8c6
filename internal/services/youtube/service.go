// Package youtube wraps the YouTube Data API calls used to collect a
// channel's upload metadata: listing the uploads playlist and batch
// fetching video details.
package youtube

import (
	"context"
	"fmt"
	"strings"

	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/utils"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// maxBatchSize is the upstream cap on ids per videos.list call.
	maxBatchSize = 50
	// defaultPageSize is the number of playlist items requested per page.
	defaultPageSize = 50
)

// Service implements Client against the YouTube Data API with an API key.
type Service struct {
	yt *youtube.Service

	// PageSize is the page size used when listing the uploads playlist.
	PageSize int64
}

// NewService creates a YouTube Data API client authenticated by API key.
// Extra options are passed through, which lets tests redirect the client
// to a local endpoint.
func NewService(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Service, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	yt, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Service{yt: yt, PageSize: defaultPageSize}, nil
}

// UploadsPlaylistID derives the identifier of a channel's auto-generated
// uploads playlist: the channel id with its first two characters replaced
// by the "UU" marker.
func UploadsPlaylistID(channelID string) string {
	if len(channelID) < 2 {
		return channelID
	}
	return "UU" + channelID[2:]
}

// ListUploadIDs pages through the channel's uploads playlist and returns
// every video id in upstream order. Any upstream error aborts the whole
// listing; no partial result is returned. Ids repeated across pages
// (uploads landing mid-run shift the pagination window) are kept once,
// first occurrence wins.
func (s *Service) ListUploadIDs(ctx context.Context, channelID string) ([]string, error) {
	playlistID := UploadsPlaylistID(channelID)

	var ids []string
	seen := make(map[string]struct{})
	pageToken := ""
	page := 0

	for {
		call := s.yt.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(s.PageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			return nil, &RemoteError{Op: "list uploads", Err: err}
		}

		page++
		for _, item := range response.Items {
			if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
				continue
			}
			id := item.ContentDetails.VideoId
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		utils.LogVerbose("Listed page %d: %d items (%d ids total)", page, len(response.Items), len(ids))

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	return ids, nil
}

// FetchDetails retrieves the snippet and content details for the given
// ids in sequential batches of at most 50, concatenated in batch-issue
// order. A batch whose response carries no items contributes nothing.
func (s *Service) FetchDetails(ctx context.Context, ids []string) ([]*youtube.Video, error) {
	var details []*youtube.Video

	for start := 0; start < len(ids); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		response, err := s.yt.Videos.List([]string{"snippet", "contentDetails"}).
			Id(strings.Join(chunk, ",")).
			MaxResults(int64(len(chunk))).
			Context(ctx).
			Do()
		if err != nil {
			return nil, &RemoteError{Op: "fetch details", Err: err}
		}

		details = append(details, response.Items...)
		utils.LogVerbose("Fetched details for %d of %d ids", len(details), len(ids))
	}

	return details, nil
}
