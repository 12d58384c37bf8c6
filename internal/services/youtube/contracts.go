package youtube

import (
	"context"

	"google.golang.org/api/youtube/v3"
)

// Client defines the interface for the YouTube Data API operations the
// pipeline depends on.
type Client interface {
	// ListUploadIDs returns the complete ordered list of video ids in
	// the channel's uploads playlist.
	ListUploadIDs(ctx context.Context, channelID string) ([]string, error)

	// FetchDetails retrieves the full metadata for the given video ids,
	// in upstream batch-response order.
	FetchDetails(ctx context.Context, ids []string) ([]*youtube.Video, error)
}
