// Package mocks provides a testify mock of the YouTube client interface.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"google.golang.org/api/youtube/v3"
)

// Client is a mock implementation of the youtube.Client interface.
type Client struct {
	mock.Mock
}

func (m *Client) ListUploadIDs(ctx context.Context, channelID string) ([]string, error) {
	args := m.Called(ctx, channelID)

	var ids []string
	if v := args.Get(0); v != nil {
		ids = v.([]string)
	}
	return ids, args.Error(1)
}

func (m *Client) FetchDetails(ctx context.Context, ids []string) ([]*youtube.Video, error) {
	args := m.Called(ctx, ids)

	var details []*youtube.Video
	if v := args.Get(0); v != nil {
		details = v.([]*youtube.Video)
	}
	return details, args.Error(1)
}
