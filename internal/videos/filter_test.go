package videos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"google.golang.org/api/youtube/v3"
)

func video(id, title, iso, thumbnail string) *youtube.Video {
	v := &youtube.Video{
		Id:             id,
		Snippet:        &youtube.VideoSnippet{Title: title},
		ContentDetails: &youtube.VideoContentDetails{Duration: iso},
	}
	if thumbnail != "" {
		v.Snippet.Thumbnails = &youtube.ThumbnailDetails{
			Medium: &youtube.Thumbnail{Url: thumbnail},
		}
	}
	return v
}

func TestSelect(t *testing.T) {
	items := []*youtube.Video{
		video("v1", "Quick tip", "PT1M", "https://i.ytimg.com/v1.jpg"),
		video("v2", "Full session", "PT3M20S", "https://i.ytimg.com/v2.jpg"),
		video("v3", "Exactly three minutes", "PT3M0S", "https://i.ytimg.com/v3.jpg"),
		video("v4", "Long talk", "PT1H1M1S", "https://i.ytimg.com/v4.jpg"),
	}

	records := Select(items, 180)

	assert.Equal(t, []Record{
		{ID: "v2", Title: "Full session", Thumbnail: "https://i.ytimg.com/v2.jpg"},
		{ID: "v3", Title: "Exactly three minutes", Thumbnail: "https://i.ytimg.com/v3.jpg"},
		{ID: "v4", Title: "Long talk", Thumbnail: "https://i.ytimg.com/v4.jpg"},
	}, records)
}

func TestSelect_Boundary(t *testing.T) {
	t.Run("exactly 180 seconds is kept", func(t *testing.T) {
		records := Select([]*youtube.Video{video("v1", "At the line", "PT3M", "t.jpg")}, 180)
		assert.Len(t, records, 1)
	})

	t.Run("179 seconds is dropped", func(t *testing.T) {
		records := Select([]*youtube.Video{video("v1", "Just short", "PT2M59S", "t.jpg")}, 180)
		assert.Empty(t, records)
	})

	t.Run("unparseable duration is dropped", func(t *testing.T) {
		records := Select([]*youtube.Video{video("v1", "No duration", "bogus", "t.jpg")}, 180)
		assert.Empty(t, records)
	})
}

func TestSelect_SkipsIncompleteRecords(t *testing.T) {
	noThumbnail := video("v2", "No thumbnail", "PT10M", "")
	noSnippet := &youtube.Video{
		Id:             "v3",
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT10M"},
	}
	noContentDetails := &youtube.Video{
		Id:      "v4",
		Snippet: &youtube.VideoSnippet{Title: "No details"},
	}

	items := []*youtube.Video{
		video("v1", "Complete", "PT10M", "https://i.ytimg.com/v1.jpg"),
		noThumbnail,
		noSnippet,
		noContentDetails,
	}

	records := Select(items, 180)

	assert.Equal(t, []Record{
		{ID: "v1", Title: "Complete", Thumbnail: "https://i.ytimg.com/v1.jpg"},
	}, records)
}

func TestSelect_Empty(t *testing.T) {
	records := Select(nil, 180)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
