package videos

import (
	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/utils"

	"google.golang.org/api/youtube/v3"
)

// Record is the projection of a video that downstream consumers read
// from the output file.
type Record struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// Select keeps the videos whose duration is at least minSeconds and
// projects each survivor to a Record, preserving relative order. A video
// missing its snippet, content details, or medium thumbnail is skipped
// with a warning; an incomplete upstream record never aborts the run.
func Select(items []*youtube.Video, minSeconds int) []Record {
	records := make([]Record, 0, len(items))

	for _, item := range items {
		if item.ContentDetails == nil || item.Snippet == nil {
			utils.LogWarning("Skipping video %s: incomplete metadata", item.Id)
			continue
		}

		if DurationSeconds(item.ContentDetails.Duration) < minSeconds {
			continue
		}

		if item.Snippet.Thumbnails == nil || item.Snippet.Thumbnails.Medium == nil {
			utils.LogWarning("Skipping video %s: no medium thumbnail", item.Id)
			continue
		}

		records = append(records, Record{
			ID:        item.Id,
			Title:     item.Snippet.Title,
			Thumbnail: item.Snippet.Thumbnails.Medium.Url,
		})
	}

	return records
}
