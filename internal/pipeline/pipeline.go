// Package pipeline sequences the run: validate configuration, list the
// channel's upload ids, fetch details in batches, filter, persist.
package pipeline

import (
	"context"

	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/config"
	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/output"
	youtubesvc "github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/services/youtube"
	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/utils"
	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/videos"
)

// State identifies where the pipeline is in its run.
type State string

const (
	StateInit             State = "init"
	StateValidatingConfig State = "validating_config"
	StateListingIds       State = "listing_ids"
	StateFetchingDetails  State = "fetching_details"
	StateFiltering        State = "filtering"
	StatePersisting       State = "persisting"
	StateDone             State = "done"
	StateAborted          State = "aborted"
)

// ClientFactory builds the API client once the configuration has been
// validated. Injected so tests can substitute a mock.
type ClientFactory func(ctx context.Context, cfg *config.Config) (youtubesvc.Client, error)

// Pipeline runs the fetch-filter-persist sequence exactly once.
type Pipeline struct {
	cfg       *config.Config
	newClient ClientFactory
	state     State
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config, newClient ClientFactory) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		newClient: newClient,
		state:     StateInit,
	}
}

// State returns the pipeline's current state.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the pipeline to completion. Every failure moves the
// pipeline to Aborted and is returned to the caller; nothing is retried
// and no partial output is written. An empty id list is an early
// success: the run finishes without touching the output file.
func (p *Pipeline) Run(ctx context.Context) error {
	p.transition(StateValidatingConfig)
	if err := p.cfg.Validate(); err != nil {
		return p.abort(err)
	}

	p.transition(StateListingIds)
	client, err := p.newClient(ctx, p.cfg)
	if err != nil {
		return p.abort(err)
	}

	ids, err := client.ListUploadIDs(ctx, p.cfg.ChannelID)
	if err != nil {
		return p.abort(err)
	}
	utils.LogInfo("Found %d uploaded videos", len(ids))

	if len(ids) == 0 {
		utils.LogWarning("No videos found - output file left untouched")
		p.transition(StateDone)
		return nil
	}

	p.transition(StateFetchingDetails)
	details, err := client.FetchDetails(ctx, ids)
	if err != nil {
		return p.abort(err)
	}

	p.transition(StateFiltering)
	records := videos.Select(details, p.cfg.Settings.MinSeconds)
	utils.LogInfo("Keeping %d of %d videos", len(records), len(details))

	p.transition(StatePersisting)
	if err := output.Write(p.cfg.Settings.OutputPath, records); err != nil {
		return p.abort(err)
	}

	p.transition(StateDone)
	utils.LogSuccess("Wrote %d videos to %s", len(records), p.cfg.Settings.OutputPath)
	return nil
}

func (p *Pipeline) transition(next State) {
	utils.LogVerbose("Pipeline state: %s -> %s", p.state, next)
	p.state = next
}

func (p *Pipeline) abort(err error) error {
	utils.LogError("Pipeline aborted in state %s: %v", p.state, err)
	p.state = StateAborted
	return err
}
