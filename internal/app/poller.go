package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ronesse/volley-score-v2/internal/feed"
	"github.com/ronesse/volley-score-v2/internal/roster"
	"github.com/ronesse/volley-score-v2/internal/state"
)

const (
	defaultPollInterval   = 10 * time.Second
	defaultRosterInterval = 10 * time.Minute
)

// StartLivePoller launches the background goroutine that polls the live feed
// at a fixed cadence. It returns immediately.
//
// Each cycle runs under its own child context. When a new tick fires while
// the previous cycle is still in flight (a stalled request on a flaky link),
// the old cycle is cancelled first; a cancelled cycle never reaches the
// store, so a stale response cannot overwrite a newer one.
func StartLivePoller(ctx context.Context, store *state.Store, client feed.Fetcher, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		var cancelPrev context.CancelFunc
		defer func() {
			if cancelPrev != nil {
				cancelPrev()
			}
		}()

		timer := time.NewTimer(0) // first cycle immediately
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if cancelPrev != nil {
				cancelPrev()
			}
			cctx, cancel := context.WithCancel(ctx)
			cancelPrev = cancel
			go runLiveCycle(cctx, store, client)

			// A failed cycle retries at the same cadence; the store tracks
			// consecutive misses for the offline indicator instead.
			timer.Reset(interval)
		}
	}()
}

// runLiveCycle performs one fetch-and-reconcile pass.
func runLiveCycle(ctx context.Context, store *state.Store, client feed.Fetcher) {
	matches, err := client.FetchLive(ctx)
	if ctx.Err() != nil {
		// Superseded by a newer cycle or shutting down. Whatever came back,
		// even a success, is stale.
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	store.UpdateLive(matches, err)
	if err != nil {
		log.Printf("live poll failed: %v", err)
	}
}

// StartRosterPoller launches the slow-cadence roster refresh. The roster
// changes rarely, so one failed fetch just leaves the previous roster in
// place until the next round.
func StartRosterPoller(ctx context.Context, store *state.Store, client roster.Fetcher, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRosterInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			teams, err := client.FetchTeams(ctx)
			if ctx.Err() != nil {
				return
			}
			if !errors.Is(err, context.Canceled) {
				store.UpdateRoster(teams, err)
				if err != nil {
					log.Printf("roster poll failed: %v", err)
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
