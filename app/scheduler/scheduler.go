package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/ualireza82-tech/newswire/app/broadcast"
	"github.com/ualireza82-tech/newswire/app/cfg"
	"github.com/ualireza82-tech/newswire/app/dedup"
	"github.com/ualireza82-tech/newswire/app/feed"
	"github.com/ualireza82-tech/newswire/app/publisher"
)

// Fetcher retrieves raw entries for one source. The context carries the
// per-fetch timeout.
type Fetcher interface {
	Fetch(ctx context.Context, source feed.Source) ([]*gofeed.Item, error)
}

// Broadcaster delivers one event to the currently connected consumers,
// best-effort, no acknowledgment.
type Broadcaster interface {
	Publish(event string, data any)
}

// Status is the pull-based diagnostic view.
type Status struct {
	Publishers     int       `json:"publishers"`
	Sources        int       `json:"sources"`
	DedupSize      int       `json:"dedup_size"`
	LastCycleStart time.Time `json:"last_cycle_start"`
}

// Scheduler drives the polling pipeline: on a fixed interval it fetches
// every source concurrently, normalizes and deduplicates the newest
// items, routes them to publisher identities and broadcasts one payload
// per (item, identity) pair. Per-source failures are isolated.
type Scheduler struct {
	fetcher     Fetcher
	normalizer  *feed.Normalizer
	seen        *dedup.Cache
	directory   *publisher.Directory
	router      *publisher.Router
	composer    *publisher.Composer
	broadcaster Broadcaster
	sources     []feed.Source

	interval       time.Duration
	guardWindow    time.Duration
	startupDelay   time.Duration
	fetchTimeout   time.Duration
	itemsPerSource int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu             sync.Mutex
	lastCycleStart time.Time
}

func NewScheduler(fetcher Fetcher, normalizer *feed.Normalizer, seen *dedup.Cache,
	directory *publisher.Directory, broadcaster Broadcaster, sources []feed.Source) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		fetcher:        fetcher,
		normalizer:     normalizer,
		seen:           seen,
		directory:      directory,
		router:         publisher.NewRouter(directory),
		composer:       publisher.NewComposer(),
		broadcaster:    broadcaster,
		sources:        sources,
		interval:       time.Duration(cfg.PollInterval) * time.Second,
		guardWindow:    time.Duration(cfg.GuardWindow) * time.Second,
		startupDelay:   time.Duration(cfg.StartupDelay) * time.Second,
		fetchTimeout:   time.Duration(cfg.FetchTimeout) * time.Second,
		itemsPerSource: cfg.ItemsPerSource,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start launches the periodic timer and a single out-of-band startup
// cycle so the first scheduled tick is not the first content seen.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-s.ctx.Done():
			return
		case <-time.After(s.startupDelay):
		}
		s.runCycle()
	}()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.runCycle()
			}
		}
	}()

	slog.Info("Scheduler started", "sources", len(s.sources), "publishers", s.directory.Len(), "interval", s.interval)
}

// Stop cancels the timers. An in-flight cycle finishes naturally; its
// fetches are never force-cancelled.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

// Status reports counts for external diagnostic consumption.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		Publishers:     s.directory.Len(),
		Sources:        len(s.sources),
		DedupSize:      s.seen.Len(),
		LastCycleStart: s.lastCycleStart,
	}
}

// runCycle performs one full poll of all sources. The guard is a
// timestamp check, not a lock: it keeps back-to-back triggers apart but
// does not exclude a slow cycle overlapping the next one.
func (s *Scheduler) runCycle() {
	s.mu.Lock()
	if !s.lastCycleStart.IsZero() && time.Since(s.lastCycleStart) < s.guardWindow {
		s.mu.Unlock()
		slog.Debug("Cycle skipped, previous cycle started too recently")
		return
	}
	s.lastCycleStart = time.Now()
	s.mu.Unlock()

	start := time.Now()
	var wg sync.WaitGroup

	for _, source := range s.sources {
		wg.Add(1)
		go func(source feed.Source) {
			defer wg.Done()
			s.pollSource(source)
		}(source)
	}

	wg.Wait()
	slog.Info("Cycle completed", "sources", len(s.sources), "duration", time.Since(start), "dedup_size", s.seen.Len())
}

// pollSource fetches one source and pushes its newest items through the
// pipeline. Failures stay inside this source; siblings are unaffected.
// The fetch context derives from Background on purpose: stopping the
// scheduler leaves outstanding fetches to settle on their own timeout.
func (s *Scheduler) pollSource(source feed.Source) {
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	rawItems, err := s.fetcher.Fetch(ctx, source)
	if err != nil {
		slog.Warn("Source fetch failed", "source", source.URL, "error", err)
		return
	}

	count := min(len(rawItems), s.itemsPerSource)
	published := 0

	for _, raw := range rawItems[:count] {
		if s.processItem(raw, source) {
			published++
		}
	}

	slog.Debug("Source processed", "source", source.Label, "considered", count, "published", published)
}

// processItem runs normalize → dedup → route → compose → broadcast for
// one raw entry. Returns true when at least one payload was broadcast.
// The dedup insert happens only after a broadcast was attempted, so a
// failed path does not poison the cache against the next cycle.
func (s *Scheduler) processItem(raw *gofeed.Item, source feed.Source) bool {
	item, err := s.normalizer.Run(raw, source)
	if err != nil {
		slog.Debug("Item skipped", "source", source.Label, "error", err)
		return false
	}

	if s.seen.Has(item.Key) {
		return false
	}

	matched := s.router.Run(item.SearchText)
	if len(matched) == 0 {
		return false
	}

	tags := publisher.ExtractHashtags(item.FullTitle + " " + item.FullSummary)

	for _, identity := range matched {
		payload := s.composer.Run(item, identity, tags)
		s.broadcaster.Publish(broadcast.EventSyntheticPost, payload)
	}

	s.seen.Insert(item.Key)
	return true
}
