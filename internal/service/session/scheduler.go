package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/cuebot/internal/core"
	"github.com/sandevgo/cuebot/pkg/log"
)

// snapshotLimit bounds how much history one reasoning call can see before
// the token budget trims it further.
const snapshotLimit = 12

type SchedulerConfig struct {
	TickInterval    time.Duration
	CoalesceDelay   time.Duration
	MinCallInterval time.Duration
	CallTimeout     time.Duration

	FingerprintSegments    int
	FingerprintSuggestions int
	PromptTokenBudget      int
}

// Scheduler decides when to call the reasoning provider, what context to
// send, and how to merge results back while segments keep arriving. It is a
// two-state machine: idle, or exactly one call pending. Triggers that arrive
// while a call is pending are rejected, not queued.
type Scheduler struct {
	cfg      SchedulerConfig
	history  *History
	list     *SuggestionList
	cache    *Cache
	reasoner core.Reasoner

	// onSuggestion, when set, observes every appended suggestion. Used by
	// the session for archiving.
	onSuggestion func(core.Suggestion)

	nowFn func() time.Time

	mu       sync.Mutex
	inFlight bool
	lastCall time.Time
	epoch    uint64

	notify chan struct{}
}

func NewScheduler(
	cfg SchedulerConfig,
	history *History,
	list *SuggestionList,
	cache *Cache,
	reasoner core.Reasoner,
) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		history:  history,
		list:     list,
		cache:    cache,
		reasoner: reasoner,
		nowFn:    time.Now,
		notify:   make(chan struct{}, 1),
	}
}

func (s *Scheduler) SetOnSuggestion(fn func(core.Suggestion)) {
	s.onSuggestion = fn
}

// NotifySegment signals that a new segment was appended. Never blocks;
// notifications collapse into the pending coalescing window.
func (s *Scheduler) NotifySegment() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Reset bumps the session epoch so an in-flight call completes against its
// captured snapshot but has its result discarded. The rate-limit floor is
// cleared so a fresh session is not throttled by the previous one.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.lastCall = time.Time{}
}

// Run owns the scheduling timeline: one periodic tick plus a coalesced
// new-segment trigger, both funneling into the same eligibility check. It
// returns when ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	var coalesce *time.Timer
	var coalesceC <-chan time.Time
	defer func() {
		if coalesce != nil {
			coalesce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.maybeAnalyze(ctx)
		case <-s.notify:
			// First segment of a burst arms the window; the rest of the
			// burst rides along so rapid segments become one call.
			if coalesceC == nil {
				coalesce = time.NewTimer(s.cfg.CoalesceDelay)
				coalesceC = coalesce.C
			}
		case <-coalesceC:
			coalesceC = nil
			s.maybeAnalyze(ctx)
		}
	}
}

// maybeAnalyze evaluates the eligibility predicate and, when it holds,
// either serves a cached suggestion or dispatches one reasoning call.
func (s *Scheduler) maybeAnalyze(ctx context.Context) {
	logger := log.FromCtx(ctx)
	now := s.nowFn()

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return
	}
	if !s.lastCall.IsZero() && now.Sub(s.lastCall) < s.cfg.MinCallInterval {
		s.mu.Unlock()
		return
	}
	epoch := s.epoch
	s.mu.Unlock()

	snap := s.history.Snapshot(snapshotLimit)
	if len(snap.Segments) == 0 || !snap.HasUnanalyzed() {
		return
	}

	prior := s.list.Texts(s.cfg.FingerprintSuggestions)
	fp := Fingerprint(snap.Segments, prior, s.cfg.FingerprintSegments, s.cfg.FingerprintSuggestions)

	if text, ok := s.cache.Get(fp); ok {
		// Cache hit bypasses the external call entirely but still counts as
		// an analysis round for rate limiting and change detection.
		s.mu.Lock()
		if epoch != s.epoch {
			s.mu.Unlock()
			return
		}
		s.lastCall = now
		s.mu.Unlock()
		s.applySuggestion(text, snap.NewestTime())
		logger.Debug().Msg("suggestion served from cache")
		return
	}

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.lastCall = now
	s.mu.Unlock()

	go s.dispatch(ctx, snap, prior, fp, epoch)
}

func (s *Scheduler) dispatch(ctx context.Context, snap Snapshot, prior []string, fp string, epoch uint64) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	messages := BuildPrompt(snap, prior, s.cfg.PromptTokenBudget)

	resp, err := s.reasoner.Chat(callCtx, messages)
	var text string
	if err == nil {
		text, err = extractSuggestionText(resp)
	}

	s.complete(ctx, fp, text, snap.NewestTime(), epoch, err)
}

func (s *Scheduler) complete(ctx context.Context, fp, text string, analyzed time.Time, epoch uint64, err error) {
	logger := log.FromCtx(ctx)

	s.mu.Lock()
	stale := epoch != s.epoch
	s.inFlight = false
	s.mu.Unlock()

	if stale {
		logger.Debug().Msg("discarding analysis result from a previous session")
		return
	}
	if err != nil {
		// Best-effort: the watermark stays put so the same content is
		// retried on the next eligible trigger.
		logger.Warn().Err(err).Msg("analysis call failed")
		return
	}

	s.cache.Put(fp, text)
	s.applySuggestion(text, analyzed)
}

func (s *Scheduler) applySuggestion(text string, analyzed time.Time) {
	sug := core.Suggestion{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: s.nowFn(),
	}
	s.list.Append(sug)
	s.history.MarkAnalyzed(analyzed)
	if s.onSuggestion != nil {
		s.onSuggestion(sug)
	}
}

// extractSuggestionText pulls the suggestion out of a provider response.
// Some providers leave Content empty and put the text into Reasoning; both
// locations are accepted, anything else is malformed.
func extractSuggestionText(msg core.Message) (string, error) {
	if text := strings.TrimSpace(msg.Content); text != "" {
		return text, nil
	}
	if text := strings.TrimSpace(msg.Reasoning); text != "" {
		return text, nil
	}
	return "", ErrMalformedResponse
}
