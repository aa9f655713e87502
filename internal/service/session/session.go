package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/cuebot/internal/core"
	"github.com/sandevgo/cuebot/pkg/log"
)

type Config struct {
	TickInterval    time.Duration
	CoalesceDelay   time.Duration
	MinCallInterval time.Duration
	CallTimeout     time.Duration

	MaxSuggestions int
	CacheTTL       time.Duration
	CacheCapacity  int

	FingerprintSegments    int
	FingerprintSuggestions int
	PromptTokenBudget      int

	Keyword string
}

// Session owns everything with session lifetime: the history, the bounded
// suggestion list and the scheduling loop. The suggestion cache is shared
// process-wide and survives resets.
type Session struct {
	history   *History
	list      *SuggestionList
	scheduler *Scheduler
	keyword   *KeywordTrigger

	recognizer core.Recognizer
	archive    core.TranscriptRepository

	mu sync.Mutex
	id string
}

func New(
	cfg Config,
	reasoner core.Reasoner,
	recognizer core.Recognizer,
	archive core.TranscriptRepository,
) *Session {
	history := NewHistory()
	list := NewSuggestionList(cfg.MaxSuggestions)
	cache := NewCache(cfg.CacheTTL, cfg.CacheCapacity)

	scheduler := NewScheduler(SchedulerConfig{
		TickInterval:           cfg.TickInterval,
		CoalesceDelay:          cfg.CoalesceDelay,
		MinCallInterval:        cfg.MinCallInterval,
		CallTimeout:            cfg.CallTimeout,
		FingerprintSegments:    cfg.FingerprintSegments,
		FingerprintSuggestions: cfg.FingerprintSuggestions,
		PromptTokenBudget:      cfg.PromptTokenBudget,
	}, history, list, cache, reasoner)

	s := &Session{
		history:    history,
		list:       list,
		scheduler:  scheduler,
		recognizer: recognizer,
		archive:    archive,
		id:         uuid.NewString(),
	}
	if cfg.Keyword != "" {
		s.keyword = NewKeywordTrigger(cfg.Keyword)
	}

	scheduler.SetOnSuggestion(func(sug core.Suggestion) {
		s.archiveSuggestion(sug)
	})

	return s
}

// Start runs the scheduling loop until ctx is cancelled.
func (s *Session) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("session_id", s.ID()).Msg("starting analysis session")
	return s.scheduler.Run(ctx)
}

func (s *Session) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// HandleSegment ingests one finalized segment: append, archive, keyword
// check, scheduler notification. Recognition failures are isolated; they
// never affect transcript ingestion or the analysis flow.
func (s *Session) HandleSegment(ctx context.Context, seg core.Segment) {
	logger := log.FromCtx(ctx)

	if err := s.history.Append(seg); err != nil {
		logger.Warn().Err(err).Msg("dropping ill-formed segment")
		return
	}

	if s.archive != nil {
		if err := s.archive.AddSegment(ctx, s.ID(), seg); err != nil {
			logger.Error().Err(err).Msg("failed to archive segment")
		}
	}

	if s.keyword != nil && s.recognizer != nil && s.keyword.Detect(seg.Text) {
		logger.Info().Str("keyword", s.keyword.Keyword()).Msg("keyword detected, triggering recognition")
		go func() {
			if err := s.recognizer.Trigger(ctx); err != nil {
				logger.Error().Err(err).Msg("recognition trigger failed")
			}
		}()
	}

	s.scheduler.NotifySegment()
}

// SetPerson attaches partner context produced by the recognition flow.
func (s *Session) SetPerson(p *core.Person) {
	s.history.SetPerson(p)
}

// Reset ends the current session: the epoch is bumped first so any in-flight
// analysis result is discarded, then session state is cleared and a new
// session id is issued.
func (s *Session) Reset(ctx context.Context) {
	s.scheduler.Reset()
	s.history.Reset()
	s.list.Reset()

	s.mu.Lock()
	s.id = uuid.NewString()
	id := s.id
	s.mu.Unlock()

	log.FromCtx(ctx).Info().Str("session_id", id).Msg("session reset")
}

// Transcript returns a copy of the current session's segments in arrival
// order.
func (s *Session) Transcript() []core.Segment {
	return s.history.Snapshot(0).Segments
}

// Suggestions returns the retained suggestions, oldest to newest.
func (s *Session) Suggestions() []core.Suggestion {
	return s.list.Ordered()
}

func (s *Session) archiveSuggestion(sug core.Suggestion) {
	if s.archive == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.archive.AddSuggestion(ctx, s.ID(), sug); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to archive suggestion")
	}
}
