package ranking

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/internship-matcher/internal/logging"
	"github.com/jonathan/internship-matcher/internal/types"
)

// Engine ranks listings for candidates and adapts its weights from feedback.
// It is safe for concurrent use.
type Engine struct {
	cfg      Config
	scorer   *Scorer
	listings ListingProvider
	profiles ProfileProvider
	logger   *logging.Logger

	weights atomic.Pointer[types.Weights]

	mu       sync.Mutex
	feedback []types.FeedbackEvent

	lastVocabularySize atomic.Int64

	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithProfileProvider sets the source of the current profile used when a
// request carries none.
func WithProfileProvider(p ProfileProvider) Option {
	return func(e *Engine) { e.profiles = p }
}

// WithLogger sets the engine logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides the feedback ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// NewEngine creates an engine over the given listing provider.
func NewEngine(listings ListingProvider, cfg Config, opts ...Option) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:      cfg,
		scorer:   NewScorer(cfg),
		listings: listings,
		logger:   logging.NewNop(),
		feedback: make([]types.FeedbackEvent, 0),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	w := cfg.Weights
	e.weights.Store(&w)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Weights returns a snapshot of the current weights.
func (e *Engine) Weights() types.Weights {
	return *e.weights.Load()
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Score scores one listing with the current weights. The corpus supplies IDF
// contrast; when it is empty only the listing itself is used.
func (e *Engine) Score(profile *types.CandidateProfile, listing *types.Listing, corpus []types.Listing) types.ScoreResult {
	if profile == nil || listing == nil {
		return e.scorer.Score(profile, listing, nil, e.Weights())
	}
	var batch *Batch
	if len(corpus) > 0 {
		batch = NewBatch(profile, corpus)
	}
	return e.scorer.Score(profile, listing, batch, e.Weights())
}
