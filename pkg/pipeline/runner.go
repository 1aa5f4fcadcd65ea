package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/advent/pkg/cache"
	"github.com/matzehuels/advent/pkg/observability"
	"github.com/matzehuels/advent/pkg/puzzle"
)

const answerKeyType = "answer"

// Runner solves puzzles with caching.
//
// The Runner is stateless except for its collaborators, so one Runner can
// serve several goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Hooks  observability.SolveHooks
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default. Hooks default
// to the globally registered solve hooks.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Hooks:  observability.Solve(),
	}
}

type cachedAnswer struct {
	Answer int `json:"answer"`
}

// Solve computes the answer to one part of day for input.
func (r *Runner) Solve(ctx context.Context, day puzzle.Day, part int, input string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	solver, err := day.Part(part)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Day:       day.Number,
		Title:     day.Title,
		Part:      part,
		InputHash: cache.Hash([]byte(input)),
	}
	key := r.Keyer.AnswerKey(day.Number, part, res.InputHash)
	logger := r.Logger.With("day", day.Number, "part", part)

	if !opts.NoCache && !opts.Refresh {
		if answer, ok := r.lookup(ctx, key); ok {
			res.Answer, res.Cached = answer, true
			logger.Debug("answer from cache")
			return res, nil
		}
	}

	r.hooks().OnSolveStart(ctx, day.Number, part)
	start := time.Now()
	answer, err := solver(input)
	res.Duration = time.Since(start)
	r.hooks().OnSolveComplete(ctx, day.Number, part, res.Duration, err)
	if err != nil {
		return nil, fmt.Errorf("day %d part %d: %w", day.Number, part, err)
	}
	res.Answer = answer
	logger.Info("solved", "duration", res.Duration)

	if !opts.NoCache {
		r.store(ctx, key, answer, opts.ttl())
	}
	return res, nil
}

// RunAll solves jobs in order. It stops at the first error or when ctx is
// cancelled between solves, returning the results gathered so far.
func (r *Runner) RunAll(ctx context.Context, jobs []Job, opts Options) ([]*Result, error) {
	results := make([]*Result, 0, len(jobs))
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.Solve(ctx, j.Day, j.Part, j.Input, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) lookup(ctx context.Context, key string) (int, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, answerKeyType)
		return 0, false
	}
	var entry cachedAnswer
	if err := json.Unmarshal(data, &entry); err != nil {
		observability.Cache().OnCacheMiss(ctx, answerKeyType)
		return 0, false
	}
	observability.Cache().OnCacheHit(ctx, answerKeyType)
	return entry.Answer, true
}

func (r *Runner) store(ctx context.Context, key string, answer int, ttl time.Duration) {
	data, err := json.Marshal(cachedAnswer{Answer: answer})
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, answerKeyType, len(data))
}

func (r *Runner) hooks() observability.SolveHooks {
	if r.Hooks == nil {
		return observability.NoopSolveHooks{}
	}
	return r.Hooks
}
