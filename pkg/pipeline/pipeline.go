// Package pipeline runs puzzle solvers with answer caching.
//
// The CLI builds one Runner per invocation and hands it every (day, part)
// it needs solved. The Runner hashes the input, consults the answer cache,
// runs the solver on a miss and stores the new answer.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Solve(ctx, day, 2, input, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Answer)
//
// Run several jobs, stopping early if the context is cancelled:
//
//	results, err := runner.RunAll(ctx, jobs, opts)
package pipeline

import (
	"time"

	"github.com/matzehuels/advent/pkg/cache"
	"github.com/matzehuels/advent/pkg/puzzle"
)

// =============================================================================
// Options
// =============================================================================

// Options controls caching for a solve.
type Options struct {
	// NoCache skips both the cache lookup and the store.
	NoCache bool `json:"no_cache,omitempty"`
	// Refresh recomputes the answer and overwrites the cached one.
	Refresh bool `json:"refresh,omitempty"`
	// TTL is how long a stored answer lives. Zero uses cache.DefaultTTL.
	TTL time.Duration `json:"ttl,omitempty"`
}

func (o Options) ttl() time.Duration {
	if o.TTL <= 0 {
		return cache.DefaultTTL
	}
	return o.TTL
}

// =============================================================================
// Jobs and Results
// =============================================================================

// Job is one part of one day to solve against an input.
type Job struct {
	Day   puzzle.Day
	Part  int
	Input string
}

// Result is the outcome of a solve.
type Result struct {
	Day       int           `json:"day" yaml:"day"`
	Title     string        `json:"title" yaml:"title"`
	Part      int           `json:"part" yaml:"part"`
	Answer    int           `json:"answer" yaml:"answer"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration"`
	Cached    bool          `json:"cached" yaml:"cached"`
	InputHash string        `json:"input_hash" yaml:"input_hash"`
}
