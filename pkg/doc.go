// Package pkg provides the libraries behind the advent puzzle runner.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Engine: [multimap] and [ordering], a multi-valued map and the
//     ordering rule engine built on it (validation, repair, layering)
//  2. Puzzles: [puzzle], [grid] and the per-day solvers under [days]
//  3. Infrastructure: [pipeline], [cache], [config], [errors],
//     [observability], [render], [io] and [buildinfo]
//
// # Architecture
//
// The typical data flow through a run:
//
//	puzzle input file
//	         ↓
//	    [days] registry (look up the day's solvers)
//	         ↓
//	    [pipeline] runner (hash input, consult [cache], solve)
//	         ↓
//	    text, JSON or YAML answers
//
// The print queue day additionally feeds its rules to [render], which lays
// them out by [ordering.Layers] and draws them with Graphviz.
//
// # Quick Start
//
// Repair an update that breaks the rules:
//
//	import "github.com/matzehuels/advent/pkg/ordering"
//
//	rules := ordering.NewRuleSet[int]()
//	rules.AddRule(97, 75)
//	rules.AddRule(75, 47)
//
//	fixed, err := ordering.Repair([]int{47, 75, 97}, rules)
//	// fixed == [97 75 47]
//
// Solve a registered day through the caching runner:
//
//	import (
//	    "github.com/matzehuels/advent/pkg/cache"
//	    "github.com/matzehuels/advent/pkg/days"
//	    "github.com/matzehuels/advent/pkg/pipeline"
//	)
//
//	day, _ := days.Registry().Lookup(5)
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Solve(ctx, day, 2, input, pipeline.Options{})
//
// [multimap]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/multimap
// [ordering]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/ordering
// [ordering.Layers]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/ordering#Layers
// [puzzle]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/puzzle
// [grid]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/grid
// [days]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/days
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/io
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/advent/pkg/buildinfo
package pkg
