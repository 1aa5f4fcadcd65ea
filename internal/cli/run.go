package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/advent/pkg/config"
	"github.com/matzehuels/advent/pkg/errors"
	"github.com/matzehuels/advent/pkg/pipeline"
	"github.com/matzehuels/advent/pkg/puzzle"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	part    int    // 1 or 2; 0 solves every part
	input   string // input file, only with a single day
	noCache bool   // bypass the answer cache entirely
	refresh bool   // recompute and overwrite cached answers
	format  string // text, json or yaml; empty uses the config
}

// runCommand creates the run command for solving puzzle days.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve puzzle days",
		Long: `Solve one or more puzzle days. Without arguments every registered day is solved.

Inputs are read from the configured input directory (data/<day>.txt by default)
unless --input names a file, which requires exactly one day.`,
		Example: `  advent run 5
  advent run 1 2 3 --part 2
  advent run 5 --input sample.txt --no-cache
  advent run --format json`,
		ValidArgsFunction: c.completeDays,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := c.resolveDays(args)
			if err != nil {
				return err
			}
			return c.runDays(cmd.Context(), days, len(args) > 0, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.part, "part", "p", 0, "solve only this part (1 or 2)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file (single day only)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the answer cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached answers")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, json, yaml (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// resolveDays maps day arguments to registered days. No arguments selects
// every registered day.
func (c *CLI) resolveDays(args []string) ([]puzzle.Day, error) {
	if len(args) == 0 {
		return c.Registry.Days(), nil
	}
	days := make([]puzzle.Day, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDay, "day must be a number, got %q", arg)
		}
		if err := errors.ValidateDay(n); err != nil {
			return nil, err
		}
		d, err := c.Registry.Lookup(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// runDays solves days and writes the results. When explicit is false,
// days whose input file is missing are skipped with a warning.
func (c *CLI) runDays(ctx context.Context, days []puzzle.Day, explicit bool, opts runOpts) error {
	logger := loggerFromContext(ctx)

	format := opts.format
	if format == "" {
		format = c.Config.Format
	}
	if err := errors.ValidateFormat(format, config.Formats); err != nil {
		return err
	}
	if err := errors.ValidatePart(opts.part); err != nil {
		return err
	}
	if opts.input != "" && len(days) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "--input requires exactly one day, got %d", len(days))
	}

	var jobs []pipeline.Job
	for _, d := range days {
		path := opts.input
		if path == "" {
			path = c.Config.InputPath(d.Number)
		}
		input, err := readInput(path)
		if err != nil {
			if !explicit && opts.input == "" && errors.Is(err, errors.ErrCodeFileNotFound) {
				logger.Warn("skipping day without input", "day", d.Number, "path", path)
				continue
			}
			return err
		}
		for _, part := range partsOf(d, opts.part) {
			jobs = append(jobs, pipeline.Job{Day: d, Part: part, Input: input})
		}
	}
	if len(jobs) == 0 {
		return errors.New(errors.ErrCodeFileNotFound, "no puzzle inputs found in %s", c.Config.InputDir)
	}

	runner, err := c.newRunner(logger, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	var spinner *Spinner
	if c.interactive && !c.verbose {
		spinner = newSpinnerWithContext(ctx, c.errOut, fmt.Sprintf("Solving %d puzzles...", len(jobs)))
		spinner.Start()
	}
	results, err := runner.RunAll(ctx, jobs, pipeline.Options{
		NoCache: opts.noCache,
		Refresh: opts.refresh,
		TTL:     c.Config.CacheTTL.Duration,
	})
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Solve failed")
		}
		return err
	}
	msg := fmt.Sprintf("Solved %d puzzles", len(results))
	if spinner != nil {
		spinner.StopWithSuccess(msg)
	} else {
		prog.done(msg)
	}

	return writeResults(c.out, format, results)
}

// partsOf lists the parts to solve for d: just part when it is set, else all.
func partsOf(d puzzle.Day, part int) []int {
	if part != 0 {
		return []int{part}
	}
	parts := make([]int, len(d.Parts))
	for i := range parts {
		parts[i] = i + 1
	}
	return parts
}

// readInput reads a puzzle input file.
func readInput(path string) (string, error) {
	if err := errors.ValidateInputPath(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s not found", path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
