package cli

import (
	"cmp"
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/advent/pkg/days/day05"
	"github.com/matzehuels/advent/pkg/errors"
	graphio "github.com/matzehuels/advent/pkg/io"
	"github.com/matzehuels/advent/pkg/ordering"
	"github.com/matzehuels/advent/pkg/render"
)

// rulesOpts holds the command-line flags for the rules command.
type rulesOpts struct {
	output   string // .dot, .svg or .json file; empty prints DOT to stdout
	detailed bool   // add layer and rule counts to node labels
	update   int    // 1-based update whose relevant rules are drawn; 0 draws all
}

// rulesCommand creates the rules command, which draws the page ordering
// rules of a print queue input.
func (c *CLI) rulesCommand() *cobra.Command {
	var opts rulesOpts

	cmd := &cobra.Command{
		Use:   "rules [file]",
		Short: "Render print queue ordering rules as DOT or SVG",
		Long: `Render the page ordering rules of a print queue input (day 5) as a graph.

Pages are ranked by layer: a page sits one layer below the deepest page
that must precede it. Real inputs are cyclic as a whole and are drawn
unranked; --update N restricts the graph to the rules between the pages
of update N, which can always be ranked. Without --output the DOT source
is printed.

FILE is either a puzzle input or a rule graph exported with -o rules.json.`,
		Example: `  advent rules data/5.txt
  advent rules data/5.txt -o rules.svg --detailed
  advent rules data/5.txt --update 3 -o update3.svg
  advent rules data/5.txt -o rules.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRules(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot, .svg or .json)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show layer and rule counts")
	cmd.Flags().IntVarP(&opts.update, "update", "u", 0, "draw only the rules relevant to update N (1-based)")
	_ = cmd.RegisterFlagCompletionFunc("output", completeRuleOutput)

	return cmd
}

func (c *CLI) runRules(ctx context.Context, path string, opts rulesOpts) error {
	logger := loggerFromContext(ctx)

	ext := strings.ToLower(filepath.Ext(opts.output))
	if opts.output != "" {
		if err := errors.ValidateFormat(strings.TrimPrefix(ext, "."), []string{"dot", "svg", "json"}); err != nil {
			return err
		}
	}

	if opts.update < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--update must be positive, got %d", opts.update)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if opts.update != 0 {
			return errors.New(errors.ErrCodeInvalidInput, "--update needs a puzzle input, not a rule graph")
		}
		if err := errors.ValidateInputPath(path); err != nil {
			return err
		}
		rules, err := graphio.ImportJSON(path)
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "rule graph %s not found", path)
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "import %s", path)
		}
		logger.Debug("imported rules", "rules", rules.Len())
		return writeRules(ctx, c, rules, opts)
	}

	data, err := readInput(path)
	if err != nil {
		return err
	}
	in, err := day05.Parse(data)
	if err != nil {
		return err
	}
	logger.Debug("parsed rules", "rules", in.Rules.Len(), "updates", len(in.Updates))

	rules := in.Rules
	if opts.update != 0 {
		if opts.update > len(in.Updates) {
			return errors.New(errors.ErrCodeInvalidInput, "update %d out of range, input has %d", opts.update, len(in.Updates))
		}
		rules = rules.RelevantSubset(in.Updates[opts.update-1])
		logger.Debug("selected update", "update", opts.update, "rules", rules.Len())
	}
	return writeRules(ctx, c, rules, opts)
}

// writeRules renders rules to the output named in opts, or prints DOT when
// there is none.
func writeRules[T cmp.Ordered](ctx context.Context, c *CLI, rules *ordering.RuleSet[T], opts rulesOpts) error {
	logger := loggerFromContext(ctx)
	ext := strings.ToLower(filepath.Ext(opts.output))

	if ext == ".json" {
		if err := graphio.ExportJSON(rules, opts.output); err != nil {
			return err
		}
		printSuccess(c.errOut, "Wrote rule graph")
		printFile(c.errOut, opts.output)
		return nil
	}

	dot, err := render.ToDOT(rules, render.Options{Detailed: opts.detailed})
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := c.out.Write([]byte(dot))
		return err
	}

	out := []byte(dot)
	if ext == ".svg" {
		prog := newProgress(logger)
		if out, err = render.RenderSVG(ctx, dot); err != nil {
			return err
		}
		prog.done("Rendered SVG")
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return err
	}
	printSuccess(c.errOut, "Wrote rule graph")
	printFile(c.errOut, opts.output)
	return nil
}
