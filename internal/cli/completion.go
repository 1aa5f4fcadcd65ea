package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/advent/pkg/config"
)

// shells maps a shell name to its completion script generator.
var shells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	names := slices.Sorted(maps.Keys(shells))

	return &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate shell completion scripts",
		Long: fmt.Sprintf(`Generate a completion script for %[1]s.

Day numbers, output formats and rule graph files complete as you type.

Load completions in the current shell:

  bash:        source <(%[1]s completion bash)
  zsh:         source <(%[1]s completion zsh)
  fish:        %[1]s completion fish | source
  powershell:  %[1]s completion powershell | Out-String | Invoke-Expression

To load them for every session, write the script to your shell's
completion directory, e.g. ~/.config/fish/completions/%[1]s.fish.`, appName),
		DisableFlagsInUseLine: true,
		ValidArgs:             names,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shells[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// completeDays suggests registered day numbers not already given, with
// their titles as descriptions.
func (c *CLI) completeDays(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	var out []cobra.Completion
	for _, d := range c.Registry.Days() {
		n := strconv.Itoa(d.Number)
		if slices.Contains(args, n) {
			continue
		}
		out = append(out, cobra.CompletionWithDesc(n, d.Title))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats suggests the output formats for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	return config.Formats, cobra.ShellCompDirectiveNoFileComp
}

// completeRuleOutput restricts --output completion to the writable extensions.
func completeRuleOutput(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	return []cobra.Completion{"dot", "svg", "json"}, cobra.ShellCompDirectiveFilterFileExt
}
