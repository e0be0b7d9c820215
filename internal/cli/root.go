// Package cli provides the Cobra command structure for bioread.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/bioread/internal/configloader"
	"github.com/yaklabco/bioread/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root bioread command with all subcommands.
// The root command itself renders input, so `bioread README.md` works
// without naming a subcommand.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	flags := &readFlags{}

	rootCmd := &cobra.Command{
		Use:   "bioread [path ...]",
		Short: "Render text with fixation-point emphasis for faster reading",
		Long:  rootLongDescription(),
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addReadFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Flag parse failures are usage errors, not internal ones.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

func rootLongDescription() string {
	var b strings.Builder

	b.WriteString(`bioread renders text for faster reading by emphasizing the leading
letters of each word, guiding the eye from one fixation point to the next.

It reads files or standard input and writes to standard output by default.
Markdown input keeps its structure: code spans, code blocks, link targets,
and raw HTML pass through byte for byte while prose gets emphasis.

Examples:
  bioread README.md              Render a file to stdout
  bioread -f 2 notes.txt         Stronger emphasis
  bioread -e '**{}**' doc.md     Custom emphasis markers
  bioread -o out.md doc.md       Write output to a file
  cat article.txt | bioread      Stream from stdin

Environment:
`)

	envVars := configloader.ListEnvVars()
	names := make([]string, 0, len(envVars))
	for name := range envVars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&b, "  %-24s %s\n", name, envVars[name])
	}

	return strings.TrimRight(b.String(), "\n")
}
