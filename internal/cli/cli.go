package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slicetree/pkg/buildinfo"
	"github.com/matzehuels/slicetree/pkg/errors"
	"github.com/matzehuels/slicetree/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "slicetree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent --verbose flag switches the logger to debug level.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Slicetree builds, perturbs and draws slicing floorplans",
		Long:         `Slicetree loads a floorplan plan file, builds its slicing tree, applies child swaps with incremental coordinate repair and checks the result against a full recomputation.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			c.Logger.Debug(buildinfo.String(), "command", cmd.CommandPath())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.swapCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// splitList parses a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if formats := splitList(s); len(formats) > 0 {
		return formats
	}
	return []string{pipeline.FormatSVG}
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. A known format
// extension on output is stripped as well.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	switch ext {
	case pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatDOT, pipeline.FormatJSON:
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

// writeArtifacts writes each artifact to base.<format> and returns the paths
// in format order.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base + "." + f
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Exit statuses returned by [ExitCode].
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitBadInput    = 2
	ExitInvariant   = 3
	ExitInterrupted = 130
)

// ExitCode maps the error returned by a command to a process exit status.
// Bad plans, paths and flags exit with 2 and floorplan invariant violations
// with 3, so scripts can tell a broken input from a broken tree.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.IsInvariant(err):
		return ExitInvariant
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPlan,
		errors.ErrCodeInvalidPath, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return ExitBadInput
	}
	return ExitFailure
}
