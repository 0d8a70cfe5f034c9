package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
)

// SetVersion sets the values reported by --version; main injects them via ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// NewRootCommand builds the lviso command tree. Results go to out, logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "lviso",
		Short:        "lviso finds isomorphisms and subgraph matches between graphs",
		Long:         `lviso loads graphs from YAML documents and enumerates the vertex correspondences between them: full isomorphisms, subgraph monomorphisms or induced subgraph matches.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("lviso %s\ncommit: %s\n", version, commit))
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newExistsCmd())
	root.AddCommand(newGenCmd())

	return root
}

// Execute runs the CLI with os.Args against stdout/stderr.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}
