// Package cli holds the starlightctl commands: read-only views over the
// booking journal and the house diagram.
package cli

import (
	"context"
	"io"

	diagram "starlight/internal/domains/diagram/service"
	journal "starlight/internal/domains/journal/service"

	"github.com/spf13/cobra"
)

// Deps are the services a command reads from.
type Deps struct {
	Journal journal.Journal
	Diagram diagram.Diagram
}

// Loader builds Deps once flags are parsed.
type Loader func(ctx context.Context, opts Options) (Deps, error)

// Options are the persistent flags shared by every command.
type Options struct {
	Backend    string
	JournalDir string
}

// Build-time metadata reported by the version command.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func New(out io.Writer, load Loader) *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:           "starlightctl",
		Short:         "Inspect the Starlight booking journal and house diagram.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.Backend, "backend", "", "Journal backend: memory, diskv, redis, postgres or s3. Defaults to JOURNAL_BACKEND.")
	root.PersistentFlags().StringVar(&opts.JournalDir, "journal-dir", "", "Directory of a diskv journal, ~ is expanded.")

	addJournal(root, opts, load)
	addDiagram(root, opts, load)
	addVersion(root)

	return root
}
