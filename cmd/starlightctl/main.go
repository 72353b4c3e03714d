package main

import (
	"context"
	"fmt"
	"os"
	"starlight/config"
	"starlight/infras/kafka"
	"starlight/infras/otel"
	"starlight/infras/storage"
	"starlight/internal/cli"
	diagramCatalog "starlight/internal/domains/diagram/catalog"
	diagram "starlight/internal/domains/diagram/service"
	"starlight/internal/domains/journal/repository"
	journal "starlight/internal/domains/journal/service"
	"starlight/shared/constant"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
)

func load(_ context.Context, opts cli.Options) (cli.Deps, error) {
	cfg := config.Get()

	if opts.Backend != "" {
		cfg.Journal.Backend = opts.Backend
	}

	if opts.JournalDir != "" {
		dir, err := homedir.Expand(opts.JournalDir)
		if err != nil {
			return cli.Deps{}, fmt.Errorf("failed to expand journal directory: %w", err)
		}

		cfg.Journal.Backend = constant.JournalBackendDiskv
		cfg.Journal.Diskv.BasePath = dir
	}

	ot := otel.New(cfg)

	store, err := storage.New(cfg, ot)
	if err != nil {
		return cli.Deps{}, err //nolint:wrapcheck
	}

	j := journal.New(repository.New(store, ot), kafka.New(cfg), cfg, ot)

	catalog, err := diagramCatalog.Default()
	if err != nil {
		return cli.Deps{}, err //nolint:wrapcheck
	}

	return cli.Deps{
		Journal: j,
		Diagram: diagram.New(j, catalog, cfg, ot),
	}, nil
}

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := cli.New(os.Stdout, load).ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
