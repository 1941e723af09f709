// Package app implements the application layer for msb.
package app

import (
	"context"
	"io"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader        ports.ProjectLoader
	fingerprinter ports.Fingerprinter
	reporter      ports.Reporter
	logger        ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	fingerprinter ports.Fingerprinter,
	reporter ports.Reporter,
	logger ports.Logger,
) *App {
	return &App{
		loader:        loader,
		fingerprinter: fingerprinter,
		reporter:      reporter,
		logger:        logger,
	}
}

// SetVerbose toggles debug logging.
func (a *App) SetVerbose(verbose bool) {
	a.logger.SetVerbose(verbose)
}

// Inspect loads every project in paths and writes a listing of the visible
// targets to w. Projects are loaded concurrently; the listing keeps the
// order of paths.
func (a *App) Inspect(ctx context.Context, paths []string, format string, w io.Writer) error {
	if len(paths) == 0 {
		return domain.ErrNoProjectsSpecified
	}

	summaries := make([]domain.ProjectSummary, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			project, err := a.loader.Load(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to load project"), "path", path)
			}

			summaries[i] = a.summarize(path, project)
			a.logger.Debug("project inspected", "path", path, "targets", len(summaries[i].Targets))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := a.reporter.Render(w, format, summaries); err != nil {
		return zerr.Wrap(err, "failed to render report")
	}
	return nil
}

func (a *App) summarize(path string, project *domain.Project) domain.ProjectSummary {
	s := domain.ProjectSummary{
		Path:           path,
		DefaultTargets: project.DefaultTargets(),
		Imports:        project.Imports(),
		Targets:        make([]domain.TargetSummary, 0, project.Targets().Count()),
	}
	for target := range project.Targets().All() {
		ts := target.Summarize()
		ts.Fingerprint = a.fingerprinter.Fingerprint(target)
		s.Targets = append(s.Targets, ts)
	}
	return s
}
