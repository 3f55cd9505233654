package cmd

import (
	"fmt"
	"log/slog"
	"sync"

	"jander/internal/config"
	"jander/internal/context"
)

// Runner processes source files with a bounded number of workers
type Runner struct {
	options *context.CompilerOptions
	logger  *slog.Logger
}

// NewRunner creates a runner from the loaded configuration
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		options: context.OptionsFromConfig(cfg),
		logger:  logger,
	}
}

// Options returns the options each compilation session is created with
func (r *Runner) Options() *context.CompilerOptions {
	return r.options
}

// Run lexes, parses and analyzes every path in parallel. Files come back
// in argument order. An unreadable file aborts the run.
func (r *Runner) Run(paths []string) (*context.CompilerContext, []*context.SourceFile, error) {
	ctx := context.New(r.options, r.logger)

	workers := r.options.Workers
	if workers < 1 {
		workers = 1
	}

	r.logger.Debug("processing files", "count", len(paths), "workers", workers)

	files := make([]*context.SourceFile, len(paths))
	errorChan := make(chan error, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	// a repeated path is processed once and shares its result
	first := make(map[string]int, len(paths))

	for i, path := range paths {
		if _, seen := first[path]; seen {
			continue
		}
		first[path] = i

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			file, err := ctx.LoadFile(path)
			if err != nil {
				errorChan <- err
				return
			}
			ctx.ProcessFile(file)
			files[i] = file
		}(i, path)
	}

	// Wait for all to complete
	wg.Wait()
	close(errorChan)

	for err := range errorChan {
		if err != nil {
			return ctx, nil, fmt.Errorf("check failed: %w", err)
		}
	}

	for i, path := range paths {
		files[i] = files[first[path]]
	}

	r.logger.Debug("processed files", "count", len(files))
	return ctx, files, nil
}
