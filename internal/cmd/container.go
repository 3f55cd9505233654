package cmd

import (
	"io"
	"log/slog"

	"github.com/samber/do"

	"jander/internal/config"
	"jander/internal/context"
	"jander/internal/diagnostics"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configPath string
	debug      bool
	format     string
	workers    int

	// set when the flag was given on the command line
	debugSet   bool
	formatSet  bool
	workersSet bool
}

// stderr is the destination of log output
type stderr struct {
	io.Writer
}

// newContainer wires configuration, logger and runner
func newContainer(flags *globalFlags, errOut io.Writer) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, flags)
	do.ProvideValue(injector, stderr{errOut})

	do.Provide(injector, provideConfig)
	do.Provide(injector, provideLogger)
	do.Provide(injector, provideRunner)

	return injector
}

// provideConfig loads the TOML file and applies command line overrides
func provideConfig(i *do.Injector) (*config.Config, error) {
	flags := do.MustInvoke[*globalFlags](i)

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.debugSet {
		cfg.Debug = flags.debug
	}
	if flags.formatSet {
		cfg.Output.Format = flags.format
	}
	if flags.workersSet {
		cfg.Workers = flags.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideLogger(i *do.Injector) (*slog.Logger, error) {
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return nil, err
	}
	out := do.MustInvoke[stderr](i)
	return context.NewLogger(out, cfg.Debug), nil
}

func provideRunner(i *do.Injector) (*Runner, error) {
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return nil, err
	}
	logger, err := do.Invoke[*slog.Logger](i)
	if err != nil {
		return nil, err
	}
	return NewRunner(cfg, logger), nil
}

// emitFiles writes the diagnostics of each file in order. With more than
// one file, each non-empty report is headed by the file path.
func emitFiles(w io.Writer, files []*context.SourceFile, format diagnostics.Format) error {
	for _, file := range files {
		if !file.HasErrors() {
			continue
		}
		if len(files) > 1 {
			if _, err := io.WriteString(w, file.Path+":\n"); err != nil {
				return err
			}
		}
		if err := file.EmitDiagnostics(w, format); err != nil {
			return err
		}
	}
	return nil
}
