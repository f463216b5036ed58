package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/ltmgen/internal/config"
	"github.com/imamik/ltmgen/internal/generator"
	"github.com/imamik/ltmgen/internal/watch"
)

// ValidateOptions holds the validate command flags.
type ValidateOptions struct {
	ConfigPath string
	Watch      bool
	Debounce   time.Duration
}

// watchFile blocks re-running fn on changes. Replaced in tests.
var watchFile = func(ctx context.Context, path string, debounce time.Duration, fn func()) error {
	return watch.File(ctx, logger, path, debounce, fn)
}

// Validate checks the document at opts.ConfigPath. Without Watch it returns
// the validation error, if any. With Watch it reports every check and keeps
// running until ctx is cancelled.
func Validate(ctx context.Context, opts ValidateOptions) error {
	err := validateOnce(opts.ConfigPath)
	if !opts.Watch {
		return err
	}

	printValidation(opts.ConfigPath, err)
	fmt.Fprintf(stdout, "Watching %s for changes (Ctrl+C to stop)\n", opts.ConfigPath)

	return watchFile(ctx, opts.ConfigPath, opts.Debounce, func() {
		printValidation(opts.ConfigPath, validateOnce(opts.ConfigPath))
	})
}

// validateOnce loads the document and dry-runs generation. Diagnostics are
// printed but do not fail validation.
func validateOnce(path string) error {
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	result, err := generator.Generate(cfg, generator.WithClock(now))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s is valid: %s\n", path, describeConfig(cfg))
	fmt.Fprint(stdout, renderDiagnostics(result.Diagnostics, useStyles()))
	return nil
}

func printValidation(path string, err error) {
	if err != nil {
		fmt.Fprintf(stdout, "%s is invalid: %v\n", path, err)
	}
}

func describeConfig(cfg *config.Config) string {
	return fmt.Sprintf("%d monitor(s), %d profile(s), %d node(s), %d pool(s), %d virtual server(s)",
		len(cfg.Monitors), len(cfg.Profiles), len(cfg.Nodes), len(cfg.Pools), len(cfg.VirtualServers))
}
