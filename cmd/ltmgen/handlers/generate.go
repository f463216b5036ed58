package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/ltmgen/internal/bundle"
	"github.com/imamik/ltmgen/internal/generator"
	"github.com/imamik/ltmgen/internal/metrics"
)

// GenerateOptions holds the generate command flags.
type GenerateOptions struct {
	ConfigPath    string
	OutputDir     string
	PublishBucket string
	MetricsFile   string
}

// Generate writes the configuration bundle for the document at
// opts.ConfigPath.
//
// The workflow is:
//  1. Load, validate and expand the document
//  2. Generate the command sequence
//  3. Write the bundle directory atomically (never overwriting)
//  4. Optionally publish the bundle to object storage
//  5. Optionally write Prometheus textfile metrics
//  6. Print a summary including any warnings
//
// Nothing is written when the document is invalid. Metrics are written even
// when publishing fails, so the failure is visible to node-exporter.
func Generate(ctx context.Context, opts GenerateOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	start := now()
	result, err := generator.Generate(cfg, generator.WithLogger(logger), generator.WithClock(now))
	if err != nil {
		return err
	}

	b, err := bundle.Build(cfg.Metadata, result)
	if err != nil {
		return err
	}

	dir, err := bundle.Write(opts.OutputDir, b)
	if err != nil {
		if errors.Is(err, bundle.ErrExists) {
			return fmt.Errorf("%w; remove it or change metadata.lac to generate a new bundle", err)
		}
		return err
	}
	logger.Info("bundle written", "path", dir)

	rec := metrics.NewRecorder()
	rec.RecordGeneration(b.Name, result, now().Sub(start))

	var keys []string
	var publishErr error
	if opts.PublishBucket != "" {
		keys, publishErr = publishBundle(ctx, opts.PublishBucket, b)
		rec.RecordUploads(b.Name, len(keys), publishErr)
	}

	if opts.MetricsFile != "" {
		if err := rec.WriteTextfile(opts.MetricsFile); err != nil {
			return err
		}
	}

	if publishErr != nil {
		return fmt.Errorf("bundle written to %s but publishing failed: %w", dir, publishErr)
	}

	fmt.Fprint(stdout, renderSummary(summary{
		Dir:         dir,
		Bucket:      opts.PublishBucket,
		Keys:        keys,
		Counts:      result.Counts(),
		Diagnostics: result.Diagnostics,
	}, useStyles()))

	return nil
}
