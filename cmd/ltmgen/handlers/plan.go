package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/imamik/ltmgen/internal/generator"
	"github.com/imamik/ltmgen/internal/tmsh"
	"github.com/imamik/ltmgen/internal/util/naming"
)

// PlanFormat selects how plan prints its result.
type PlanFormat string

// Supported plan formats.
const (
	PlanFormatText PlanFormat = "text"
	PlanFormatYAML PlanFormat = "yaml"
	PlanFormatJSON PlanFormat = "json"
)

// planDocument is the structured form of a plan.
type planDocument struct {
	Bundle      string                 `json:"bundle"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Counts      map[tmsh.Kind]int      `json:"counts"`
	Diagnostics []generator.Diagnostic `json:"diagnostics,omitempty"`
	Records     []tmsh.Record          `json:"records"`
}

// Plan prints what generate would produce for the document at configPath
// without touching the filesystem.
func Plan(_ context.Context, configPath string, format PlanFormat) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	result, err := generator.Generate(cfg, generator.WithLogger(logger), generator.WithClock(now))
	if err != nil {
		return err
	}

	if format == PlanFormatText || format == "" {
		fmt.Fprintln(stdout, result.Sequence.String())
		return nil
	}

	doc := planDocument{
		Bundle:      naming.Bundle(cfg.Metadata.LAC, cfg.Metadata.Name, cfg.Metadata.Partition),
		GeneratedAt: result.GeneratedAt,
		Counts:      result.Counts(),
		Diagnostics: result.Diagnostics,
		Records:     result.Sequence.Records(),
	}

	data, err := marshalPlan(doc, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

func marshalPlan(doc planDocument, format PlanFormat) ([]byte, error) {
	switch format {
	case PlanFormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode plan as YAML: %w", err)
		}
		return data, nil
	case PlanFormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode plan as JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
