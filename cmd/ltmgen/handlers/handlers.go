// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/imamik/ltmgen/internal/config"
	"github.com/imamik/ltmgen/internal/logging"
)

// Shared factory variables - can be replaced in tests.
var (
	// stdout receives user-facing output.
	stdout io.Writer = os.Stdout

	// logger receives structured progress logs on stderr.
	logger = logging.New(os.Stderr, 0)

	// now is the generation clock.
	now = time.Now

	// loadDocument reads a configuration document from disk.
	loadDocument = config.LoadDocument
)

// SetVerbosity replaces the handler logger with one at the given verbosity.
func SetVerbosity(v int) {
	logger = logging.New(os.Stderr, v)
}

// loadConfig loads, validates and expands the document at path.
func loadConfig(path string) (*config.Config, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	for _, field := range doc.UnknownFields {
		logger.Info("ignoring unknown configuration key", "path", path, "detail", field)
	}

	cfg, err := doc.Expand()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
