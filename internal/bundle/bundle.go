package bundle

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/imamik/ltmgen/internal/config"
	"github.com/imamik/ltmgen/internal/generator"
	"github.com/imamik/ltmgen/internal/util/naming"
)

//go:embed templates/readme.md.tmpl
var readmeTemplate string

var readmeTmpl = template.Must(template.New("readme").Parse(readmeTemplate))

// ErrInvalidName is returned when a bundle name cannot be used as a
// single directory name.
var ErrInvalidName = errors.New("invalid bundle name")

// Bundle is the pair of artifacts produced for one configuration.
type Bundle struct {
	Name   string
	Script []byte
	Readme []byte
}

// Files returns the artifacts keyed by file name, README first.
func (b *Bundle) Files() []File {
	return []File{
		{Name: naming.ReadmeFile, Data: b.Readme, Mode: 0o644, ContentType: "text/markdown; charset=utf-8"},
		{Name: naming.ScriptFile, Data: b.Script, Mode: 0o755, ContentType: "text/x-shellscript; charset=utf-8"},
	}
}

// File is a single bundle artifact.
type File struct {
	Name        string
	Data        []byte
	Mode        uint32
	ContentType string
}

type readmeData struct {
	ScriptPath  string
	Name        string
	Partition   string
	LAC         string
	GeneratedAt string
	Warnings    []string
}

// Build assembles the bundle for a configuration and its generation result.
func Build(meta config.Metadata, result *generator.Result) (*Bundle, error) {
	if result == nil || result.Sequence == nil {
		return nil, errors.New("generation result is required")
	}

	name := naming.Bundle(meta.LAC, meta.Name, meta.Partition)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data := readmeData{
		ScriptPath:  naming.ObjectKey(name, naming.ScriptFile),
		Name:        meta.Name,
		Partition:   meta.Partition,
		LAC:         meta.LAC,
		GeneratedAt: result.GeneratedAt.Format(generator.TimestampLayout),
	}
	for _, d := range result.Diagnostics {
		data.Warnings = append(data.Warnings, d.String())
	}

	var readme bytes.Buffer
	if err := readmeTmpl.Execute(&readme, data); err != nil {
		return nil, fmt.Errorf("failed to render README: %w", err)
	}

	script := strings.Join(result.Sequence.Lines(), "\n") + "\n"

	return &Bundle{
		Name:   name,
		Script: []byte(script),
		Readme: readme.Bytes(),
	}, nil
}

// ValidateName checks that name is usable as one path element.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}
