package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the document name used when none is given.
const DefaultConfigFilename = "ltm_config.yaml"

// Load reads, validates and expands a document from a file.
func Load(path string) (*Config, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.Expand()
}

// LoadFromBytes validates and expands a document from bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	doc, err := LoadDocumentFromBytes(data)
	if err != nil {
		return nil, err
	}
	return doc.Expand()
}

// LoadDocument reads a document from a file without validating it.
func LoadDocument(path string) (*Document, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return parseDocument(data)
}

// LoadDocumentFromBytes parses a document without validating it.
func LoadDocumentFromBytes(data []byte) (*Document, error) {
	return parseDocument(data)
}

// parseDocument decodes YAML. Unknown keys are not an error; they are
// recorded in Document.UnknownFields so callers can report them.
func parseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	doc.UnknownFields = unknownFields(data)
	return &doc, nil
}

// unknownFields re-decodes data strictly. Once the lenient decode has
// succeeded, every remaining type error is an unknown key.
func unknownFields(data []byte) []string {
	var strict Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var typeErr *yaml.TypeError
	if err := dec.Decode(&strict); errors.As(err, &typeErr) {
		return typeErr.Errors
	}
	return nil
}

// SaveDocument writes a document to a file as YAML.
func SaveDocument(doc *Document, path string) error {
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MarshalDocument encodes a document with two-space indentation.
func MarshalDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}
