package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Metadata
	Partition   string
	Name        string
	LAC         string
	Description string

	// Health checking and protocol handling
	MonitorType string
	ProfileType string

	// Backends
	Nodes []NodeEntry

	// Listener (optional)
	AddVirtualServer bool
	Destination      string
	Port             int
}

// NodeEntry is one backend entered as name=address.
type NodeEntry struct {
	Name    string
	Address string
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runMetadataGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}

	if err := runHealthGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("health checks: %w", err)
	}

	if err := runNodesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}

	if err := runVirtualServerGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("virtual server: %w", err)
	}

	return result, nil
}
