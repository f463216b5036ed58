package config

import (
	"fmt"
	"slices"
)

// Expand validates the document and returns the defaulted [Config].
// The document itself is left untouched.
func (d *Document) Expand() (*Config, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg := &Config{
		Metadata:       expandMetadata(d.Metadata),
		Monitors:       make([]Monitor, 0, len(d.Spec.Monitors)),
		Profiles:       make([]Profile, 0, len(d.Spec.Profiles)),
		Nodes:          make([]Node, 0, len(d.Spec.Nodes)),
		Pools:          make([]Pool, 0, len(d.Spec.Pools)),
		VirtualServers: make([]VirtualServer, 0, len(d.Spec.VirtualServers)),
	}

	for _, m := range d.Spec.Monitors {
		cfg.Monitors = append(cfg.Monitors, expandMonitor(m))
	}
	for _, p := range d.Spec.Profiles {
		cfg.Profiles = append(cfg.Profiles, Profile{
			Name:        p.Name,
			Type:        ParseProfileType(p.Type),
			Description: p.Description,
		})
	}
	for _, n := range d.Spec.Nodes {
		cfg.Nodes = append(cfg.Nodes, Node{Name: n.Name, Address: n.Address})
	}
	for _, p := range d.Spec.Pools {
		cfg.Pools = append(cfg.Pools, expandPool(p))
	}
	for _, vs := range d.Spec.VirtualServers {
		cfg.VirtualServers = append(cfg.VirtualServers, VirtualServer{
			Name:        vs.Name,
			Destination: vs.Destination,
			Port:        *vs.Port,
			Pool:        vs.Pool,
		})
	}

	return cfg, nil
}

func expandMetadata(m MetadataSpec) Metadata {
	out := Metadata{
		Partition:   m.Partition,
		Name:        m.Name,
		LAC:         m.LAC,
		Description: m.Description,
	}
	if out.Partition == "" {
		out.Partition = DefaultPartition
	}
	if out.Name == "" {
		out.Name = DefaultConfigName
	}
	return out
}

func expandMonitor(m MonitorSpec) Monitor {
	out := Monitor{
		Name:     m.Name,
		Type:     ParseMonitorType(m.Type),
		Interval: valueOr(m.Interval, DefaultMonitorInterval),
		Timeout:  valueOr(m.Timeout, DefaultMonitorTimeout),
	}
	// send/recv only mean something for request/response monitors.
	if out.Type.HasPayload() {
		out.Send = valueOr(m.Send, DefaultMonitorSend)
		out.Receive = valueOr(m.Receive, DefaultMonitorReceive)
	}
	return out
}

func expandPool(p PoolSpec) Pool {
	out := Pool{
		Name:    p.Name,
		Monitor: p.Monitor,
		Members: slices.Clone(p.MemberNames()),
	}
	if out.Monitor == "" {
		out.Monitor = DefaultPoolMonitor
	}
	if out.Members == nil {
		out.Members = []string{}
	}
	return out
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
