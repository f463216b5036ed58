package testing

import (
	"slices"

	"github.com/imamik/ltmgen/internal/config"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder creates a builder for an empty configuration in the
// Common partition.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: config.Config{
			Metadata: config.Metadata{
				Partition: config.DefaultPartition,
				Name:      config.DefaultConfigName,
			},
			Monitors:       []config.Monitor{},
			Profiles:       []config.Profile{},
			Nodes:          []config.Node{},
			Pools:          []config.Pool{},
			VirtualServers: []config.VirtualServer{},
		},
	}
}

// WithMetadata sets the bundle identity.
func (b *ConfigBuilder) WithMetadata(lac, name, partition string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Metadata.LAC = lac
	nb.cfg.Metadata.Name = name
	nb.cfg.Metadata.Partition = partition
	return nb
}

// WithDescription sets the metadata description.
func (b *ConfigBuilder) WithDescription(desc string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Metadata.Description = desc
	return nb
}

// WithMonitor adds a monitor with default timing and payload.
func (b *ConfigBuilder) WithMonitor(name string, typ config.MonitorType) *ConfigBuilder {
	nb := b.clone()
	m := config.Monitor{
		Name:     name,
		Type:     typ,
		Interval: config.DefaultMonitorInterval,
		Timeout:  config.DefaultMonitorTimeout,
	}
	if typ.HasPayload() {
		m.Send = config.DefaultMonitorSend
		m.Receive = config.DefaultMonitorReceive
	}
	nb.cfg.Monitors = append(nb.cfg.Monitors, m)
	return nb
}

// WithProfile adds a profile.
func (b *ConfigBuilder) WithProfile(name string, typ config.ProfileType, desc string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Profiles = append(nb.cfg.Profiles, config.Profile{Name: name, Type: typ, Description: desc})
	return nb
}

// WithNode adds a node.
func (b *ConfigBuilder) WithNode(name, address string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Nodes = append(nb.cfg.Nodes, config.Node{Name: name, Address: address})
	return nb
}

// WithPool adds a pool with the given member node names. An empty monitor
// gets the default gateway monitor.
func (b *ConfigBuilder) WithPool(name, monitor string, members ...string) *ConfigBuilder {
	nb := b.clone()
	if monitor == "" {
		monitor = config.DefaultPoolMonitor
	}
	nb.cfg.Pools = append(nb.cfg.Pools, config.Pool{Name: name, Monitor: monitor, Members: append([]string{}, members...)})
	return nb
}

// WithVirtualServer adds a virtual server; pool may be empty.
func (b *ConfigBuilder) WithVirtualServer(name, destination string, port int, pool string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.VirtualServers = append(nb.cfg.VirtualServers, config.VirtualServer{
		Name:        name,
		Destination: destination,
		Port:        port,
		Pool:        pool,
	})
	return nb
}

// Build returns the constructed config.
func (b *ConfigBuilder) Build() *config.Config {
	return &b.clone().cfg
}

// clone creates a deep copy of the builder for immutability.
func (b *ConfigBuilder) clone() *ConfigBuilder {
	newCfg := b.cfg
	newCfg.Monitors = slices.Clone(b.cfg.Monitors)
	newCfg.Profiles = slices.Clone(b.cfg.Profiles)
	newCfg.Nodes = slices.Clone(b.cfg.Nodes)
	newCfg.VirtualServers = slices.Clone(b.cfg.VirtualServers)
	newCfg.Pools = make([]config.Pool, len(b.cfg.Pools))
	for i, p := range b.cfg.Pools {
		p.Members = slices.Clone(p.Members)
		newCfg.Pools[i] = p
	}
	return &ConfigBuilder{cfg: newCfg}
}

// EndToEndConfig is the expanded form of EndToEndDocument.
func EndToEndConfig() *config.Config {
	return NewConfigBuilder().
		WithMetadata("L1", "web", "Common").
		WithNode("n1", "10.0.0.1").
		WithPool("p1", config.DefaultPoolMonitor, "n1").
		WithVirtualServer("vs1", "10.0.0.100", 443, "p1").
		Build()
}

// WarningConfig produces one diagnostic of each kind: an unsupported
// monitor type and an unresolved pool member.
func WarningConfig() *config.Config {
	return NewConfigBuilder().
		WithMetadata("", "api", "Tenant_A").
		WithMonitor("udp_mon", config.MonitorType("udp")).
		WithPool("p1", config.DefaultPoolMonitor, "ghost").
		Build()
}
