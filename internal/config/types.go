package config

import "strings"

// MonitorType is the health-check protocol of a monitor.
type MonitorType string

const (
	// MonitorHTTP probes with an HTTP request and expects a matching response.
	MonitorHTTP MonitorType = "http"
	// MonitorHTTPS is MonitorHTTP over TLS.
	MonitorHTTPS MonitorType = "https"
	// MonitorTCP only checks that a TCP connection can be opened.
	MonitorTCP MonitorType = "tcp"
)

// SupportedMonitorTypes returns the monitor types the generator can emit.
func SupportedMonitorTypes() []MonitorType {
	return []MonitorType{MonitorHTTP, MonitorHTTPS, MonitorTCP}
}

// ParseMonitorType normalizes a user supplied type. Empty means http.
// Unknown values are kept (lower-cased) so they can be reported later.
func ParseMonitorType(s string) MonitorType {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MonitorHTTP
	}
	return MonitorType(s)
}

// IsSupported reports whether the generator has a command form for t.
func (t MonitorType) IsSupported() bool {
	switch t {
	case MonitorHTTP, MonitorHTTPS, MonitorTCP:
		return true
	default:
		return false
	}
}

// HasPayload reports whether monitors of this type carry send/recv strings.
func (t MonitorType) HasPayload() bool {
	return t == MonitorHTTP || t == MonitorHTTPS
}

// ProfileType is the protocol template of a profile.
type ProfileType string

const (
	// ProfileHTTP is an HTTP protocol profile.
	ProfileHTTP ProfileType = "http"
	// ProfileTCP is a TCP protocol profile.
	ProfileTCP ProfileType = "tcp"
)

// SupportedProfileTypes returns the profile types the generator can emit.
func SupportedProfileTypes() []ProfileType {
	return []ProfileType{ProfileHTTP, ProfileTCP}
}

// ParseProfileType normalizes a user supplied type. Empty means http.
func ParseProfileType(s string) ProfileType {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ProfileHTTP
	}
	return ProfileType(s)
}

// IsSupported reports whether the generator has a command form for t.
func (t ProfileType) IsSupported() bool {
	switch t {
	case ProfileHTTP, ProfileTCP:
		return true
	default:
		return false
	}
}

// Config is the expanded, defaulted model. It is built once by
// [Document.Expand] and must not be modified afterwards.
type Config struct {
	Metadata       Metadata
	Monitors       []Monitor
	Profiles       []Profile
	Nodes          []Node
	Pools          []Pool
	VirtualServers []VirtualServer
}

// Metadata identifies the configuration and the partition it lives in.
type Metadata struct {
	Partition   string
	Name        string
	LAC         string
	Description string
}

// Monitor is a health-check definition.
type Monitor struct {
	Name     string
	Type     MonitorType
	Interval int
	Timeout  int
	Send     string
	Receive  string
}

// Profile is a protocol-behavior template.
type Profile struct {
	Name        string
	Type        ProfileType
	Description string
}

// Node is a named backend address.
type Node struct {
	Name    string
	Address string
}

// Pool groups nodes behind a monitor. Members are node names.
type Pool struct {
	Name    string
	Monitor string
	Members []string
}

// VirtualServer is a listener forwarding to an optional pool.
type VirtualServer struct {
	Name        string
	Destination string
	Port        int
	Pool        string
}

// IsCommonPartition reports whether the configuration targets the
// appliance's built-in partition, which never needs to be created.
func (m Metadata) IsCommonPartition() bool {
	return m.Partition == DefaultPartition
}
