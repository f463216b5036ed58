package config

// Document mirrors the YAML layout of an LTM configuration file.
//
// Optional scalars are pointers so that an explicit zero can be told apart
// from an absent key. Use [Document.Expand] to obtain a usable [Config].
type Document struct {
	Metadata MetadataSpec `yaml:"metadata,omitempty"`
	Spec     SectionsSpec `yaml:"spec,omitempty"`

	// UnknownFields lists keys the loader did not recognize, one message
	// per key with its line number.
	UnknownFields []string `yaml:"-"`
}

// MetadataSpec is the metadata block of a document.
type MetadataSpec struct {
	Partition   string `yaml:"partition,omitempty"`
	Name        string `yaml:"name,omitempty"`
	LAC         string `yaml:"lac,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// SectionsSpec holds the entity lists of a document.
type SectionsSpec struct {
	Monitors       []MonitorSpec       `yaml:"monitors,omitempty"`
	Profiles       []ProfileSpec       `yaml:"profiles,omitempty"`
	Nodes          []NodeSpec          `yaml:"nodes,omitempty"`
	Pools          []PoolSpec          `yaml:"pools,omitempty"`
	VirtualServers []VirtualServerSpec `yaml:"virtual_servers,omitempty"`
}

// MonitorSpec is a monitor as written by the user.
type MonitorSpec struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type,omitempty"`
	Interval *int    `yaml:"interval,omitempty"`
	Timeout  *int    `yaml:"timeout,omitempty"`
	Send     *string `yaml:"send,omitempty"`
	Receive  *string `yaml:"receive,omitempty"`
}

// ProfileSpec is a profile as written by the user.
type ProfileSpec struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// NodeSpec is a node as written by the user.
type NodeSpec struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// PoolSpec is a pool as written by the user.
//
// Older documents list members under pool_members; both keys are accepted
// and members takes precedence when both are present.
type PoolSpec struct {
	Name        string   `yaml:"name"`
	Monitor     string   `yaml:"monitor,omitempty"`
	Members     []string `yaml:"members,omitempty"`
	PoolMembers []string `yaml:"pool_members,omitempty"`
}

// MemberNames returns the declared member list, honoring the legacy key.
func (p PoolSpec) MemberNames() []string {
	if p.Members != nil {
		return p.Members
	}
	return p.PoolMembers
}

// VirtualServerSpec is a virtual server as written by the user.
type VirtualServerSpec struct {
	Name        string `yaml:"name"`
	Destination string `yaml:"destination"`
	Port        *int   `yaml:"port"`
	Pool        string `yaml:"pool,omitempty"`
}
