// Package resolver maps node names to addresses within one configuration.
package resolver

import "github.com/imamik/ltmgen/internal/config"

// NodeResolver looks up node addresses by exact name.
type NodeResolver struct {
	addrs map[string]string
}

// New indexes the given nodes. When a name is declared twice the first
// declaration wins.
func New(nodes []config.Node) *NodeResolver {
	addrs := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if _, seen := addrs[n.Name]; !seen {
			addrs[n.Name] = n.Address
		}
	}
	return &NodeResolver{addrs: addrs}
}

// Resolve returns the address of the named node and whether it exists.
func (r *NodeResolver) Resolve(name string) (string, bool) {
	addr, ok := r.addrs[name]
	return addr, ok
}

// Len returns the number of distinct node names.
func (r *NodeResolver) Len() int {
	return len(r.addrs)
}
