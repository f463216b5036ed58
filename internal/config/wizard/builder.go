package wizard

import "github.com/imamik/ltmgen/internal/config"

// BuildDocument creates a starter document from the wizard result: one
// monitor, one profile, the entered nodes in a single pool and, if
// requested, a virtual server in front of that pool.
func BuildDocument(result *Result) *config.Document {
	doc := &config.Document{
		Metadata: config.MetadataSpec{
			Partition:   result.Partition,
			Name:        result.Name,
			LAC:         result.LAC,
			Description: result.Description,
		},
	}

	monitorName := result.Name + "_" + result.MonitorType + "_monitor"
	doc.Spec.Monitors = []config.MonitorSpec{{
		Name: monitorName,
		Type: result.MonitorType,
	}}

	doc.Spec.Profiles = []config.ProfileSpec{{
		Name: result.Name + "_" + result.ProfileType + "_profile",
		Type: result.ProfileType,
	}}

	members := make([]string, 0, len(result.Nodes))
	for _, n := range result.Nodes {
		doc.Spec.Nodes = append(doc.Spec.Nodes, config.NodeSpec{Name: n.Name, Address: n.Address})
		members = append(members, n.Name)
	}

	poolName := result.Name + "_pool"
	doc.Spec.Pools = []config.PoolSpec{{
		Name:    poolName,
		Monitor: monitorName,
		Members: members,
	}}

	if result.AddVirtualServer {
		port := result.Port
		doc.Spec.VirtualServers = []config.VirtualServerSpec{{
			Name:        result.Name + "_vs",
			Destination: result.Destination,
			Port:        &port,
			Pool:        poolName,
		}}
	}

	return doc
}
