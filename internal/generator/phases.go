package generator

import (
	"fmt"
	"strconv"

	"github.com/imamik/ltmgen/internal/config"
	"github.com/imamik/ltmgen/internal/tmsh"
	"github.com/imamik/ltmgen/internal/util/naming"
)

// Fixed virtual server settings.
const (
	VirtualServerMask     = "255.255.255.255"
	VirtualServerProtocol = "tcp"
	VirtualServerProfiles = "{ tcp }"
)

// DefaultPhases returns the phases in script order.
func DefaultPhases() []Phase {
	return []Phase{
		HeaderPhase{},
		PartitionPhase{},
		MonitorPhase{},
		ProfilePhase{},
		NodePhase{},
		PoolPhase{},
		VirtualServerPhase{},
		SavePhase{},
		TrailerPhase{},
	}
}

// HeaderPhase writes the interpreter line, a descriptive comment block,
// strict mode and the script variables.
type HeaderPhase struct{}

func (HeaderPhase) Name() string { return "header" }

func (HeaderPhase) Emit(ctx *Context) error {
	md := ctx.Config.Metadata
	ctx.Append(
		tmsh.Shebang("/bin/bash"),
		tmsh.Comment("Script generated automatically for F5 LTM configuration"),
		tmsh.Comment("Configuration: "+md.Name),
		tmsh.Comment("LAC: "+md.LAC),
		tmsh.Comment("Description: "+md.Description),
		tmsh.Comment("Generated at: "+ctx.Now.Format(TimestampLayout)),
		tmsh.Blank(),
		tmsh.Directive("set -e  # Stop on first error"),
		tmsh.Blank(),
		tmsh.Comment("Variables"),
		tmsh.Assign("PARTITION", md.Partition),
		tmsh.Assign("CONFIG_NAME", md.Name),
		tmsh.Blank(),
		tmsh.Comment("Connect to F5"),
		tmsh.EchoEnv("Connecting to F5: $F5_HOST"),
		tmsh.Blank(),
	)
	return nil
}

// PartitionPhase creates the partition unless it is the built-in one.
type PartitionPhase struct{}

func (PartitionPhase) Name() string { return "partition" }

func (PartitionPhase) Emit(ctx *Context) error {
	md := ctx.Config.Metadata
	if md.IsCommonPartition() {
		return nil
	}
	ctx.Append(
		tmsh.Comment("Create partition"),
		tmsh.Command(tmsh.KindPartition, "create", "auth partition", md.Partition).
			Guarded(fmt.Sprintf("Partition %s already exists", md.Partition)),
		tmsh.Blank(),
	)
	return nil
}

// MonitorPhase creates health monitors.
type MonitorPhase struct{}

func (MonitorPhase) Name() string { return "monitors" }

func (MonitorPhase) Emit(ctx *Context) error {
	if len(ctx.Config.Monitors) == 0 {
		return nil
	}
	ctx.Append(tmsh.Comment("Create Monitors"))
	for _, m := range ctx.Config.Monitors {
		opts := []tmsh.Option{
			tmsh.Opt("interval", strconv.Itoa(m.Interval)),
			tmsh.Opt("timeout", strconv.Itoa(m.Timeout)),
		}
		switch m.Type {
		case config.MonitorHTTP, config.MonitorHTTPS:
			opts = append(opts, tmsh.QuotedOpt("send", m.Send), tmsh.QuotedOpt("recv", m.Receive))
		case config.MonitorTCP:
		default:
			ctx.Warn(unsupported(tmsh.KindMonitor, m.Name, string(m.Type), config.SupportedMonitorTypes()))
			continue
		}
		ctx.Append(
			tmsh.Command(tmsh.KindMonitor, "create", "ltm monitor "+string(m.Type), naming.Object(ctx.Partition(), m.Name), opts...).
				Guarded(fmt.Sprintf("Monitor %s already exists", m.Name)),
			tmsh.Blank(),
		)
	}
	return nil
}

// ProfilePhase creates protocol profiles.
type ProfilePhase struct{}

func (ProfilePhase) Name() string { return "profiles" }

func (ProfilePhase) Emit(ctx *Context) error {
	if len(ctx.Config.Profiles) == 0 {
		return nil
	}
	ctx.Append(tmsh.Comment("Create Profiles"))
	for _, p := range ctx.Config.Profiles {
		switch p.Type {
		case config.ProfileHTTP, config.ProfileTCP:
		default:
			ctx.Warn(unsupported(tmsh.KindProfile, p.Name, string(p.Type), config.SupportedProfileTypes()))
			continue
		}
		var opts []tmsh.Option
		if p.Description != "" {
			opts = append(opts, tmsh.QuotedOpt("description", p.Description))
		}
		ctx.Append(
			tmsh.Command(tmsh.KindProfile, "create", "ltm profile "+string(p.Type), naming.Object(ctx.Partition(), p.Name), opts...).
				Guarded(fmt.Sprintf("Profile %s already exists", p.Name)),
			tmsh.Blank(),
		)
	}
	return nil
}

// NodePhase creates nodes.
type NodePhase struct{}

func (NodePhase) Name() string { return "nodes" }

func (NodePhase) Emit(ctx *Context) error {
	if len(ctx.Config.Nodes) == 0 {
		return nil
	}
	ctx.Append(tmsh.Comment("Create Nodes"))
	for _, n := range ctx.Config.Nodes {
		ctx.Append(
			tmsh.Command(tmsh.KindNode, "create", "ltm node", naming.Object(ctx.Partition(), n.Name),
				tmsh.Opt("address", n.Address)).
				Guarded(fmt.Sprintf("Node %s already exists", n.Name)),
			tmsh.Blank(),
		)
	}
	return nil
}

// PoolPhase creates each pool followed by its member attachments.
type PoolPhase struct{}

func (PoolPhase) Name() string { return "pools" }

func (PoolPhase) Emit(ctx *Context) error {
	if len(ctx.Config.Pools) == 0 {
		return nil
	}
	ctx.Append(tmsh.Comment("Create Pools"))
	for _, p := range ctx.Config.Pools {
		target := naming.Object(ctx.Partition(), p.Name)
		ctx.Append(
			tmsh.Command(tmsh.KindPool, "create", "ltm pool", target,
				tmsh.Opt("monitor", naming.Object(ctx.Partition(), p.Monitor))).
				Guarded(fmt.Sprintf("Pool %s already exists", p.Name)),
			tmsh.Blank(),
		)
		emitMembers(ctx, p, target)
	}
	return nil
}

func emitMembers(ctx *Context, p config.Pool, target string) {
	if len(p.Members) == 0 {
		return
	}
	ctx.Append(tmsh.Comment("Add members to pool " + p.Name))
	for _, name := range p.Members {
		addr, ok := ctx.Nodes.Resolve(name)
		if !ok {
			ctx.Warn(Diagnostic{
				Reason:  ReasonUnresolvedMember,
				Kind:    tmsh.KindPoolMember,
				Entity:  p.Name,
				Message: fmt.Sprintf("Node %s not found for pool %s", name, p.Name),
			})
			continue
		}
		member := naming.Member(addr)
		ctx.Append(
			tmsh.Command(tmsh.KindPoolMember, "modify", "ltm pool", target,
				tmsh.Opt("members add", "{ "+member+" }")).
				Guarded(fmt.Sprintf("Member %s already exists in pool %s", member, p.Name)),
			tmsh.Blank(),
		)
	}
}

// VirtualServerPhase creates virtual servers.
type VirtualServerPhase struct{}

func (VirtualServerPhase) Name() string { return "virtual-servers" }

func (VirtualServerPhase) Emit(ctx *Context) error {
	if len(ctx.Config.VirtualServers) == 0 {
		return nil
	}
	ctx.Append(tmsh.Comment("Create Virtual Servers"))
	for _, vs := range ctx.Config.VirtualServers {
		opts := []tmsh.Option{
			tmsh.Opt("destination", naming.Destination(vs.Destination, vs.Port)),
			tmsh.Opt("mask", VirtualServerMask),
			tmsh.Opt("ip-protocol", VirtualServerProtocol),
		}
		if vs.Pool != "" {
			opts = append(opts, tmsh.Opt("pool", naming.Object(ctx.Partition(), vs.Pool)))
		}
		opts = append(opts, tmsh.Opt("profiles add", VirtualServerProfiles))
		ctx.Append(
			tmsh.Command(tmsh.KindVirtualServer, "create", "ltm virtual", naming.Object(ctx.Partition(), vs.Name), opts...).
				Guarded(fmt.Sprintf("Virtual Server %s already exists", vs.Name)),
			tmsh.Blank(),
		)
	}
	return nil
}

// SavePhase persists the running configuration exactly once.
type SavePhase struct{}

func (SavePhase) Name() string { return "save" }

func (SavePhase) Emit(ctx *Context) error {
	ctx.Append(
		tmsh.Comment("Save configuration"),
		tmsh.Command(tmsh.KindSave, "save", "sys config", ""),
		tmsh.Blank(),
	)
	return nil
}

// TrailerPhase prints a success summary when the script completes.
type TrailerPhase struct{}

func (TrailerPhase) Name() string { return "trailer" }

func (TrailerPhase) Emit(ctx *Context) error {
	md := ctx.Config.Metadata
	ctx.Append(
		tmsh.Echo("F5 LTM configuration applied successfully!"),
		tmsh.Echo("Configuration: "+md.Name),
		tmsh.Echo("Partition: "+md.Partition),
	)
	if md.LAC != "" {
		ctx.Append(tmsh.Echo("LAC: " + md.LAC))
	}
	return nil
}

func unsupported[T ~string](kind tmsh.Kind, name, typ string, supported []T) Diagnostic {
	return Diagnostic{
		Reason:  ReasonUnsupportedType,
		Kind:    kind,
		Entity:  name,
		Message: fmt.Sprintf("%s %s has unsupported type %s (supported: %v), skipped", kind, name, typ, supported),
	}
}
