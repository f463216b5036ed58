// Package generator turns an expanded configuration into the ordered tmsh
// command sequence of a provisioning script.
//
// Generation runs a fixed list of phases (header, partition, monitors,
// profiles, nodes, pools, virtual servers, save, trailer) against a shared
// [Context]. Each phase appends structured records to the context's
// sequence. Creation commands carry an "already exists" guard so the script
// can be re-run against an appliance that already holds the objects.
//
// Conditions that should not stop generation, such as a pool member naming an
// undeclared node or a monitor of an unsupported type, become [Diagnostic]
// values and a warning line in the script.
package generator
