// Package tmsh models a provisioning script for an F5 appliance as an ordered
// list of structured records.
//
// Generators append [Record] values to a [Sequence]; text is produced only by
// [Sequence.Lines]. A tmsh record renders as a command with one option per
// continuation line and an optional "already exists" guard on the last line,
// so re-running the script against a configured appliance does not abort it.
package tmsh
