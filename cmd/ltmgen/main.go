// Package main is the entry point for the ltmgen CLI.
//
// ltmgen turns a declarative YAML description of F5 BIG-IP LTM objects
// (monitors, profiles, nodes, pools and virtual servers) into an idempotent
// bash script of tmsh commands, written as a bundle together with a README.
//
// Commands: generate, plan, validate, init.
//
// For detailed usage information, run:
//
//	ltmgen --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/ltmgen/cmd/ltmgen/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
