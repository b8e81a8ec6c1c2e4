package main

import (
	"github.com/tdkit/tdkit/cmd/bridge"
	"github.com/tdkit/tdkit/cmd/call"
	"github.com/tdkit/tdkit/cmd/config"
	"github.com/tdkit/tdkit/cmd/download"
	"github.com/tdkit/tdkit/cmd/execute"
	"github.com/tdkit/tdkit/cmd/journal"
	"github.com/tdkit/tdkit/cmd/listen"
	"github.com/tdkit/tdkit/cmd/login"
	"github.com/tdkit/tdkit/cmd/schema"
	"github.com/tdkit/tdkit/cmd/version"
	"github.com/tdkit/tdkit/mansion"
)

// Each of these specify their own arguments and flags in
// their own package.
func registerCommands(ctx *mansion.Context) {
	// documented commands

	login.Register(ctx)
	call.Register(ctx)
	execute.Register(ctx)
	listen.Register(ctx)
	download.Register(ctx)

	schema.Register(ctx)
	config.Register(ctx)
	version.Register(ctx)

	// advanced commands

	journal.Register(ctx)
	bridge.Register(ctx)
}
