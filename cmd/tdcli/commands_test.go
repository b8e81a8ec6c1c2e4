package main

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdkit/tdkit/mansion"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func Test_RegisterCommands(t *testing.T) {
	ctx := mansion.NewContext(kingpin.New("tdcli", "test"))
	registerCommands(ctx)

	var names []string
	for name := range ctx.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"bridge",
		"call",
		"config check",
		"config init",
		"config show",
		"download",
		"execute",
		"journal list",
		"journal prune",
		"journal stats",
		"listen",
		"login",
		"schema",
		"version",
	}, names)
}
