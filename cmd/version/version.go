package version

import (
	"log"

	"github.com/tdkit/tdkit/buildinfo"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("version", "Prints the current version of tdcli")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	comm.ResultOrPrint(mansion.VersionResult{
		Version:       buildinfo.Version,
		BuiltAt:       buildinfo.BuildTime(),
		Commit:        buildinfo.Commit,
		VersionString: buildinfo.VersionString,
	}, func() {
		log.Println(buildinfo.VersionString)
	})
}
