// Package buildinfo holds what release builds stamp in with
// -ldflags "-X github.com/tdkit/tdkit/buildinfo.Version=...".
package buildinfo

import (
	"strconv"
	"time"
)

var (
	Version = "head"
	// unix timestamp
	BuiltAt = ""
	Commit  = ""

	// formatted on boot from the three above
	VersionString = ""
)

func init() {
	buildVersionString()
}

func buildVersionString() {
	s := Version
	switch bt := BuildTime(); {
	case BuiltAt == "":
		s += ", no build date"
	case bt == nil:
		s += ", invalid build date"
	default:
		s += ", built on " + bt.Local().Format("Jan _2 2006 @ 15:04:05")
	}
	if Commit != "" {
		s += ", ref " + Commit
	}
	VersionString = s
}

// BuildTime returns when this binary was built, or nil for development builds.
func BuildTime() *time.Time {
	if BuiltAt == "" {
		return nil
	}
	epoch, err := strconv.ParseInt(BuiltAt, 10, 64)
	if err != nil {
		return nil
	}
	t := time.Unix(epoch, 0).UTC()
	return &t
}
