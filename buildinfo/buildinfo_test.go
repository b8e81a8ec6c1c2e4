package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildTime(t *testing.T) {
	defer func(builtAt, commit string) {
		BuiltAt, Commit = builtAt, commit
		buildVersionString()
	}(BuiltAt, Commit)

	BuiltAt = ""
	assert.Nil(t, BuildTime())
	buildVersionString()
	assert.Equal(t, Version+", no build date", VersionString)

	BuiltAt = "1700000000"
	Commit = "abc123"
	bt := BuildTime()
	if assert.NotNil(t, bt) {
		assert.EqualValues(t, 1700000000, bt.Unix())
	}
	buildVersionString()
	assert.Contains(t, VersionString, "built on")
	assert.Contains(t, VersionString, "ref abc123")

	BuiltAt = "yesterday"
	assert.Nil(t, BuildTime())
	buildVersionString()
	assert.Contains(t, VersionString, "invalid build date")
}
