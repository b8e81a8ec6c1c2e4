package schema

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi/tdgen/spec"
)

func load(t *testing.T) *spec.Spec {
	sp, err := spec.Load()
	require.NoError(t, err)
	return sp
}

func Test_Describe(t *testing.T) {
	sp := load(t)

	entry, err := Describe(sp, "getChats")
	require.NoError(t, err)
	assert.Equal(t, "function", entry.Kind)
	assert.Equal(t, "Chats", entry.Returns)
	require.NotEmpty(t, entry.Fields)

	entry, err = Describe(sp, "updateNewMessage")
	require.NoError(t, err)
	assert.Equal(t, "update", entry.Kind)

	entry, err = Describe(sp, "AuthorizationState")
	require.NoError(t, err)
	assert.Equal(t, "class", entry.Kind)
	assert.Contains(t, entry.Members, "authorizationStateReady")

	entry, err = Describe(sp, "user")
	require.NoError(t, err)
	assert.Equal(t, "object", entry.Kind)

	_, err = Describe(sp, "getchats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean getChats")

	_, err = Describe(sp, "zzzzzzzzzzzzzzzz")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func Test_Categories(t *testing.T) {
	sp := load(t)
	counts := Categories(sp)

	total := len(sp.Classes) + len(sp.Objects) + len(sp.Functions) + len(sp.Updates)
	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, total, sum)
	assert.Equal(t, len(sp.Category("Authorization")), counts["Authorization"])
}

func Test_PrintEntry(t *testing.T) {
	sp := load(t)

	entry, err := Describe(sp, "getChats")
	require.NoError(t, err)

	var buf bytes.Buffer
	printEntry(&buf, entry)
	out := buf.String()
	assert.Contains(t, out, "getChats (function, Chats)")
	assert.Contains(t, out, "Returns: Chats")
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "limit")
	assert.Contains(t, out, "chat_list")
	assert.Contains(t, out, "optional")
}
