package mansion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi"
)

func Test_ParseRequest(t *testing.T) {
	fn, err := ParseRequest([]string{"getChats", "limit=20", `chat_list={"@type":"chatListArchive"}`}, nil)
	require.NoError(t, err)
	gc, ok := fn.(*tdapi.GetChats)
	require.True(t, ok)
	assert.EqualValues(t, 20, gc.Limit)
	assert.IsType(t, &tdapi.ChatListArchive{}, gc.ChatList)

	fn, err = ParseRequest([]string{`{"@type":"getUser","user_id":7}`}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 7, fn.(*tdapi.GetUser).UserID)

	fn, err = ParseRequest([]string{"-", "text=hello world"}, strings.NewReader(`{"@type":"getTextEntities"}`))
	require.NoError(t, err)
	assert.Equal(t, "hello world", fn.(*tdapi.GetTextEntities).Text)
}

func Test_ParseRequestErrors(t *testing.T) {
	check := func(args []string, msg string) {
		t.Helper()
		_, err := ParseRequest(args, strings.NewReader(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), msg)
	}

	check(nil, "missing request")
	check([]string{"{nope"}, "not valid JSON")
	check([]string{"getMe", "limit"}, "expected key=value")
	check([]string{"user"}, "user is not a function")
	check([]string{"frobnicate"}, "unknown @type")
	check([]string{"getchat", "chat_id=1"}, "did you mean getChat")
}

func Test_Pretty(t *testing.T) {
	out := Pretty([]byte(`{"@type":"ok","id":1}`))
	assert.Contains(t, out, "{\n  \"@type\": \"ok\",\n  \"id\": 1")
}
