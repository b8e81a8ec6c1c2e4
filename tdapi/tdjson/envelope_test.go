package tdjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func Test_ParseEnvelope(t *testing.T) {
	env, err := tdjson.ParseEnvelope([]byte(`{"@type":"user","@extra":"abc","@client_id":3,"id":1}`))
	require.NoError(t, err)
	assert.Equal(t, "user", env.Type)
	assert.Equal(t, "abc", env.Extra)
	assert.EqualValues(t, 3, env.ClientID)
	assert.False(t, env.IsUpdate())
	assert.Equal(t, "user (extra abc)", env.String())

	env, err = tdjson.ParseEnvelope([]byte(`{"@type":"updateOption","@extra":null}`))
	require.NoError(t, err)
	assert.True(t, env.IsUpdate())
	assert.Equal(t, "updateOption", env.String())

	// non-string tokens are kept in their textual form
	env, err = tdjson.ParseEnvelope([]byte(`{"@type":"ok","@extra":12}`))
	require.NoError(t, err)
	assert.Equal(t, "12", env.Extra)

	for _, bad := range []string{
		`not json`,
		`[1,2]`,
		`{"id":1}`,
		`{"@type":""}`,
		`{"@type":5}`,
	} {
		_, err := tdjson.ParseEnvelope([]byte(bad))
		assert.Error(t, err, bad)
	}
}
