package call

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/mansion/mansiontest"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func Test_Call(t *testing.T) {
	h := mansiontest.New(t, func(e *mockengine.Engine) {
		e.Handle(tdapi.TypeGetChats, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
			return &tdapi.Chats{TotalCount: 2, ChatIDs: []int64{10, 20}}, nil
		})
	})

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Do(c, h.Ctx, []string{"getChats", "limit=2"}, true)
	require.NoError(t, err)
	assert.Equal(t, tdapi.TypeChats, res.Type)
	assert.JSONEq(t, `{"@type":"chats","total_count":2,"chat_ids":[10,20]}`, string(res.Result))

	types := h.Engine().ReceivedTypes()
	assert.Contains(t, types, tdapi.TypeCheckAuthenticationBotToken)
	assert.Contains(t, types, tdapi.TypeGetChats)
	assert.Equal(t, tdapi.TypeClose, types[len(types)-1])
}

func Test_CallErrors(t *testing.T) {
	h := mansiontest.New(t, nil)

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := Do(c, h.Ctx, []string{"getChats"}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid getChats")
	assert.Nil(t, h.Engine(), "no session opened for an invalid request")

	_, err = Do(c, h.Ctx, []string{"getChats", "limit=2"}, true)
	require.Error(t, err)
	assert.True(t, tdapi.IsCode(err, tdapi.CodeBadRequest))
}
