package messages_test

import (
	"encoding/json"
	"testing"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func Test_DecodeConcreteResult(t *testing.T) {
	chat, err := messages.GetChat.Decode(json.RawMessage(`{"@type":"chat","id":5,"title":"x","type":{"@type":"chatTypePrivate","user_id":5}}`))
	require.NoError(t, err)
	assert.EqualValues(t, 5, chat.ID)
	assert.IsType(t, &tdapi.ChatTypePrivate{}, chat.Type)

	_, err = messages.GetChat.Decode(json.RawMessage(`{"@type":"user","id":5}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding answer to getChat")
}

func Test_DecodeAbstractResult(t *testing.T) {
	s, err := messages.GetAuthorizationState.Decode(json.RawMessage(`{"@type":"authorizationStateReady"}`))
	require.NoError(t, err)
	assert.IsType(t, &tdapi.AuthorizationStateReady{}, s)

	_, err = messages.GetAuthorizationState.Decode(json.RawMessage(`{"@type":"ok"}`))
	assert.Error(t, err)
}

func Test_Definitions(t *testing.T) {
	assert.Equal(t, tdapi.TypeGetMe, messages.GetMe.Type)
	assert.False(t, messages.GetMe.Sync)
	assert.True(t, messages.GetTextEntities.Sync)
	assert.Equal(t, tdapi.TypeUpdateNewMessage, messages.UpdateNewMessage.Type)
}

func Test_TypedUpdateHandlers(t *testing.T) {
	var warnings []string
	router := tdapi.NewRouter(&state.Consumer{
		OnMessage: func(level, msg string) {
			if level == "warning" {
				warnings = append(warnings, msg)
			}
		},
	})

	var got []*tdapi.UpdateChatTitle
	messages.UpdateChatTitle.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateChatTitle) {
		got = append(got, u)
	})

	dispatch := func(raw string) {
		env, err := tdjson.ParseEnvelope([]byte(raw))
		require.NoError(t, err)
		router.Dispatch(env)
	}
	dispatch(`{"@type":"updateChatTitle","chat_id":3,"title":"New title"}`)
	dispatch(`{"@type":"updateChatTitle","chat_id":"not a number"}`)

	require.Len(t, got, 1)
	assert.EqualValues(t, 3, got[0].ChatID)
	assert.Equal(t, "New title", got[0].Title)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "updateChatTitle")

	u, err := messages.UpdateChatTitle.Decode(json.RawMessage(`{"@type":"updateChatTitle","chat_id":3,"title":"t"}`))
	require.NoError(t, err)
	assert.Equal(t, "t", u.Title)
}
