package listen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/mansion"
	"github.com/tdkit/tdkit/mansion/mansiontest"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func chattyEngine(e *mockengine.Engine) {
	e.Handle(tdapi.TypeCheckAuthenticationBotToken, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
		e.Enqueue(&tdapi.UpdateAuthorizationState{AuthorizationState: &tdapi.AuthorizationStateReady{}})
		e.Enqueue(&tdapi.UpdateNewChat{Chat: &tdapi.Chat{
			ID:    100,
			Title: "Book club",
			Type:  &tdapi.ChatTypePrivate{UserID: 7},
		}})
		e.Enqueue(&tdapi.UpdateUser{User: &tdapi.User{
			ID:        7,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Type:      &tdapi.UserTypeRegular{},
		}})
		for i := int64(1); i <= 3; i++ {
			e.Enqueue(&tdapi.UpdateNewMessage{Message: &tdapi.Message{
				ID:       i,
				ChatID:   100,
				SenderID: &tdapi.MessageSenderUser{UserID: 7},
				Content:  &tdapi.MessageText{Text: &tdapi.FormattedText{Text: "hello"}},
			}})
		}
		return nil, nil
	})
}

func Test_ListenCount(t *testing.T) {
	h := mansiontest.New(t, chattyEngine)

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got []*mansion.UpdateResult
	err := Do(c, h.Ctx, Opts{Types: []string{tdapi.TypeUpdateNewMessage}, Count: 2}, func(res *mansion.UpdateResult) {
		got = append(got, res)
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	for _, res := range got {
		assert.Equal(t, tdapi.TypeUpdateNewMessage, res.Type)
		assert.Equal(t, "Book club", res.ChatTitle)
		assert.Equal(t, "Ada Lovelace", res.Sender)
	}
	assert.Contains(t, string(got[0].Update), `"id":1`)
}

func Test_ListenEverythingUntilDeadline(t *testing.T) {
	h := mansiontest.New(t, chattyEngine)

	var types []string
	err := Do(context.Background(), h.Ctx, Opts{Duration: 500 * time.Millisecond}, func(res *mansion.UpdateResult) {
		types = append(types, res.Type)
	})
	require.NoError(t, err)

	assert.Contains(t, types, tdapi.TypeUpdateAuthorizationState)
	assert.Contains(t, types, tdapi.TypeUpdateNewChat)
	assert.Contains(t, types, tdapi.TypeUpdateUser)
}

func Test_ListenUnknownType(t *testing.T) {
	h := mansiontest.New(t, nil)

	for _, tag := range []string{"updateEverything", tdapi.TypeGetMe, tdapi.TypeUser} {
		err := Do(context.Background(), h.Ctx, Opts{Types: []string{tdapi.TypeUpdateNewMessage, tag}}, func(*mansion.UpdateResult) {})
		require.Error(t, err, tag)
		assert.Contains(t, err.Error(), "unknown update type", tag)
	}
	assert.Nil(t, h.Engine(), "no session is opened for a bad filter")
}
