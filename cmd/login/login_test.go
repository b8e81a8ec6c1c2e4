package login

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/mansion/mansiontest"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
)

func Test_Login(t *testing.T) {
	h := mansiontest.New(t, nil)

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Do(c, h.Ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 42, res.UserID)
	assert.Equal(t, "Test", res.FirstName)
	assert.Equal(t, "User", res.LastName)
	assert.Empty(t, res.Username)
	assert.False(t, res.IsBot)

	assert.Contains(t, h.Engine().ReceivedTypes(), tdapi.TypeCheckAuthenticationBotToken)
}

func Test_LoginBot(t *testing.T) {
	h := mansiontest.New(t, func(e *mockengine.Engine) {
		e.HandleWith(tdapi.TypeGetMe, &tdapi.User{
			ID:        1234,
			FirstName: "Echo",
			Usernames: &tdapi.Usernames{ActiveUsernames: []string{"echo_bot"}},
			Type:      &tdapi.UserTypeBot{},
		})
	})

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Do(c, h.Ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1234, res.UserID)
	assert.Equal(t, "echo_bot", res.Username)
	assert.True(t, res.IsBot)
}

func Test_LoginRejected(t *testing.T) {
	h := mansiontest.New(t, nil)
	h.Config.Auth.BotToken = "0:nope"

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := Do(c, h.Ctx)
	require.Error(t, err)
	assert.True(t, tdapi.IsCode(err, tdapi.CodeUnauthorized))
}
