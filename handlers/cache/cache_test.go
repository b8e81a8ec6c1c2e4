package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/handlers/cache"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func dispatch(t *testing.T, router *tdapi.Router, update tdapi.Object) {
	t.Helper()
	bs, err := tdapi.MarshalObject(update)
	require.NoError(t, err)
	env, err := tdjson.ParseEnvelope(bs)
	require.NoError(t, err)
	router.Dispatch(env)
}

func newCache(t *testing.T, caller tdapi.Caller) (*cache.Cache, *tdapi.Router) {
	t.Helper()
	c, err := cache.New(cache.Opts{Caller: caller, Users: 8, Chats: 8})
	require.NoError(t, err)
	router := tdapi.NewRouter(&state.Consumer{})
	c.Register(router)
	return c, router
}

func Test_UsersFromUpdates(t *testing.T) {
	c, router := newCache(t, nil)

	dispatch(t, router, &tdapi.UpdateUser{User: &tdapi.User{
		ID:        7,
		FirstName: "Grace",
		Status:    &tdapi.UserStatusOffline{WasOnline: 1},
	}})

	before, ok := c.PeekUser(7)
	require.True(t, ok)
	assert.Equal(t, "Grace", before.FirstName)

	dispatch(t, router, &tdapi.UpdateUserStatus{UserID: 7, Status: &tdapi.UserStatusOnline{Expires: 99}})

	after, ok := c.PeekUser(7)
	require.True(t, ok)
	assert.IsType(t, &tdapi.UserStatusOnline{}, after.Status)
	assert.IsType(t, &tdapi.UserStatusOffline{}, before.Status, "entries handed out must not change")

	// status of a user we never saw is dropped
	dispatch(t, router, &tdapi.UpdateUserStatus{UserID: 8, Status: &tdapi.UserStatusOnline{}})
	_, ok = c.PeekUser(8)
	assert.False(t, ok)
}

func Test_ChatsFromUpdates(t *testing.T) {
	c, router := newCache(t, nil)

	dispatch(t, router, &tdapi.UpdateNewChat{Chat: &tdapi.Chat{
		ID:    -100,
		Type:  &tdapi.ChatTypeBasicGroup{BasicGroupID: 100},
		Title: "Before",
		Positions: []*tdapi.ChatPosition{
			{List: &tdapi.ChatListMain{}, Order: 10},
		},
	}})
	dispatch(t, router, &tdapi.UpdateChatTitle{ChatID: -100, Title: "After"})
	dispatch(t, router, &tdapi.UpdateChatReadInbox{ChatID: -100, LastReadInboxMessageID: 5, UnreadCount: 3})
	dispatch(t, router, &tdapi.UpdateChatReadOutbox{ChatID: -100, LastReadOutboxMessageID: 4})
	dispatch(t, router, &tdapi.UpdateChatIsMarkedAsUnread{ChatID: -100, IsMarkedAsUnread: true})

	chat, ok := c.PeekChat(-100)
	require.True(t, ok)
	assert.Equal(t, "After", chat.Title)
	assert.EqualValues(t, 5, chat.LastReadInboxMessageID)
	assert.EqualValues(t, 3, chat.UnreadCount)
	assert.EqualValues(t, 4, chat.LastReadOutboxMessageID)
	assert.True(t, chat.IsMarkedAsUnread)
}

func Test_ChatPositions(t *testing.T) {
	c, router := newCache(t, nil)

	dispatch(t, router, &tdapi.UpdateNewChat{Chat: &tdapi.Chat{
		ID:   1,
		Type: &tdapi.ChatTypePrivate{UserID: 1},
		Positions: []*tdapi.ChatPosition{
			{List: &tdapi.ChatListMain{}, Order: 10},
			{List: &tdapi.ChatListFolder{ChatFolderID: 2}, Order: 20},
		},
	}})
	original, _ := c.PeekChat(1)

	dispatch(t, router, &tdapi.UpdateChatPosition{ChatID: 1, Position: &tdapi.ChatPosition{
		List: &tdapi.ChatListFolder{ChatFolderID: 3}, Order: 30,
	}})
	dispatch(t, router, &tdapi.UpdateChatPosition{ChatID: 1, Position: &tdapi.ChatPosition{
		List: &tdapi.ChatListMain{}, Order: 11,
	}})
	// zero order removes the chat from a list
	dispatch(t, router, &tdapi.UpdateChatPosition{ChatID: 1, Position: &tdapi.ChatPosition{
		List: &tdapi.ChatListFolder{ChatFolderID: 2}, Order: 0,
	}})

	chat, _ := c.PeekChat(1)
	orders := map[int64]bool{}
	for _, pos := range chat.Positions {
		orders[pos.Order] = true
	}
	assert.Equal(t, map[int64]bool{11: true, 30: true}, orders)

	require.Len(t, original.Positions, 2)
	assert.EqualValues(t, 10, original.Positions[0].Order)
	assert.EqualValues(t, 20, original.Positions[1].Order)
}

func Test_FetchOnMiss(t *testing.T) {
	engine, transport := mockengine.New()
	var calls int32
	release := make(chan struct{})
	engine.Handle(tdapi.TypeGetUser, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return &tdapi.User{ID: 42, FirstName: "Fetched"}, nil
	})
	engine.Handle(tdapi.TypeGetChat, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
		return nil, &tdapi.Error{Code: 400, Message: "Chat not found"}
	})

	client, err := tdapi.NewClient(context.Background(), tdapi.ClientOpts{
		Transport: transport,
		Consumer:  &state.Consumer{},
	})
	require.NoError(t, err)
	defer func() {
		client.Close()
		engine.Close()
	}()

	c, _ := newCache(t, client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	users := make([]*tdapi.User, 4)
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := c.User(ctx, 42)
			assert.NoError(t, err)
			users[i] = user
		}(i)
	}
	// give every goroutine a chance to join the in-flight fetch
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	for _, user := range users {
		require.NotNil(t, user)
		assert.Equal(t, "Fetched", user.FirstName)
	}

	_, err = c.User(ctx, 42)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "second lookup is a hit")

	_, err = c.Chat(ctx, 5)
	assert.True(t, tdapi.IsCode(err, tdapi.CodeBadRequest))
	_, ok := c.PeekChat(5)
	assert.False(t, ok)
}

func Test_MissWithoutCaller(t *testing.T) {
	c, _ := newCache(t, nil)
	_, err := c.User(context.Background(), 1)
	assert.Error(t, err)
	_, err = c.Chat(context.Background(), 1)
	assert.Error(t, err)
}

func Test_Eviction(t *testing.T) {
	c, router := newCache(t, nil)
	for i := int64(1); i <= 10; i++ {
		dispatch(t, router, &tdapi.UpdateUser{User: &tdapi.User{ID: i}})
	}
	assert.Equal(t, 8, c.Stats().Users)
	_, ok := c.PeekUser(1)
	assert.False(t, ok)

	c.Purge()
	assert.Equal(t, cache.Stats{}, c.Stats())
}
