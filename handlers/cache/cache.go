// Package cache keeps the users and chats the engine told us about, so
// handlers don't have to ask for them again.
package cache

import (
	"context"
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultUsers = 1024
	DefaultChats = 512
)

type Opts struct {
	// Where misses are fetched from. Without one, misses stay misses.
	Caller tdapi.Caller

	Users int
	Chats int

	Consumer *state.Consumer
}

// Cache holds immutable snapshots: an update never modifies an entry in
// place, it stores a modified copy. Entries handed out stay valid forever.
type Cache struct {
	caller   tdapi.Caller
	consumer *state.Consumer

	users *lru.Cache[int64, *tdapi.User]
	chats *lru.Cache[int64, *tdapi.Chat]

	// serializes read-modify-write cycles
	writeLock sync.Mutex

	group singleflight.Group
}

func New(opts Opts) (*Cache, error) {
	if opts.Users <= 0 {
		opts.Users = DefaultUsers
	}
	if opts.Chats <= 0 {
		opts.Chats = DefaultChats
	}
	consumer := opts.Consumer
	if consumer == nil {
		consumer = &state.Consumer{}
	}

	users, err := lru.New[int64, *tdapi.User](opts.Users)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	chats, err := lru.New[int64, *tdapi.Chat](opts.Chats)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Cache{
		caller:   opts.Caller,
		consumer: consumer,
		users:    users,
		chats:    chats,
	}, nil
}

func (c *Cache) Register(router *tdapi.Router) {
	messages.UpdateUser.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateUser) {
		if u.User != nil {
			c.users.Add(u.User.ID, u.User)
		}
	})
	messages.UpdateUserStatus.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateUserStatus) {
		c.modifyUser(u.UserID, func(user *tdapi.User) {
			user.Status = u.Status
		})
	})

	messages.UpdateNewChat.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateNewChat) {
		if u.Chat != nil {
			c.chats.Add(u.Chat.ID, u.Chat)
		}
	})
	messages.UpdateChatTitle.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateChatTitle) {
		c.modifyChat(u.ChatID, func(chat *tdapi.Chat) {
			chat.Title = u.Title
		})
	})
	messages.UpdateChatLastMessage.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateChatLastMessage) {
		c.modifyChat(u.ChatID, func(chat *tdapi.Chat) {
			chat.LastMessage = u.LastMessage
			for _, pos := range u.Positions {
				chat.Positions = setPosition(chat.Positions, pos)
			}
		})
	})
	messages.UpdateChatPosition.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateChatPosition) {
		if u.Position == nil {
			return
		}
		c.modifyChat(u.ChatID, func(chat *tdapi.Chat) {
			chat.Positions = setPosition(chat.Positions, u.Position)
		})
	})
	messages.UpdateChatReadInbox.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateChatReadInbox) {
		c.modifyChat(u.ChatID, func(chat *tdapi.Chat) {
			chat.LastReadInboxMessageID = u.LastReadInboxMessageID
			chat.UnreadCount = u.UnreadCount
		})
	})
	messages.UpdateChatReadOutbox.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateChatReadOutbox) {
		c.modifyChat(u.ChatID, func(chat *tdapi.Chat) {
			chat.LastReadOutboxMessageID = u.LastReadOutboxMessageID
		})
	})
	messages.UpdateChatIsMarkedAsUnread.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateChatIsMarkedAsUnread) {
		c.modifyChat(u.ChatID, func(chat *tdapi.Chat) {
			chat.IsMarkedAsUnread = u.IsMarkedAsUnread
		})
	})
}

func (c *Cache) modifyUser(id int64, f func(user *tdapi.User)) {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()

	old, ok := c.users.Peek(id)
	if !ok {
		return
	}
	user := *old
	f(&user)
	c.users.Add(id, &user)
}

func (c *Cache) modifyChat(id int64, f func(chat *tdapi.Chat)) {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()

	old, ok := c.chats.Peek(id)
	if !ok {
		// the engine always sends updateNewChat before anything else about a chat
		c.consumer.Debugf("Update for unknown chat %d", id)
		return
	}
	chat := *old
	chat.Positions = append([]*tdapi.ChatPosition(nil), old.Positions...)
	f(&chat)
	c.chats.Add(id, &chat)
}

// setPosition replaces the position in the same list, or removes it when
// its order is zero.
func setPosition(positions []*tdapi.ChatPosition, pos *tdapi.ChatPosition) []*tdapi.ChatPosition {
	res := positions[:0]
	for _, p := range positions {
		if !sameList(p.List, pos.List) {
			res = append(res, p)
		}
	}
	if pos.Order != 0 {
		res = append(res, pos)
	}
	return res
}

func sameList(a, b tdapi.ChatList) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ObjectType() != b.ObjectType() {
		return false
	}
	if fa, ok := a.(*tdapi.ChatListFolder); ok {
		return fa.ChatFolderID == b.(*tdapi.ChatListFolder).ChatFolderID
	}
	return true
}

// PeekUser returns a cached user without fetching it.
func (c *Cache) PeekUser(id int64) (*tdapi.User, bool) {
	return c.users.Get(id)
}

// PeekChat returns a cached chat without fetching it.
func (c *Cache) PeekChat(id int64) (*tdapi.Chat, bool) {
	return c.chats.Get(id)
}

// User returns a user, asking the engine on a miss. Concurrent misses for
// the same user result in a single getUser.
func (c *Cache) User(ctx context.Context, id int64) (*tdapi.User, error) {
	if user, ok := c.users.Get(id); ok {
		return user, nil
	}
	if c.caller == nil {
		return nil, errors.Errorf("user %d not cached", id)
	}

	v, err, _ := c.group.Do("user:"+strconv.FormatInt(id, 10), func() (interface{}, error) {
		user, err := messages.GetUser.Call(ctx, c.caller, tdapi.NewGetUser(id))
		if err != nil {
			return nil, err
		}
		c.store(func() { c.users.ContainsOrAdd(id, user) })
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*tdapi.User), nil
}

// Chat returns a chat, asking the engine on a miss.
func (c *Cache) Chat(ctx context.Context, id int64) (*tdapi.Chat, error) {
	if chat, ok := c.chats.Get(id); ok {
		return chat, nil
	}
	if c.caller == nil {
		return nil, errors.Errorf("chat %d not cached", id)
	}

	v, err, _ := c.group.Do("chat:"+strconv.FormatInt(id, 10), func() (interface{}, error) {
		chat, err := messages.GetChat.Call(ctx, c.caller, tdapi.NewGetChat(id))
		if err != nil {
			return nil, err
		}
		c.store(func() { c.chats.ContainsOrAdd(id, chat) })
		return chat, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*tdapi.Chat), nil
}

// store keeps whatever an update put there in the meantime: updates are
// newer than fetch results.
func (c *Cache) store(f func()) {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	f()
}

type Stats struct {
	Users int
	Chats int
}

func (c *Cache) Stats() Stats {
	return Stats{Users: c.users.Len(), Chats: c.chats.Len()}
}

func (c *Cache) Purge() {
	c.users.Purge()
	c.chats.Purge()
}
