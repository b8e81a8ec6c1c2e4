package listen

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/handlers/cache"
	"github.com/tdkit/tdkit/mansion"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
)

var args = struct {
	types    *[]string
	count    *int
	duration *time.Duration
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("listen", "Log in and print updates as they arrive, until interrupted")
	ctx.Register(cmd, do)

	args.types = cmd.Flag("type", "Only print updates of this type (repeatable)").Short('t').Strings()
	args.count = cmd.Flag("count", "Stop after this many updates").Int()
	args.duration = cmd.Flag("duration", "Stop after this long").Duration()
}

type Opts struct {
	Types    []string
	Count    int
	Duration time.Duration
}

func do(ctx *mansion.Context) {
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := Do(c, ctx, Opts{
		Types:    *args.types,
		Count:    *args.count,
		Duration: *args.duration,
	}, printUpdate)
	ctx.Must(err)
}

func printUpdate(res *mansion.UpdateResult) {
	comm.ResultOrPrint(res, func() {
		var where []string
		if res.ChatTitle != "" {
			where = append(where, fmt.Sprintf("in %q", res.ChatTitle))
		}
		if res.Sender != "" {
			where = append(where, "from "+res.Sender)
		}
		line := res.Type
		if len(where) > 0 {
			line += " (" + strings.Join(where, ", ") + ")"
		}
		fmt.Printf("%s %s\n", line, res.Update)
	})
}

// Do hands every update that passes opts.Types to out, from the router's
// dispatch goroutine, until c is done, the engine closes, or the count or
// duration is reached.
func Do(c context.Context, ctx *mansion.Context, opts Opts, out func(res *mansion.UpdateResult)) error {
	for _, tag := range opts.Types {
		if _, ok := tdapi.New(tag).(tdapi.Update); !ok {
			return errors.Errorf("unknown update type %q", tag)
		}
	}
	wanted := make(map[string]bool)
	for _, tag := range opts.Types {
		wanted[tag] = true
	}

	if opts.Duration > 0 {
		var cancel context.CancelFunc
		c, cancel = context.WithTimeout(c, opts.Duration)
		defer cancel()
	}

	enough := make(chan struct{})
	seen := 0
	setup := func(s *mansion.Session) {
		s.Router.RegisterAnyUpdate(func(uc *tdapi.UpdateContext) {
			if len(wanted) > 0 && !wanted[uc.Type] {
				return
			}
			if opts.Count > 0 && seen >= opts.Count {
				return
			}

			res := &mansion.UpdateResult{Type: uc.Type, Update: uc.Raw}
			annotate(s.Cache, res)
			out(res)

			seen++
			if opts.Count > 0 && seen == opts.Count {
				close(enough)
			}
		})
	}

	s, err := ctx.OpenSession(c, mansion.SessionOpts{Authorize: true, Setup: setup})
	if err != nil {
		return err
	}
	defer s.Close()

	select {
	case <-c.Done():
	case <-enough:
	case <-s.Router.ShutdownChan:
		return errors.New("engine closed")
	}
	return nil
}

// annotate names the chat and sender of new messages, when the cache
// already knows them.
func annotate(c *cache.Cache, res *mansion.UpdateResult) {
	if res.Type != tdapi.TypeUpdateNewMessage {
		return
	}
	u, err := messages.UpdateNewMessage.Decode(res.Update)
	if err != nil || u.Message == nil {
		return
	}

	if chat, ok := c.PeekChat(u.Message.ChatID); ok {
		res.ChatTitle = chat.Title
	}
	switch sender := u.Message.SenderID.(type) {
	case *tdapi.MessageSenderUser:
		if user, ok := c.PeekUser(sender.UserID); ok {
			res.Sender = strings.TrimSpace(user.FirstName + " " + user.LastName)
		}
	case *tdapi.MessageSenderChat:
		if chat, ok := c.PeekChat(sender.ChatID); ok {
			res.Sender = chat.Title
		}
	}
}
