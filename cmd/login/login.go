package login

import (
	"context"
	"strings"

	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/mansion"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("login", "Authorize tdcli with a phone number or a bot token. The engine keeps the session in its database directory.")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	res, err := Do(context.Background(), ctx)
	ctx.Must(err)

	comm.ResultOrPrint(res, func() {
		name := strings.TrimSpace(res.FirstName + " " + res.LastName)
		if res.Username != "" {
			name += " (@" + res.Username + ")"
		}
		comm.Logf("Logged in as %s, user %d", name, res.UserID)
	})
}

func Do(c context.Context, ctx *mansion.Context) (*mansion.LoginResult, error) {
	s, err := ctx.OpenSession(c, mansion.SessionOpts{Authorize: true})
	if err != nil {
		return nil, err
	}
	defer s.Close()

	me, err := messages.GetMe.Call(c, s.Client, &tdapi.GetMe{})
	if err != nil {
		return nil, err
	}

	res := &mansion.LoginResult{
		UserID:    me.ID,
		FirstName: me.FirstName,
		LastName:  me.LastName,
	}
	if me.Usernames != nil && len(me.Usernames.ActiveUsernames) > 0 {
		res.Username = me.Usernames.ActiveUsernames[0]
	}
	_, res.IsBot = me.Type.(*tdapi.UserTypeBot)
	return res, nil
}
