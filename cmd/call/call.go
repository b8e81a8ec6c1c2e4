package call

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/mansion"
	"github.com/tdkit/tdkit/tdapi"
)

var args = struct {
	request *[]string
	timeout *time.Duration
	noAuth  *bool
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("call", "Send a function to the engine and print its answer, e.g. `tdcli call getChats limit=20`")
	ctx.Register(cmd, do)

	args.request = cmd.Arg("request", "Function as JSON, - to read it from stdin, or a type name followed by key=value pairs").Required().Strings()
	args.timeout = cmd.Flag("timeout", "Give up after this long").Default("30s").Duration()
	args.noAuth = cmd.Flag("no-auth", "Send the function without waiting for authorization").Bool()
}

func do(ctx *mansion.Context) {
	c, cancel := context.WithTimeout(context.Background(), *args.timeout)
	defer cancel()

	res, err := Do(c, ctx, *args.request, !*args.noAuth)
	ctx.Must(err)

	comm.ResultOrPrint(res, func() {
		fmt.Print(mansion.Pretty(res.Result))
	})
}

func Do(c context.Context, ctx *mansion.Context, request []string, authorize bool) (*mansion.CallResult, error) {
	fn, err := mansion.ParseRequest(request, os.Stdin)
	if err != nil {
		return nil, err
	}
	if err := fn.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", fn.ObjectType())
	}

	s, err := ctx.OpenSession(c, mansion.SessionOpts{Authorize: authorize})
	if err != nil {
		return nil, err
	}
	defer s.Close()

	raw, err := s.Client.Call(c, fn)
	if err != nil {
		return nil, err
	}
	return &mansion.CallResult{
		Type:   tdapi.TypeOf(raw),
		Result: raw,
	}, nil
}
