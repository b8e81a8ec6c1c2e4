package execute

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/mansion"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdgen/spec"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tdkit/tdkit/tdapi/tdjson/native"
)

var args = struct {
	request *[]string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("execute", "Run a synchronous function without logging in, e.g. `tdcli execute getTextEntities text=\"see @durov\"`")
	ctx.Register(cmd, do)

	args.request = cmd.Arg("request", "Function as JSON, - to read it from stdin, or a type name followed by key=value pairs").Required().Strings()
}

func do(ctx *mansion.Context) {
	res, err := Do(native.Executor{}, *args.request)
	ctx.Must(err)

	comm.ResultOrPrint(res, func() {
		fmt.Print(mansion.Pretty(res.Result))
	})
}

func Do(e tdjson.Executor, request []string) (*mansion.CallResult, error) {
	fn, err := mansion.ParseRequest(request, os.Stdin)
	if err != nil {
		return nil, err
	}

	sp, err := spec.Load()
	if err != nil {
		return nil, err
	}
	if ss, _ := sp.Lookup(fn.ObjectType()); ss == nil || !ss.Sync {
		return nil, errors.Errorf("%s cannot be executed synchronously, use `tdcli call`", fn.ObjectType())
	}

	raw, err := tdapi.Execute(e, fn)
	if err != nil {
		return nil, err
	}
	return &mansion.CallResult{
		Type:   tdapi.TypeOf(raw),
		Result: raw,
	}, nil
}
