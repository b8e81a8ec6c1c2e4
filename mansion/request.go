package mansion

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdgen/spec"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ParseRequest builds a function from command-line arguments. The first
// argument is either a JSON object, "-" to read one from stdin, or a bare
// type name. The rest are key=value pairs set on top, where value is taken
// as JSON when it parses as JSON and as a string otherwise:
//
//	getChats limit=20 chat_list='{"@type":"chatListMain"}'
func ParseRequest(args []string, stdin io.Reader) (tdapi.Function, error) {
	if len(args) == 0 {
		return nil, errors.New("missing request")
	}

	var doc string
	switch first := strings.TrimSpace(args[0]); {
	case first == "-":
		bs, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading request from stdin")
		}
		doc = string(bs)
	case strings.HasPrefix(first, "{"):
		doc = first
	default:
		var err error
		doc, err = sjson.Set("{}", `\@type`, first)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}
	if !gjson.Valid(doc) {
		return nil, errors.New("request is not valid JSON")
	}

	for _, pair := range args[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("expected key=value, got %q", pair)
		}

		var err error
		if gjson.Valid(value) {
			doc, err = sjson.SetRaw(doc, key, value)
		} else {
			doc, err = sjson.Set(doc, key, value)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "setting %s", key)
		}
	}

	obj, err := tdapi.UnmarshalObject([]byte(doc))
	if err != nil {
		if errors.Cause(err) == tdapi.ErrUnknownType {
			err = withSuggestions(err, gjson.Get(doc, `\@type`).String())
		}
		return nil, err
	}
	fn, ok := obj.(tdapi.Function)
	if !ok {
		return nil, errors.Errorf("%s is not a function", obj.ObjectType())
	}
	return fn, nil
}

func withSuggestions(err error, name string) error {
	sp, serr := spec.Load()
	if serr != nil {
		return err
	}
	suggestions := sp.Suggest(name, 3)
	if len(suggestions) == 0 {
		return err
	}
	return errors.WithMessagef(err, "did you mean %s?", strings.Join(suggestions, ", "))
}

// Pretty indents a JSON document for humans.
func Pretty(raw []byte) string {
	return gjson.GetBytes(raw, "@pretty").Raw
}
