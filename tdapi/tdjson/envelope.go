package tdjson

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	typePath     = `\@type`
	extraPath    = `\@extra`
	clientIDPath = `\@client_id`
)

// Envelope is one JSON object as it travels between us and the engine.
// Raw holds the full object, including the "@" keys.
type Envelope struct {
	Type     string
	Extra    string
	ClientID int64
	Raw      json.RawMessage
}

// IsUpdate returns true for engine-initiated objects (no correlation token).
func (e Envelope) IsUpdate() bool {
	return e.Extra == ""
}

func (e Envelope) String() string {
	if e.Extra != "" {
		return fmt.Sprintf("%s (extra %s)", e.Type, e.Extra)
	}
	return e.Type
}

// ParseEnvelope peeks at the "@" keys of an encoded object without decoding
// the rest of it.
func ParseEnvelope(data []byte) (Envelope, error) {
	if !gjson.ValidBytes(data) {
		return Envelope{}, errors.Errorf("invalid JSON: %q", truncate(data))
	}

	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return Envelope{}, errors.Errorf("expected JSON object: %q", truncate(data))
	}

	typ := res.Get(typePath)
	if typ.Type != gjson.String || typ.Str == "" {
		return Envelope{}, errors.Errorf("missing @type: %q", truncate(data))
	}

	env := Envelope{
		Type: typ.Str,
		Raw:  json.RawMessage(data),
	}
	if extra := res.Get(extraPath); extra.Exists() && extra.Type != gjson.Null {
		env.Extra = extra.String()
	}
	if cid := res.Get(clientIDPath); cid.Exists() {
		env.ClientID = cid.Int()
	}
	return env, nil
}

func truncate(data []byte) string {
	const max = 128
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
