package mansion

import (
	"encoding/json"
	"time"

	"github.com/tdkit/tdkit/tdapi/tdgen/spec"
)

// VersionResult describes the build.
//
// For command `version`
type VersionResult struct {
	Version       string     `json:"version"`
	BuiltAt       *time.Time `json:"builtAt,omitempty"`
	Commit        string     `json:"commit,omitempty"`
	VersionString string     `json:"versionString"`
}

// CallResult is the engine's answer to a function, as it came.
//
// For commands `call` and `execute`
type CallResult struct {
	Type   string          `json:"type"`
	Result json.RawMessage `json:"result"`
}

// UpdateResult is sent for every update `listen` lets through.
type UpdateResult struct {
	Type   string          `json:"type"`
	Update json.RawMessage `json:"update"`

	// Filled in from the cache for message updates, when known
	ChatTitle string `json:"chatTitle,omitempty"`
	Sender    string `json:"sender,omitempty"`
}

// LoginResult describes the account tdcli is now logged into.
//
// For command `login`
type LoginResult struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Username  string `json:"username,omitempty"`
	IsBot     bool   `json:"isBot"`
}

// FrameResult is one recorded frame.
//
// For command `journal list`
type FrameResult struct {
	ID         int64           `json:"id"`
	RecordedAt int64           `json:"recordedAt"`
	Direction  string          `json:"direction"`
	Type       string          `json:"type"`
	Extra      string          `json:"extra,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

// JournalStatsResult is sent by `journal stats` and `journal prune`.
type JournalStatsResult struct {
	Frames int64 `json:"frames"`
	Pruned int   `json:"pruned,omitempty"`
}

// DownloadResult is sent once a file is fully downloaded.
//
// For command `download`
type DownloadResult struct {
	FileID int32  `json:"fileId"`
	Path   string `json:"path"`
	Size   int64  `json:"size"`
}

// SchemaEntryResult is one entry of the API schema.
//
// For command `schema`
type SchemaEntryResult struct {
	Kind     string            `json:"kind"`
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Doc      string            `json:"doc"`
	Class    string            `json:"class,omitempty"`
	Returns  string            `json:"returns,omitempty"`
	Sync     bool              `json:"sync,omitempty"`
	Members  []string          `json:"members,omitempty"`
	Fields   []*spec.FieldSpec `json:"fields,omitempty"`
}
