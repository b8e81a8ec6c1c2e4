package comm

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

type slogHandler struct {
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

var _ slog.Handler = (*slogHandler)(nil)

// NewSlogHandler returns a slog.Handler that emits logs through comm.
func NewSlogHandler(level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &slogHandler{level: level}
}

// NewLogger is a shorthand for slog.New(NewSlogHandler(level)).
func NewLogger(level slog.Leveler) *slog.Logger {
	return slog.New(NewSlogHandler(level))
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	obj := JsonMessage{
		"type":    "log",
		"time":    time.Now().UTC().Unix(),
		"level":   slogLevelToCommLevel(r.Level),
		"message": r.Message,
	}

	fields := JsonMessage{}
	for _, attr := range h.attrs {
		addAttr(fields, h.groups, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		addAttr(fields, h.groups, attr)
		return true
	})

	if JsonEnabled() {
		// debug records are not filtered by verbosity, the handler level
		// already decided.
		for k, v := range fields {
			if _, reserved := obj[k]; reserved {
				k = "attr." + k
			}
			obj[k] = v
		}
		sendJSON(obj)
		return nil
	}

	msg := r.Message
	if len(fields) > 0 {
		msg = msg + " " + formatFields(fields)
	}
	Logl(obj["level"].(string), msg)
	return nil
}

func (h *slogHandler) clone() *slogHandler {
	return &slogHandler{
		level:  h.level,
		groups: append([]string{}, h.groups...),
		attrs:  append([]slog.Attr{}, h.attrs...),
	}
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	nh.attrs = append(nh.attrs, attrs...)
	return nh
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.groups = append(nh.groups, name)
	return nh
}

func addAttr(obj JsonMessage, groups []string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		nextGroups := append([]string{}, groups...)
		if attr.Key != "" {
			nextGroups = append(nextGroups, attr.Key)
		}
		for _, groupAttr := range attr.Value.Group() {
			addAttr(obj, nextGroups, groupAttr)
		}
		return
	}

	if attr.Key == "" {
		return
	}

	key := strings.Join(append(append([]string{}, groups...), attr.Key), ".")
	obj[key] = slogValueToAny(attr.Value)
}

func formatFields(fields JsonMessage) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

func slogValueToAny(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindBool:
		return v.Bool()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	default:
		return v.Any()
	}
}

func slogLevelToCommLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	case level >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}

// LevelFromVerbosity maps a TDLib log verbosity (0 fatal, 1 error,
// 2 warning, 3 info, 4+ debug) to a slog level.
func LevelFromVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 1:
		return slog.LevelError
	case verbosity == 2:
		return slog.LevelWarn
	case verbosity == 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
