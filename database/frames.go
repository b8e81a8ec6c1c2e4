package database

import (
	"strings"
	"time"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"github.com/pkg/errors"
)

type Frame struct {
	ID         int64
	RecordedAt time.Time
	// "in" or "out", seen from the client
	Direction string
	Type      string
	Extra     string
	ClientID  int64
	Payload   []byte
}

// FrameFilter narrows ListFrames. Zero values match everything.
type FrameFilter struct {
	Type      string
	Direction string
	Extra     string
	Since     time.Time
	// Most recent first when set.
	Reverse bool
	Limit   int
}

// InsertFrames stores frames in a single transaction and fills in their IDs.
func (db *DB) InsertFrames(frames []*Frame) error {
	if len(frames) == 0 {
		return nil
	}

	return db.WithConn(func(conn *sqlite.Conn) (retErr error) {
		defer sqlitex.Save(conn)(&retErr)

		stmt := conn.Prep(`INSERT INTO frames (recorded_at, direction, type, extra, client_id, payload)
			VALUES ($recorded_at, $direction, $type, $extra, $client_id, $payload)`)
		for _, f := range frames {
			if f.RecordedAt.IsZero() {
				f.RecordedAt = time.Now().UTC()
			}
			stmt.SetInt64("$recorded_at", f.RecordedAt.UnixNano())
			stmt.SetText("$direction", f.Direction)
			stmt.SetText("$type", f.Type)
			stmt.SetText("$extra", f.Extra)
			stmt.SetInt64("$client_id", f.ClientID)
			stmt.SetBytes("$payload", f.Payload)
			if _, err := stmt.Step(); err != nil {
				return errors.WithMessage(err, "inserting frame")
			}
			if err := stmt.Reset(); err != nil {
				return errors.WithStack(err)
			}
			f.ID = conn.LastInsertRowID()
		}
		return nil
	})
}

func (db *DB) ListFrames(filter FrameFilter) ([]*Frame, error) {
	var conds []string
	var args []interface{}
	if filter.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, filter.Type)
	}
	if filter.Direction != "" {
		conds = append(conds, "direction = ?")
		args = append(args, filter.Direction)
	}
	if filter.Extra != "" {
		conds = append(conds, "extra = ?")
		args = append(args, filter.Extra)
	}
	if !filter.Since.IsZero() {
		conds = append(conds, "recorded_at >= ?")
		args = append(args, filter.Since.UnixNano())
	}

	query := `SELECT id, recorded_at, direction, type, extra, client_id, payload FROM frames`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if filter.Reverse {
		query += " ORDER BY id DESC"
	} else {
		query += " ORDER BY id ASC"
	}
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, int64(filter.Limit))
	}

	var frames []*Frame
	err := db.WithConn(func(conn *sqlite.Conn) error {
		return db.exec(conn, query, func(stmt *sqlite.Stmt) error {
			payload := make([]byte, stmt.ColumnLen(6))
			stmt.ColumnBytes(6, payload)
			frames = append(frames, &Frame{
				ID:         stmt.ColumnInt64(0),
				RecordedAt: time.Unix(0, stmt.ColumnInt64(1)).UTC(),
				Direction:  stmt.ColumnText(2),
				Type:       stmt.ColumnText(3),
				Extra:      stmt.ColumnText(4),
				ClientID:   stmt.ColumnInt64(5),
				Payload:    payload,
			})
			return nil
		}, args...)
	})
	if err != nil {
		return nil, err
	}
	return frames, nil
}

func (db *DB) CountFrames() (int64, error) {
	var count int64
	err := db.WithConn(func(conn *sqlite.Conn) error {
		return db.exec(conn, `SELECT COUNT(*) FROM frames`, func(stmt *sqlite.Stmt) error {
			count = stmt.ColumnInt64(0)
			return nil
		})
	})
	return count, err
}

// PruneFrames deletes frames recorded before t.
func (db *DB) PruneFrames(before time.Time) (int, error) {
	var deleted int
	err := db.WithConn(func(conn *sqlite.Conn) error {
		err := db.exec(conn, `DELETE FROM frames WHERE recorded_at < ?`, nil, before.UnixNano())
		if err != nil {
			return err
		}
		deleted = conn.Changes()
		return nil
	})
	return deleted, err
}
