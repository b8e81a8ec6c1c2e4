// Package database stores the traffic journal: every frame exchanged with
// the engine, in a local sqlite file.
package database

import (
	"os"
	"path/filepath"
	"sync"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi/horror"
)

// DefaultPath returns where the journal lives when nothing else is configured.
func DefaultPath(appName string) (string, error) {
	if appName == "" {
		appName = "tdkit"
	}
	dir, err := GetAppDataPath(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "journal.db"), nil
}

// DB wraps a single sqlite connection. crawshaw connections must not be used
// from several goroutines at once, hence the lock.
type DB struct {
	conn   *sqlite.Conn
	lock   sync.Mutex
	closed bool
}

// Open opens (or creates) the database at dbPath and brings its schema
// up to date.
func Open(consumer *state.Consumer, dbPath string) (*DB, error) {
	if dbPath != ":memory:" {
		err := os.MkdirAll(filepath.Dir(dbPath), 0755)
		if err != nil {
			return nil, errors.Wrap(err, "creating db directory")
		}
	}

	conn, err := sqlite.OpenConn(dbPath, 0)
	if err != nil {
		return nil, errors.Wrap(err, "opening SQLite database")
	}

	db := &DB{conn: conn}
	err = db.Prepare(consumer)
	if err != nil {
		conn.Close()
		return nil, errors.WithMessage(err, "preparing SQLite database")
	}
	return db, nil
}

// WithConn runs f with exclusive access to the connection. Panics inside f
// (sqliteutil's Must-style helpers) are turned into errors.
func (db *DB) WithConn(f func(conn *sqlite.Conn) error) (retErr error) {
	db.lock.Lock()
	defer db.lock.Unlock()
	if db.closed {
		return errors.New("database is closed")
	}

	defer horror.RecoverInto(&retErr)
	return f(db.conn)
}

// Prepare runs every migration the database hasn't seen yet.
func (db *DB) Prepare(consumer *state.Consumer) error {
	if consumer == nil {
		consumer = &state.Consumer{}
	}
	return db.WithConn(func(conn *sqlite.Conn) error {
		return migrate(consumer, conn)
	})
}

func (db *DB) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()
	if db.closed {
		return nil
	}
	db.closed = true
	return errors.WithStack(db.conn.Close())
}

func (db *DB) exec(conn *sqlite.Conn, query string, resultFn func(stmt *sqlite.Stmt) error, args ...interface{}) error {
	err := sqlitex.Exec(conn, query, resultFn, args...)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}
