package database

import (
	"sort"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi/horror"
)

type migration func(consumer *state.Consumer, conn *sqlite.Conn) error

// keyed by the unix time they were written at
var migrations = map[int64]migration{
	1760000000: func(consumer *state.Consumer, conn *sqlite.Conn) error {
		return sqlitex.ExecScript(conn, `
			CREATE TABLE frames (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				recorded_at INTEGER NOT NULL,
				direction TEXT NOT NULL,
				type TEXT NOT NULL,
				extra TEXT NOT NULL DEFAULT '',
				client_id INTEGER NOT NULL DEFAULT 0,
				payload BLOB NOT NULL
			);
			CREATE INDEX frames_type ON frames (type);
		`)
	},
	1760500000: func(consumer *state.Consumer, conn *sqlite.Conn) error {
		return sqlitex.ExecScript(conn, `
			CREATE INDEX frames_extra ON frames (extra) WHERE extra != '';
			CREATE INDEX frames_recorded_at ON frames (recorded_at);
		`)
	},
}

func latestSchemaVersion() int64 {
	keys := migrationKeys()
	if len(keys) == 0 {
		return 0
	}
	return keys[len(keys)-1]
}

func migrationKeys() []int64 {
	var keys []int64
	for k := range migrations {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func getSchemaVersion(conn *sqlite.Conn) (int64, error) {
	var version int64
	err := sqlitex.Exec(conn, `SELECT version FROM schema_versions WHERE id = 'journal'`, func(stmt *sqlite.Stmt) error {
		version = stmt.ColumnInt64(0)
		return nil
	})
	return version, errors.WithStack(err)
}

func setSchemaVersion(conn *sqlite.Conn, version int64) error {
	err := sqlitex.Exec(conn, `INSERT OR REPLACE INTO schema_versions (id, version) VALUES ('journal', ?)`, nil, version)
	return errors.WithStack(err)
}

func migrate(consumer *state.Consumer, conn *sqlite.Conn) error {
	err := sqlitex.ExecScript(conn, `CREATE TABLE IF NOT EXISTS schema_versions (id TEXT PRIMARY KEY, version INTEGER NOT NULL);`)
	if err != nil {
		return errors.WithMessage(err, "creating schema_versions")
	}

	currentVersion, err := getSchemaVersion(conn)
	if err != nil {
		return err
	}
	consumer.Debugf("Current DB version is %d", currentVersion)
	consumer.Debugf("Latest migration is   %d", latestSchemaVersion())

	var todo []int64
	for _, key := range migrationKeys() {
		if key > currentVersion {
			todo = append(todo, key)
		}
	}
	if len(todo) == 0 {
		consumer.Debugf("No migrations to run")
		return nil
	}

	consumer.Debugf("%d migrations to run (%v)", len(todo), todo)
	for _, key := range todo {
		consumer.Debugf("Running migration %d...", key)
		err := func() (retErr error) {
			defer horror.RecoverInto(&retErr)
			defer sqlitex.Save(conn)(&retErr)

			err := migrations[key](consumer, conn)
			if err != nil {
				return err
			}
			return setSchemaVersion(conn, key)
		}()
		if err != nil {
			return errors.WithMessagef(err, "running migration %d", key)
		}
	}
	return nil
}
