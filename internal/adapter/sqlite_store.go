package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	m "fixpool.dev/pkg/fixpool/internal/model"

	_ "modernc.org/sqlite"
)

const poolSchema = `
CREATE TABLE IF NOT EXISTS contexts (
	id        INTEGER PRIMARY KEY,
	action    TEXT NOT NULL,
	ancestors TEXT NOT NULL,
	UNIQUE (action, ancestors)
);
CREATE TABLE IF NOT EXISTS changes (
	id             INTEGER PRIMARY KEY,
	context_id     INTEGER NOT NULL REFERENCES contexts(id) ON DELETE CASCADE,
	change_id      TEXT NOT NULL,
	kind           TEXT NOT NULL,
	node_type      TEXT NOT NULL,
	node_label     TEXT NOT NULL,
	node_value     TEXT NOT NULL,
	node_start     INTEGER NOT NULL,
	node_name      TEXT NOT NULL,
	location_type  TEXT NOT NULL,
	location_label TEXT NOT NULL,
	location_value TEXT NOT NULL,
	location_start INTEGER NOT NULL,
	location_name  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS changes_context ON changes(context_id);
`

// SQLitePoolStore stores snapshots in a SQLite database. Row ids keep the
// insertion order of contexts and changes.
type SQLitePoolStore struct{}

// NewSQLitePoolStore constructs a SQLitePoolStore.
func NewSQLitePoolStore() *SQLitePoolStore {
	return &SQLitePoolStore{}
}

func openPoolDB(ctx context.Context, path m.Path) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", string(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := conn.ExecContext(ctx, poolSchema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return conn, nil
}

// Save implements PoolStore.
func (s *SQLitePoolStore) Save(ctx context.Context, path m.Path, snapshot m.PoolSnapshot) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	conn, err := openPoolDB(ctx, path)
	if err != nil {
		return err
	}

	defer func() { _ = conn.Close() }()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err := writeSnapshot(ctx, tx, snapshot); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func writeSnapshot(ctx context.Context, tx *sql.Tx, snapshot m.PoolSnapshot) error {
	for _, stmt := range []string{"DELETE FROM changes", "DELETE FROM contexts"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing pool: %w", err)
		}
	}

	for _, entry := range snapshot.Entries {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO contexts (action, ancestors) VALUES (?, ?)",
			entry.Context.Action, entry.Context.Ancestors)
		if err != nil {
			return fmt.Errorf("inserting context %s: %w", entry.Context, err)
		}

		contextID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("context id: %w", err)
		}

		for _, change := range entry.Changes {
			_, err := tx.ExecContext(ctx, `INSERT INTO changes (
				context_id, change_id, kind,
				node_type, node_label, node_value, node_start, node_name,
				location_type, location_label, location_value, location_start, location_name
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				contextID, change.ID, change.Kind.String(),
				change.Node.Type, change.Node.Label, change.Node.Value, change.Node.Start, change.Node.Name,
				change.Location.Type, change.Location.Label, change.Location.Value, change.Location.Start, change.Location.Name,
			)
			if err != nil {
				return fmt.Errorf("inserting change %s: %w", change.ID, err)
			}
		}
	}

	return nil
}

// Load implements PoolStore.
func (s *SQLitePoolStore) Load(ctx context.Context, path m.Path) (m.PoolSnapshot, error) {
	if _, err := os.Stat(string(path)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.PoolSnapshot{}, nil
		}

		return m.PoolSnapshot{}, fmt.Errorf("stat pool %s: %w", path, err)
	}

	conn, err := openPoolDB(ctx, path)
	if err != nil {
		return m.PoolSnapshot{}, err
	}

	defer func() { _ = conn.Close() }()

	rows, err := conn.QueryContext(ctx, `SELECT
		x.id, x.action, x.ancestors,
		c.change_id, c.kind,
		c.node_type, c.node_label, c.node_value, c.node_start, c.node_name,
		c.location_type, c.location_label, c.location_value, c.location_start, c.location_name
	FROM changes c JOIN contexts x ON x.id = c.context_id
	ORDER BY x.id, c.id`)
	if err != nil {
		return m.PoolSnapshot{}, fmt.Errorf("querying pool: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var (
		snapshot m.PoolSnapshot
		lastID   int64 = -1
	)

	for rows.Next() {
		var (
			contextID int64
			pctx      m.Context
			change    m.Change
			kind      string
		)

		err := rows.Scan(&contextID, &pctx.Action, &pctx.Ancestors,
			&change.ID, &kind,
			&change.Node.Type, &change.Node.Label, &change.Node.Value, &change.Node.Start, &change.Node.Name,
			&change.Location.Type, &change.Location.Label, &change.Location.Value, &change.Location.Start, &change.Location.Name,
		)
		if err != nil {
			return m.PoolSnapshot{}, fmt.Errorf("scanning change: %w", err)
		}

		if change.Kind, err = m.ParseChangeKind(kind); err != nil {
			return m.PoolSnapshot{}, err
		}

		detach(&change)

		if contextID != lastID {
			snapshot.Entries = append(snapshot.Entries, m.PoolEntry{Context: pctx})
			lastID = contextID
		}

		last := &snapshot.Entries[len(snapshot.Entries)-1]
		last.Changes = append(last.Changes, change)
	}

	if err := rows.Err(); err != nil {
		return m.PoolSnapshot{}, fmt.Errorf("reading pool: %w", err)
	}

	return snapshot, nil
}
