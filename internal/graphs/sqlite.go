package graphs

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS graphs (
	id    TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	unit  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	graph_id TEXT NOT NULL REFERENCES graphs(id),
	series   TEXT NOT NULL,
	ord      INTEGER NOT NULL,
	size     TEXT NOT NULL,
	duration INTEGER NOT NULL
);
`

// ExportSQLite persists the report into a SQLite database at path,
// creating the schema if needed. Existing rows for the same graph
// ids are replaced.
func (r *Report) ExportSQLite(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("graphs: open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("graphs: create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, g := range r.Graphs {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO graphs (id, title, unit) VALUES (?, ?, ?)`,
			g.ID, g.Title, g.Unit); err != nil {
			return fmt.Errorf("graphs: insert graph %s: %w", g.ID, err)
		}
		if _, err := tx.Exec(`DELETE FROM results WHERE graph_id = ?`, g.ID); err != nil {
			return err
		}
		for _, s := range g.Series {
			for i, p := range s.Points {
				if _, err := tx.Exec(
					`INSERT INTO results (graph_id, series, ord, size, duration) VALUES (?, ?, ?, ?, ?)`,
					g.ID, s.Label, i, p.X, p.Y); err != nil {
					return fmt.Errorf("graphs: insert result %s/%s: %w", g.ID, s.Label, err)
				}
			}
		}
	}
	return tx.Commit()
}
