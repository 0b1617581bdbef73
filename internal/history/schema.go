package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS analyses (
    id INTEGER PRIMARY KEY,
    source TEXT,
    language TEXT,
    words INTEGER,
    distinct_words INTEGER,
    average REAL,
    rarest_word TEXT,
    rarest_score REAL,
    created_at TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS analysis_words (
    id INTEGER PRIMARY KEY,
    analysis_id INTEGER,
    word TEXT,
    score REAL,
    position INTEGER
);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
