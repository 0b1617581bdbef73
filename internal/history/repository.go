package history

import (
	"database/sql"
	"fmt"

	"github.com/Digz0/WordFreq/internal/rarity"
)

// Entry is one saved analysis summary.
type Entry struct {
	ID            int64   `json:"id" yaml:"id"`
	Source        string  `json:"source" yaml:"source"`
	Language      string  `json:"language" yaml:"language"`
	Words         int     `json:"words" yaml:"words"`
	DistinctWords int     `json:"distinct_words" yaml:"distinct_words"`
	Average       float64 `json:"average" yaml:"average"`
	RarestWord    string  `json:"rarest_word" yaml:"rarest_word"`
	RarestScore   float64 `json:"rarest_score" yaml:"rarest_score"`
	CreatedAt     string  `json:"created_at" yaml:"created_at"`
}

// Save persists an analysis summary plus its topN ranked rare words.
func Save(dbPath, source, language string, report *rarity.Report, topN int) (int64, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rarest := report.Rarest()
	res, err := tx.Exec(
		`INSERT INTO analyses(source, language, words, distinct_words, average, rarest_word, rarest_score) VALUES(?,?,?,?,?,?,?)`,
		source,
		language,
		len(report.Scores),
		report.Distinct(),
		report.Average,
		rarest.Word,
		rarest.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("insert analysis: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("analysis last insert id: %w", err)
	}

	for rank, ws := range report.Ranked() {
		if topN > 0 && rank >= topN {
			break
		}
		if _, err := tx.Exec(
			`INSERT INTO analysis_words(analysis_id, word, score, position) VALUES(?,?,?,?)`,
			id,
			ws.Word,
			ws.Score,
			rank+1,
		); err != nil {
			return 0, fmt.Errorf("insert analysis word: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return id, nil
}

// Recent returns the latest saved analyses, newest first.
func Recent(dbPath string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(
		`SELECT id, source, language, words, distinct_words, average, rarest_word, rarest_score, created_at
		 FROM analyses ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Source, &e.Language, &e.Words, &e.DistinctWords, &e.Average, &e.RarestWord, &e.RarestScore, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Words returns the saved ranked words for one analysis.
func Words(dbPath string, analysisID int64) ([]rarity.WordScore, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(
		`SELECT word, score FROM analysis_words WHERE analysis_id = ? ORDER BY position`, analysisID)
	if err != nil {
		return nil, fmt.Errorf("query analysis words: %w", err)
	}
	defer rows.Close()

	var out []rarity.WordScore
	for rows.Next() {
		var ws rarity.WordScore
		if err := rows.Scan(&ws.Word, &ws.Score); err != nil {
			return nil, fmt.Errorf("scan analysis word: %w", err)
		}
		out = append(out, ws)
	}
	return out, rows.Err()
}

// CountRows reports the number of rows in a table.
func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
