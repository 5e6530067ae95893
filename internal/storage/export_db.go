package storage

import (
	"database/sql"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"
)

type ExportDB struct {
	db *sql.DB
}

// LaunchRow is the flattened form of a card written to the launches table.
type LaunchRow struct {
	LaunchID      string
	MissionName   string
	DateUTC       string
	Outcome       string
	Upcoming      bool
	FlightNumber  int
	Details       string
	RocketID      string
	RocketName    string
	LaunchpadID   string
	LaunchpadName string
	Region        string
	Locality      string
}

type Counts struct {
	Launches int
	Terms    int
	Postings int
}

func NewExportDB(dbPath string) (*ExportDB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open export database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &ExportDB{db: db}, nil
}

func (edb *ExportDB) Close() error {
	return edb.db.Close()
}

func (edb *ExportDB) BeginTransaction() (*sql.Tx, error) {
	return edb.db.Begin()
}

// Reset empties every table so a new export replaces the previous one.
func (edb *ExportDB) Reset() error {
	tx, err := edb.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"postings", "doc_stats", "terms", "launches"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

func (edb *ExportDB) SaveLaunchInTransaction(tx *sql.Tx, row LaunchRow, termFreqs map[string]int, docLength int) error {
	result, err := tx.Exec(`
		INSERT INTO launches (
			launch_id, mission_name, date_utc, outcome, upcoming, flight_number, details,
			rocket_id, rocket_name, launchpad_id, launchpad_name, region, locality
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.LaunchID, row.MissionName, row.DateUTC, row.Outcome, row.Upcoming, row.FlightNumber, row.Details,
		row.RocketID, row.RocketName, row.LaunchpadID, row.LaunchpadName, row.Region, row.Locality,
	)
	if err != nil {
		return fmt.Errorf("failed to insert launch %q: %w", row.LaunchID, err)
	}

	docID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		"INSERT OR REPLACE INTO doc_stats (doc_id, doc_length, unique_terms) VALUES (?, ?, ?)",
		docID, docLength, len(termFreqs),
	)
	if err != nil {
		return fmt.Errorf("failed to save doc stats: %w", err)
	}

	getTermStmt, err := tx.Prepare("SELECT term_id FROM terms WHERE term = ?")
	if err != nil {
		return err
	}
	defer getTermStmt.Close()

	insertTermStmt, err := tx.Prepare("INSERT INTO terms (term, document_frequency) VALUES (?, 1)")
	if err != nil {
		return err
	}
	defer insertTermStmt.Close()

	updateDFStmt, err := tx.Prepare("UPDATE terms SET document_frequency = document_frequency + 1 WHERE term_id = ?")
	if err != nil {
		return err
	}
	defer updateDFStmt.Close()

	insertPostingStmt, err := tx.Prepare("INSERT INTO postings (term_id, doc_id, term_frequency) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertPostingStmt.Close()

	for term, freq := range termFreqs {
		var termID int64

		err := getTermStmt.QueryRow(term).Scan(&termID)
		if err == sql.ErrNoRows {
			res, err := insertTermStmt.Exec(term)
			if err != nil {
				return fmt.Errorf("failed to insert term %q: %w", term, err)
			}
			termID, err = res.LastInsertId()
			if err != nil {
				return err
			}
		} else if err != nil {
			return fmt.Errorf("failed to query term %q: %w", term, err)
		} else if _, err := updateDFStmt.Exec(termID); err != nil {
			return fmt.Errorf("failed to update document frequency for term %q: %w", term, err)
		}

		if _, err := insertPostingStmt.Exec(termID, docID, freq); err != nil {
			return fmt.Errorf("failed to insert posting for term %q: %w", term, err)
		}
	}

	return nil
}

func (edb *ExportDB) RecalculateTFIDF() error {
	var totalDocs int
	if err := edb.db.QueryRow("SELECT COUNT(*) FROM launches").Scan(&totalDocs); err != nil {
		return fmt.Errorf("failed to count launches: %w", err)
	}

	rows, err := edb.db.Query("SELECT term_id, document_frequency FROM terms WHERE document_frequency > 0")
	if err != nil {
		return fmt.Errorf("failed to query terms: %w", err)
	}
	defer rows.Close()

	type termInfo struct {
		termID int64
		idf    float64
	}
	var terms []termInfo

	for rows.Next() {
		var termID int64
		var docFreq int
		if err := rows.Scan(&termID, &docFreq); err != nil {
			return fmt.Errorf("failed to scan term: %w", err)
		}
		terms = append(terms, termInfo{termID: termID, idf: math.Log(float64(totalDocs) / float64(docFreq))})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating terms: %w", err)
	}

	tx, err := edb.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateTermStmt, err := tx.Prepare("UPDATE terms SET idf = ? WHERE term_id = ?")
	if err != nil {
		return err
	}
	defer updateTermStmt.Close()

	for _, term := range terms {
		if _, err := updateTermStmt.Exec(term.idf, term.termID); err != nil {
			return fmt.Errorf("failed to update IDF for term %d: %w", term.termID, err)
		}
	}

	_, err = tx.Exec(`
		UPDATE postings
		SET tf = CAST(term_frequency AS REAL) / (SELECT doc_length FROM doc_stats WHERE doc_stats.doc_id = postings.doc_id),
		    tfidf = (CAST(term_frequency AS REAL) / (SELECT doc_length FROM doc_stats WHERE doc_stats.doc_id = postings.doc_id)) * (SELECT idf FROM terms WHERE terms.term_id = postings.term_id)
	`)
	if err != nil {
		return fmt.Errorf("failed to update postings: %w", err)
	}

	if _, err := tx.Exec("UPDATE export_metadata SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE key = 'total_launches'", totalDocs); err != nil {
		return fmt.Errorf("failed to update total launches: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (edb *ExportDB) SetMetadata(key, value string) error {
	_, err := edb.db.Exec(
		"INSERT OR REPLACE INTO export_metadata (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)",
		key, value,
	)
	return err
}

func (edb *ExportDB) GetMetadata(key string) (string, error) {
	var value string
	err := edb.db.QueryRow("SELECT value FROM export_metadata WHERE key = ?", key).Scan(&value)
	return value, err
}

func (edb *ExportDB) Counts() (Counts, error) {
	var c Counts
	err := edb.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM launches),
			(SELECT COUNT(*) FROM terms),
			(SELECT COUNT(*) FROM postings)
	`).Scan(&c.Launches, &c.Terms, &c.Postings)
	return c, err
}

// TermWeight returns the tf-idf of term in the given launch, or 0 when the
// launch does not contain it.
func (edb *ExportDB) TermWeight(launchID, term string) (float64, error) {
	var w float64
	err := edb.db.QueryRow(`
		SELECT p.tfidf FROM postings p
		JOIN terms t ON t.term_id = p.term_id
		JOIN launches l ON l.doc_id = p.doc_id
		WHERE l.launch_id = ? AND t.term = ?`,
		launchID, term,
	).Scan(&w)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return w, err
}
