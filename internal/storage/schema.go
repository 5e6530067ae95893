package storage

const Schema = `
-- Launches: one row per exported card, flattened with its rocket and launchpad.
-- launch_id is not unique: the API may hand out records with a blank or
-- repeated id and each one is still exported.
CREATE TABLE IF NOT EXISTS launches (
    doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
    launch_id TEXT NOT NULL,
    mission_name TEXT NOT NULL,
    date_utc TEXT,
    outcome TEXT NOT NULL,
    upcoming INTEGER NOT NULL DEFAULT 0,
    flight_number INTEGER,
    details TEXT,
    rocket_id TEXT,
    rocket_name TEXT,
    launchpad_id TEXT,
    launchpad_name TEXT,
    region TEXT,
    locality TEXT
);
CREATE INDEX IF NOT EXISTS idx_launches_launch_id ON launches(launch_id);
CREATE INDEX IF NOT EXISTS idx_launches_region ON launches(region);
CREATE INDEX IF NOT EXISTS idx_launches_outcome ON launches(outcome);

-- Terms dictionary over mission, rocket and details text
CREATE TABLE IF NOT EXISTS terms (
    term_id INTEGER PRIMARY KEY AUTOINCREMENT,
    term TEXT UNIQUE NOT NULL,
    document_frequency INTEGER DEFAULT 0,
    idf REAL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_terms_term ON terms(term);

-- Postings: inverted index from terms to launches
CREATE TABLE IF NOT EXISTS postings (
    term_id INTEGER NOT NULL,
    doc_id INTEGER NOT NULL,
    term_frequency INTEGER NOT NULL,
    tf REAL DEFAULT 0,
    tfidf REAL DEFAULT 0,
    PRIMARY KEY (term_id, doc_id),
    FOREIGN KEY (term_id) REFERENCES terms(term_id),
    FOREIGN KEY (doc_id) REFERENCES launches(doc_id)
);
CREATE INDEX IF NOT EXISTS idx_postings_doc ON postings(doc_id);
CREATE INDEX IF NOT EXISTS idx_postings_term_tfidf ON postings(term_id, tfidf DESC, doc_id);

CREATE TABLE IF NOT EXISTS doc_stats (
    doc_id INTEGER PRIMARY KEY,
    doc_length INTEGER NOT NULL,
    unique_terms INTEGER NOT NULL,
    FOREIGN KEY (doc_id) REFERENCES launches(doc_id)
);

CREATE TABLE IF NOT EXISTS export_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

INSERT OR IGNORE INTO export_metadata (key, value) VALUES
    ('total_launches', '0'),
    ('schema_version', '1');
`
